package payment

import (
	"fmt"

	"ordersvc/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
// The payment mirrors its order's lifecycle but is a separate record so that
// payment processing can fail and retry independently.
type Status int

const (
	Unknown Status = iota
	Pending
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions the status to Cancelled. Allowed from every valid state;
// cancelling an already-cancelled payment is a no-op.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}
