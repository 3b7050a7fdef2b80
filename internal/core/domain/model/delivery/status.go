package delivery

import (
	"fmt"

	"ordersvc/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// The pending -> in_transit -> delivered progression is driven by the
// dispatcher; Cancelled is reached through the order cancellation protocol.
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
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

// IsFinal reports whether the status permits no further schedule changes.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Cancel transitions the status to Cancelled. Allowed from every valid state;
// cancelling an already-cancelled delivery is a no-op.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}

// Start transitions the status from Pending to InTransit.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewObjectInvalidStateError("delivery", s.String())
	}
	return InTransit, nil
}

// Complete transitions the status from InTransit to Delivered.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewObjectInvalidStateError("delivery", s.String())
	}
	return Delivered, nil
}
