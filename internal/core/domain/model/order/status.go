package order

import (
	"fmt"

	"ordersvc/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that status changes
// go through one transition table instead of ad hoc field writes.
//
// State transitions:
//
//	Pending ──┬──> Completed ──> Cancelled
//	          │                      ^
//	          └──────────────────────┘
//
// Cancelled is a final state. Re-applying a state to itself is a no-op success,
// which keeps the cancel protocol retry-safe.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// The linked payment and delivery records start in their pending states too.
	Pending

	// Completed indicates the order has been paid and fulfilled.
	Completed

	// Cancelled indicates the order was cancelled. The cancel protocol
	// propagates this state to the linked payment and delivery records.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// The lowercase strings match the persisted and HTTP-facing form.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts a wire string into a Status.
// Returns a ValueIsInvalidError for anything outside {pending, completed, cancelled}.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Completed -> Cancelled (cancellation after fulfilment is allowed)
//   - Cancelled -> Cancelled (no-op, keeps repeated cancels retry-safe)
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed
//   - Completed -> Completed (no-op)
//
// Completing a cancelled order is invalid.
func (s Status) Complete() (Status, error) {
	if s != Pending && s != Completed {
		return 0, errs.NewObjectInvalidStateError("order", s.String())
	}
	return Completed, nil
}

// TransitionTo routes a requested target status through the transition table.
// Used by the generic status-update operation so that even CRUD-style updates
// obey the state machine.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	switch target {
	case Cancelled:
		return s.Cancel()
	case Completed:
		return s.Complete()
	case Pending:
		if s != Pending {
			return 0, errs.NewObjectInvalidStateError("order", s.String())
		}
		return Pending, nil
	default:
		return 0, errs.NewValueIsInvalidError("status")
	}
}
