package commands

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrRescheduleDeliveryCommandIsNotConstructed = errors.New(
		"RescheduleDeliveryCommand must be created via NewRescheduleDeliveryCommand constructor",
	)
)

// RescheduleDeliveryCommand represents a request to move a delivery to a new
// scheduled date.
type RescheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	scheduledDate time.Time

	guard guard.ConstructorGuard
}

// NewRescheduleDeliveryCommand creates a reschedule command. The date is
// required; "clear the date" is not a supported operation.
func NewRescheduleDeliveryCommand(deliveryID kernel.UUID, scheduledDate time.Time) (RescheduleDeliveryCommand, error) {
	cmd := RescheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return RescheduleDeliveryCommand{}, err
	}
	if scheduledDate.IsZero() {
		return RescheduleDeliveryCommand{}, errs.NewValueIsRequiredError("scheduledDate")
	}
	cmd.deliveryID = deliveryID
	cmd.scheduledDate = scheduledDate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identity of the delivery to reschedule.
func (c RescheduleDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ScheduledDate returns the new scheduled date.
func (c RescheduleDeliveryCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}
