package commands

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/delivery"
)

// RescheduleDeliveryCommandHandler moves a delivery to a new scheduled date.
// Deliveries that are already delivered or cancelled reject the change with an
// ObjectInvalidStateError and keep their current date.
type RescheduleDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewRescheduleDeliveryCommandHandler creates a handler for delivery reschedules.
func NewRescheduleDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RescheduleDeliveryCommandHandler {
	return RescheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the reschedule command and returns the updated delivery.
func (h *RescheduleDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd RescheduleDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Reschedule(cmd.ScheduledDate(), h.now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
