package commands

import (
	"context"
	"time"
)

// DispatchDeliveriesCommandHandler moves due pending deliveries to in-transit.
// One invocation handles one batch inside a single transaction; the cron job
// runs it periodically.
type DispatchDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewDispatchDeliveriesCommandHandler creates a handler for the dispatch pass.
func NewDispatchDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) DispatchDeliveriesCommandHandler {
	return DispatchDeliveriesCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle runs one dispatch pass and returns the number of deliveries started.
func (h *DispatchDeliveriesCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	due, err := uow.DeliveryRepository().GetAllPendingDueBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range due {
		if err = aggregate.Start(now); err != nil {
			return 0, err
		}
		if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(due), nil
}
