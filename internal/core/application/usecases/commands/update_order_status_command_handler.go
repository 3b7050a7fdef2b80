package commands

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler moves an order to a requested status.
// Invalid transitions surface as ObjectInvalidStateError from the domain.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the status-change command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), h.now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
