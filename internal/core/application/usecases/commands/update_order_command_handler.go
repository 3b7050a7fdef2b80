package commands

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to an order's line items
// and total inside a single transaction.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewUpdateOrderCommandHandler creates a handler for order field updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the update command and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now().UTC()

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

	if items := cmd.Items(); items != nil {
		if err = aggregate.ChangeItems(items, now); err != nil {
			return nil, err
		}
	}
	if total := cmd.TotalAmount(); total != nil {
		if err = aggregate.ChangeTotal(*total, now); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
