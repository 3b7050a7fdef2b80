package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"
)

// UpdateOrderPaymentStatusCommandHandler applies a status change to an order
// and its payment record inside one transaction. A missing payment record is
// tolerated and logged so the order update still lands.
type UpdateOrderPaymentStatusCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewUpdateOrderPaymentStatusCommandHandler creates the combined status handler.
func NewUpdateOrderPaymentStatusCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	logger *slog.Logger,
) UpdateOrderPaymentStatusCommandHandler {
	return UpdateOrderPaymentStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_payment_status"),
		now:        time.Now,
	}
}

// Handle processes the combined status change and returns the updated order.
func (h *UpdateOrderPaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderPaymentStatusCommand,
) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.OrderStatus(), now); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	linkedPayment, err := uow.PaymentRepository().GetByOrderID(ctx, cmd.OrderID())
	switch {
	case err == nil:
		if err = linkedPayment.ChangeStatus(cmd.PaymentStatus(), now); err != nil {
			return nil, err
		}
		if err = uow.PaymentRepository().Update(ctx, linkedPayment); err != nil {
			return nil, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "no payment found for order", "order_id", cmd.OrderID().String())
	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
