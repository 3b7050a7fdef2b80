package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordersvc/internal/core/domain/model/delivery"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"
)

// CancelOrderResult carries the records updated by the cancel protocol.
// Delivery is nil when no delivery record was found for the order — a
// tolerated absence, not an error.
type CancelOrderResult struct {
	Order    *order.Order
	Delivery *delivery.Delivery
}

// CancelOrderCommandHandler implements the order cancellation protocol.
//
// Within one unit of work, in order: look up the order (NotFound aborts with
// no side effects), cancel it, cancel the linked payment if one exists, cancel
// the linked delivery if one exists, commit. Any unexpected error after the
// initial lookup rolls back the whole transaction, so no reader ever observes
// a partially cancelled order. Absent payment and delivery records are
// tolerated and logged; the cancellation of already-cancelled orders is a
// no-op success.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCancelOrderCommandHandler creates a handler for the cancel-order protocol.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order"),
		now:        time.Now,
	}
}

// Handle processes the cancellation command and returns the updated order and
// delivery (delivery may be nil).
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	now := h.now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Step 1: order lookup. NotFound aborts before any write.
	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	// Step 2: cancel the order.
	if err = aggregate.Cancel(now); err != nil {
		return CancelOrderResult{}, errs.NewAggregateError("cancel order", "order", err)
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return CancelOrderResult{}, errs.NewAggregateError("cancel order", "order", err)
	}

	// Step 3: cancel the linked payment, tolerating its absence.
	if err = h.cancelPayment(ctx, uow, aggregate.ID(), now); err != nil {
		return CancelOrderResult{}, errs.NewAggregateError("cancel order", "payment", err)
	}

	// Step 4: cancel the linked delivery, tolerating its absence.
	cancelledDelivery, err := h.cancelDelivery(ctx, uow, aggregate, now)
	if err != nil {
		return CancelOrderResult{}, errs.NewAggregateError("cancel order", "delivery", err)
	}

	// Step 5: commit; nothing is observable until here.
	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, errs.NewAggregateError("cancel order", "commit", err)
	}

	h.logger.InfoContext(ctx, "order cancelled",
		"order_id", aggregate.ID().String(),
		"delivery_found", cancelledDelivery != nil,
	)

	return CancelOrderResult{
		Order:    aggregate,
		Delivery: cancelledDelivery,
	}, nil
}

func (h *CancelOrderCommandHandler) cancelPayment(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	now time.Time,
) error {
	linkedPayment, err := uow.PaymentRepository().GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// Payment was never recorded for this order.
			h.logger.WarnContext(ctx, "no payment found for order", "order_id", orderID.String())
			return nil
		}
		return err
	}

	if err = linkedPayment.Cancel(now); err != nil {
		return err
	}
	return uow.PaymentRepository().Update(ctx, linkedPayment)
}

func (h *CancelOrderCommandHandler) cancelDelivery(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	now time.Time,
) (*delivery.Delivery, error) {
	linkedDelivery, err := h.findDelivery(ctx, uow, aggregate)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "no delivery found for order",
				"order_id", aggregate.ID().String(),
				"order_number", aggregate.OrderNumber().String(),
			)
			return nil, nil
		}
		return nil, err
	}

	if err = linkedDelivery.Cancel(now); err != nil {
		return nil, err
	}
	if err = uow.DeliveryRepository().Update(ctx, linkedDelivery); err != nil {
		return nil, err
	}
	return linkedDelivery, nil
}

// findDelivery resolves the delivery for an order. The identity link is the
// primary key; records persisted before that link existed are found through
// the stored order number, or through the number derived from the identity
// tail when the stored field is missing.
func (h *CancelOrderCommandHandler) findDelivery(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
) (*delivery.Delivery, error) {
	found, err := uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	if err == nil || !errors.Is(err, errs.ErrObjectNotFound) {
		return found, err
	}

	number := aggregate.OrderNumber()
	if number.Validate() != nil {
		number = kernel.DeriveOrderNumber(aggregate.ID())
	}
	return uow.DeliveryRepository().GetByOrderNumber(ctx, number)
}
