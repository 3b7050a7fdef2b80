package commands

import (
	"context"
	"log/slog"
	"time"

	"ordersvc/internal/core/domain/model/delivery"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/payment"
	"ordersvc/internal/pkg/errs"
)

// defaultScheduleOffset is applied when no delivery date is requested.
const defaultScheduleOffset = 24 * time.Hour

// CreateOrderResult carries the three records written by the create protocol.
// No partial results are ever returned: on failure all writes are rolled back.
type CreateOrderResult struct {
	Order    *order.Order
	Payment  *payment.Payment
	Delivery *delivery.Delivery
}

// CreateOrderCommandHandler handles the business logic for order creation.
// One order, one payment, and one delivery are written as a single unit of
// work; a failure at any step rolls back the prior writes and is reported as
// an AggregateError naming the step.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for the create-order protocol.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order"),
		now:        time.Now,
	}
}

// Handle processes the order creation command.
//
// The order number is derived from the creation instant; all three records
// start in their pending states; the delivery scheduled date defaults to
// exactly 24 hours after creation when not supplied. The items are persisted
// as structured data on the order and as an opaque serialized snapshot on the
// delivery.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := h.now().UTC()

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.Items(), cmd.TotalAmount(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newPayment, err := payment.NewPayment(kernel.NewUUID(), newOrder.ID(), cmd.TotalAmount(), cmd.PaymentDetails(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	scheduledDate := now.Add(defaultScheduleOffset)
	if cmd.ScheduledDate() != nil {
		scheduledDate = *cmd.ScheduledDate()
	}

	snapshot, err := order.SnapshotItems(cmd.Items())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		newOrder.ID(),
		newOrder.OrderNumber(),
		cmd.CustomerID(),
		cmd.Address(),
		snapshot,
		scheduledDate,
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, errs.NewAggregateError("create order", "order", err)
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return CreateOrderResult{}, errs.NewAggregateError("create order", "payment", err)
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return CreateOrderResult{}, errs.NewAggregateError("create order", "delivery", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, errs.NewAggregateError("create order", "commit", err)
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", newOrder.ID().String(),
		"order_number", newOrder.OrderNumber().String(),
	)

	return CreateOrderResult{
		Order:    newOrder,
		Payment:  newPayment,
		Delivery: newDelivery,
	}, nil
}
