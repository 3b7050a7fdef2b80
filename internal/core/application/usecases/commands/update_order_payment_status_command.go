package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/payment"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrUpdateOrderPaymentStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderPaymentStatusCommand must be created via NewUpdateOrderPaymentStatusCommand constructor",
	)
)

// UpdateOrderPaymentStatusCommand represents a combined status change for an
// order and its payment, applied within one transaction.
type UpdateOrderPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	orderStatus   order.Status
	paymentStatus payment.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderPaymentStatusCommand creates a combined status-change command.
func NewUpdateOrderPaymentStatusCommand(
	orderID kernel.UUID,
	orderStatus order.Status,
	paymentStatus payment.Status,
) (UpdateOrderPaymentStatusCommand, error) {
	cmd := UpdateOrderPaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		orderStatus.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return UpdateOrderPaymentStatusCommand{}, err
	}
	cmd.orderID = orderID
	cmd.orderStatus = orderStatus
	cmd.paymentStatus = paymentStatus

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderPaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderStatus returns the requested order status.
func (c UpdateOrderPaymentStatusCommand) OrderStatus() order.Status {
	return c.orderStatus
}

// PaymentStatus returns the requested payment status.
func (c UpdateOrderPaymentStatusCommand) PaymentStatus() payment.Status {
	return c.paymentStatus
}
