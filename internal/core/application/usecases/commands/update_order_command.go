package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update of an order's line items
// and/or total. Nil fields are left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	items       []order.Item
	totalAmount *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's mutable fields.
// items may be nil (unchanged) but not empty; totalAmount may be nil
// (unchanged) but not zero or negative.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	items []order.Item,
	totalAmount *decimal.Decimal,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.orderID = orderID

	if items != nil {
		if err := order.ValidateItems(items); err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.items = items
	}

	if totalAmount != nil {
		if !totalAmount.IsPositive() {
			return UpdateOrderCommand{}, errs.NewValueIsInvalidError("totalAmount")
		}
		cmd.totalAmount = totalAmount
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement line items, or nil when items are unchanged.
func (c UpdateOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the replacement total, or nil when the total is unchanged.
func (c UpdateOrderCommand) TotalAmount() *decimal.Decimal {
	return c.totalAmount
}
