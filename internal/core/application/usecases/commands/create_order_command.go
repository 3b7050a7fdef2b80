package commands

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order together with
// its payment and delivery records.
//
// Example:
//
//	items := []order.Item{{Name: "apple", Quantity: 1}}
//	cmd, err := NewCreateOrderCommand("customer-1", items,
//	    decimal.RequireFromString("12.50"), `{"method":"card"}`, "1 Farm Rd", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     string
	items          []order.Item
	totalAmount    decimal.Decimal
	paymentDetails string
	address        string
	scheduledDate  *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer reference, item list, total amount, and address
// are present. The scheduled date is optional; when nil the handler defaults
// it to 24 hours after the creation instant.
func NewCreateOrderCommand(
	customerID string,
	items []order.Item,
	totalAmount decimal.Decimal,
	paymentDetails string,
	address string,
	scheduledDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentDetails: paymentDetails,
		scheduledDate:  scheduledDate,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setTotalAmount(totalAmount),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the opaque customer reference.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the ordered line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

// PaymentDetails returns the opaque payment details.
func (c CreateOrderCommand) PaymentDetails() string {
	return c.paymentDetails
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// ScheduledDate returns the requested delivery date, or nil for the default.
func (c CreateOrderCommand) ScheduledDate() *time.Time {
	return c.scheduledDate
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if err := order.ValidateItems(items); err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
