package order

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order. It is the aggregate root whose lifecycle
// the payment and delivery records mirror.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a customer reference
//   - The order number is derived from the creation instant and never changes
//   - The item list is non-empty; the total amount is positive
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	customerID  string
	items       []Item
	orderNumber kernel.OrderNumber
	totalAmount decimal.Decimal
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The order number is assigned
// here, from the creation instant, and is immutable afterwards.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: opaque customer reference (must be non-empty)
//   - items: ordered line items (must be non-empty)
//   - totalAmount: order total (must be positive)
//   - createdAt: creation instant; also seeds the order number
func NewOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	totalAmount decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		orderNumber:   kernel.NewOrderNumber(createdAt),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts the already-assigned order number and status, validating both.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	orderNumber kernel.OrderNumber,
	totalAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		orderNumber:   orderNumber,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setTotalAmount(totalAmount),
		orderNumber.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Called when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the opaque customer reference.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns the ordered line items.
func (o *Order) Items() []Item {
	return o.items
}

// OrderNumber returns the human-readable order token.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Cancel transitions the order to Cancelled.
// Cancelling an already-cancelled order is a no-op success, so repeated cancel
// requests converge on the same final state.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	if o.status == newStatus {
		return nil
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Complete marks the order as completed. Completing a cancelled order fails.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ChangeStatus applies a requested target status through the transition table.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ChangeItems replaces the line items. The list must stay non-empty.
func (o *Order) ChangeItems(items []Item, now time.Time) error {
	if err := o.setItems(items); err != nil {
		return err
	}
	o.updatedAt = now
	return nil
}

// ChangeTotal replaces the total amount. The amount must stay positive.
func (o *Order) ChangeTotal(totalAmount decimal.Decimal, now time.Time) error {
	if err := o.setTotalAmount(totalAmount); err != nil {
		return err
	}
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	o.items = items
	return nil
}

func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			errors.New(totalAmount.String()+" is not greater than 0"))
	}
	o.totalAmount = totalAmount
	return nil
}
