// Package payment provides the Payment aggregate. A payment belongs to exactly
// one order, carries the order total, and keeps its processing details opaque —
// gateway integration lives outside this service.
package payment

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not created
// through the NewPayment or RestorePayment factory methods.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment records the money side of an order. The amount equals the order total
// at creation; details is an opaque blob for the external payment processor.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    decimal.Decimal
	details   string
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPayment creates a Payment in Pending status for the given order.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	details string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		details:       details,
		status:        Pending,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	details string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Payment, error) {
	p := &Payment{
		details:       details,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment was properly constructed through a factory.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identity of the owning order.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the payment amount.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Details returns the opaque payment details.
func (p *Payment) Details() string {
	return p.details
}

// Status returns the current status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns the creation instant.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last modification instant.
func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// Cancel transitions the payment to Cancelled. Idempotent.
func (p *Payment) Cancel(now time.Time) error {
	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}
	if p.status == newStatus {
		return nil
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// ChangeStatus sets a requested valid status. Used by the combined
// order-and-payment status operation.
func (p *Payment) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	p.status = target
	p.updatedAt = now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New(amount.String()+" is not greater than 0"))
	}
	p.amount = amount
	return nil
}
