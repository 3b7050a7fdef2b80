package delivery

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery represents the shipment leg of an order.
//
// The primary link to the order is the order identity. The order number is kept
// as a denormalized display token; the cancellation protocol still accepts it
// as a fallback lookup key for records written before the identity link existed.
// The customer field stores the same opaque customer reference as the order —
// display names are resolved at the read boundary, not written here.
type Delivery struct {
	id            kernel.UUID
	orderID       kernel.UUID
	orderNumber   kernel.OrderNumber
	customerID    string
	address       string
	itemsSnapshot string
	scheduledDate time.Time
	status        Status
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewDelivery creates a Delivery in Pending status.
//
// itemsSnapshot is the opaque serialized item list produced by
// order.SnapshotItems; the orders table remains the authoritative structure.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID string,
	address string,
	itemsSnapshot string,
	scheduledDate time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		orderNumber:   orderNumber,
		itemsSnapshot: itemsSnapshot,
		status:        Pending,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		orderNumber.Validate(),
		d.setCustomerID(customerID),
		d.setAddress(address),
		d.setScheduledDate(scheduledDate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID string,
	address string,
	itemsSnapshot string,
	scheduledDate time.Time,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		orderNumber:   orderNumber,
		itemsSnapshot: itemsSnapshot,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		orderNumber.Validate(),
		d.setCustomerID(customerID),
		d.setAddress(address),
		d.setScheduledDate(scheduledDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was properly constructed through a factory.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identity of the owning order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// OrderNumber returns the denormalized order token.
func (d *Delivery) OrderNumber() kernel.OrderNumber {
	return d.orderNumber
}

// CustomerID returns the opaque customer reference.
func (d *Delivery) CustomerID() string {
	return d.customerID
}

// Address returns the delivery address.
func (d *Delivery) Address() string {
	return d.address
}

// ItemsSnapshot returns the opaque serialized item list.
func (d *Delivery) ItemsSnapshot() string {
	return d.itemsSnapshot
}

// ScheduledDate returns the planned delivery date.
func (d *Delivery) ScheduledDate() time.Time {
	return d.scheduledDate
}

// Status returns the current status.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the creation instant.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last modification instant.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Cancel transitions the delivery to Cancelled. Idempotent.
func (d *Delivery) Cancel(now time.Time) error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}
	if d.status == newStatus {
		return nil
	}

	d.status = newStatus
	d.updatedAt = now
	return nil
}

// Reschedule moves the delivery to a new scheduled date.
//
// Fails with a ValueIsRequiredError when the date is the zero value, and with
// an ObjectInvalidStateError when the delivery is already delivered or
// cancelled. The scheduled date is left untouched on failure.
func (d *Delivery) Reschedule(date time.Time, now time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	if d.status.IsFinal() {
		return errs.NewObjectInvalidStateError("delivery", d.status.String())
	}

	d.scheduledDate = date
	d.updatedAt = now
	return nil
}

// Start marks the delivery as picked up by the dispatcher (Pending -> InTransit).
func (d *Delivery) Start(now time.Time) error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.updatedAt = now
	return nil
}

// Complete marks the delivery as delivered (InTransit -> Delivered).
func (d *Delivery) Complete(now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.updatedAt = now
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	d.scheduledDate = date
	return nil
}
