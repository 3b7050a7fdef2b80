// Package deliveryrepo implements the repository pattern for the delivery
// aggregate.
package deliveryrepo

import (
	"time"

	"ordersvc/internal/core/domain/model/delivery"
	"ordersvc/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. OrderID is the primary link to the owning order; OrderNumber is
// a denormalized token kept for display and for legacy lookups.
type DeliveryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber   string    `gorm:"index"`
	CustomerID    string
	Address       string
	Items         string    `gorm:"type:jsonb"`
	ScheduledDate time.Time `gorm:"index"`
	Status        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		OrderNumber:   aggregate.OrderNumber().String(),
		CustomerID:    aggregate.CustomerID(),
		Address:       aggregate.Address(),
		Items:         aggregate.ItemsSnapshot(),
		ScheduledDate: aggregate.ScheduledDate(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		number,
		dto.CustomerID,
		dto.Address,
		dto.Items,
		dto.ScheduledDate,
		delivery.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
