// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index as a backstop against the
// clock-resolution collision window of time-derived numbers.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  string          `gorm:"index"`
	OrderNumber string          `gorm:"uniqueIndex"`
	Items       string          `gorm:"type:jsonb"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status      int
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := order.SnapshotItems(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID(),
		OrderNumber: aggregate.OrderNumber().String(),
		Items:       items,
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}, nil
}

// toDomain reconstructs an order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	var items []order.Item
	if err = json.Unmarshal([]byte(dto.Items), &items); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		items,
		number,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
