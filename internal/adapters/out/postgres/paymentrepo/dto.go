// Package paymentrepo implements the repository pattern for the payment
// aggregate.
package paymentrepo

import (
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. Exactly one payment exists per order, hence the unique index.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Details   string
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Amount:    aggregate.Amount(),
		Details:   aggregate.Details(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.Amount,
		dto.Details,
		payment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
