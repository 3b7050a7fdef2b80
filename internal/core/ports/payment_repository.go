package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrderID retrieves the payment linked to the given order.
	// Returns an ObjectNotFoundError when no payment was recorded for the
	// order — callers in the cancellation protocol tolerate that case.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
