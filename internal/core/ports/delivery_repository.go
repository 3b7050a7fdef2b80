package ports

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/delivery"
	"ordersvc/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	// Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery linked to the given order identity.
	// This is the primary lookup; returns an ObjectNotFoundError when absent.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderNumber retrieves a delivery by the denormalized order token.
	// Legacy fallback for records persisted before the identity link existed.
	GetByOrderNumber(ctx context.Context, number kernel.OrderNumber) (*delivery.Delivery, error)

	// GetAllPendingDueBefore retrieves pending deliveries whose scheduled date
	// is at or before the given instant. Used by the dispatch job.
	GetAllPendingDueBefore(ctx context.Context, due time.Time) ([]*delivery.Delivery, error)
}
