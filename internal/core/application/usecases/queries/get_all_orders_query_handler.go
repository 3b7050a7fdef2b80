package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the full order list from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results come back newest first; an empty table
// yields an empty slice, not an error.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_number,
			items,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
