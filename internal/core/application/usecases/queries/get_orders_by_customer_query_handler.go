package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler reads one customer's orders from the database.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for per-customer listings.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
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
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
