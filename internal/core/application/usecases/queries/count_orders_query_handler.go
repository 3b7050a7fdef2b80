package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersQueryHandler counts orders directly in the database.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order counting.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the count. An empty table yields zero.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
