package queries

import (
	"context"

	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

// SumPaymentsQueryHandler totals every payment amount in the database.
//
// A system with no payment records at all reports ObjectNotFoundError rather
// than a zero total, keeping the distinction between "nothing was ever paid"
// and "the amounts cancel out to zero" visible to callers.
type SumPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewSumPaymentsQueryHandler creates a handler for the payment-total query.
func NewSumPaymentsQueryHandler(db *gorm.DB) SumPaymentsQueryHandler {
	return SumPaymentsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h SumPaymentsQueryHandler) Handle(
	ctx context.Context,
	query SumPaymentsQuery,
) (SumPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SumPaymentsQueryResponse{}, err
	}

	var response SumPaymentsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS count
		FROM payments
	`).Row().Scan(&response.Total, &response.Count)
	if err != nil {
		return SumPaymentsQueryResponse{}, err
	}

	if response.Count == 0 {
		return SumPaymentsQueryResponse{}, errs.NewObjectNotFoundError("payments", "total")
	}

	return response, nil
}
