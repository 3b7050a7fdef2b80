package queries

import (
	"errors"

	"ordersvc/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSumPaymentsQueryIsNotConstructed = errors.New(
		"SumPaymentsQuery must be created via NewSumPaymentsQuery constructor",
	)
)

// SumPaymentsQuery retrieves the total amount across every payment record.
type SumPaymentsQuery struct {
	guard guard.ConstructorGuard
}

// NewSumPaymentsQuery creates a parameterless payment-total query.
func NewSumPaymentsQuery() SumPaymentsQuery {
	return SumPaymentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q SumPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrSumPaymentsQueryIsNotConstructed)
}

// SumPaymentsQueryResponse carries the payment total and how many records
// contributed to it.
type SumPaymentsQueryResponse struct {
	Total decimal.Decimal
	Count int64
}
