package queries

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var (
	ErrCountOrdersQueryIsNotConstructed = errors.New(
		"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
	)
)

// CountOrdersQuery retrieves the total number of orders.
type CountOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates a parameterless count query.
func NewCountOrdersQuery() CountOrdersQuery {
	return CountOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}
