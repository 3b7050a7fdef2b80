package queries

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order, newest first.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for the full order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
