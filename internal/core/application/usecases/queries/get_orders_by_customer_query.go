package queries

import (
	"errors"

	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
)

// GetOrdersByCustomerQuery retrieves the orders placed under one customer
// reference. A customer with no orders gets an empty list, not an error.
type GetOrdersByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for one customer's orders.
func NewGetOrdersByCustomerQuery(customerID string) (GetOrdersByCustomerQuery, error) {
	if customerID == "" {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsRequiredError("customerId")
	}
	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the opaque customer reference.
func (q GetOrdersByCustomerQuery) CustomerID() string {
	return q.customerID
}
