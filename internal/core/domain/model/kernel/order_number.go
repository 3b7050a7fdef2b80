package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ordersvc/internal/pkg/errs"
)

// orderNumberPrefix is the fixed prefix of every human-readable order number.
const orderNumberPrefix = "ORD"

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber, OrderNumberFromString, or DeriveOrderNumber",
)

// OrderNumber is the human-readable, time-derived token identifying an Order
// independent of its primary identity. It is assigned once at order creation
// and never changes.
//
// The token is "ORD" followed by the creation instant in Unix milliseconds, so
// numbers sort in creation order. Uniqueness is bounded by the clock
// resolution: two orders created within the same millisecond collide. This is
// a deliberately weak guarantee, not a cryptographic one; the persistence
// layer carries a unique index as the backstop.
type OrderNumber struct {
	value string
}

// NewOrderNumber derives an order number from the creation instant.
func NewOrderNumber(t time.Time) OrderNumber {
	return OrderNumber{value: orderNumberPrefix + strconv.FormatInt(t.UnixMilli(), 10)}
}

// OrderNumberFromString reconstructs an order number from its stored form.
// The value must be non-empty and carry the "ORD" prefix.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !strings.HasPrefix(s, orderNumberPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not start with %q", s, orderNumberPrefix))
	}
	return OrderNumber{value: s}, nil
}

// DeriveOrderNumber reconstructs an order number from the trailing characters
// of the order identity. This is a compatibility shim for records persisted
// before the order number field existed; new code must use NewOrderNumber.
func DeriveOrderNumber(id UUID) OrderNumber {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return OrderNumber{value: orderNumberPrefix + hex[len(hex)-10:]}
}

// String returns the token, e.g. "ORD1724831565123".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks if the order number is properly constructed.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
