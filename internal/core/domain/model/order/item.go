package order

import (
	"encoding/json"

	"ordersvc/internal/pkg/errs"
)

// Item is one ordered line item. The structure is deliberately open: the order
// protocol treats items as opaque data, validating only that names are present.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewItem creates a line item. Quantity defaults to 1 when non-positive.
func NewItem(name string, quantity int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		quantity = 1
	}
	return Item{Name: name, Quantity: quantity}, nil
}

// ValidateItems checks that the item list is non-empty and every item carries a name.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.Name == "" {
			return errs.NewValueIsRequiredError("item name")
		}
	}
	return nil
}

// SnapshotItems serializes the item list into the opaque form persisted on the
// delivery record. The orders table stays the authoritative structure; the
// snapshot only decouples the delivery read path from it.
func SnapshotItems(items []Item) (string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
