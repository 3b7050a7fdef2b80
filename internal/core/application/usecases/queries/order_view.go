// Package queries contains read-side operations implemented directly against
// the database, bypassing the domain model. Read models are plain structs;
// state machines and invariants stay on the write side.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model shared by the order listing queries.
type OrderView struct {
	ID          kernel.UUID
	CustomerID  string
	OrderNumber string
	Items       []order.Item
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// scanOrderViews drains rows produced by the shared order projection
// (id, customer_id, order_number, items, total_amount, status, created_at,
// updated_at) into read models.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			view      OrderView
			itemsJSON []byte
			status    int
		)

		err := rows.Scan(
			&id,
			&view.CustomerID,
			&view.OrderNumber,
			&itemsJSON,
			&view.TotalAmount,
			&status,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		view.Status = order.Status(status).String()

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if len(itemsJSON) > 0 {
			if err = json.Unmarshal(itemsJSON, &view.Items); err != nil {
				return nil, err
			}
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
