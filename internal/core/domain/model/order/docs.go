// Package order provides the Order aggregate root and its status state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items, totals, and lifecycle
//   - Status: a state machine enforcing pending -> completed / cancelled transitions
//   - Item: an opaque line-item value with a JSON snapshot helper for deliveries
//
// Key business rules:
//   - The order number is derived from the creation instant and assigned exactly once
//   - Cancelling an already-cancelled order is a no-op success (retry safety)
//   - A cancelled order cannot be completed
//   - All status changes go through the Status transition table
package order
