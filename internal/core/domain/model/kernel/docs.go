// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: the primary identity of the Order, Payment, and Delivery aggregates
//   - OrderNumber: the human-readable, time-derived order token
//
// Value objects in this package are immutable, validate themselves, and can only
// be created through their constructor functions.
package kernel
