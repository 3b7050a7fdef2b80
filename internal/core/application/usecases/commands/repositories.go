// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordersvc/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across the order, payment, and
// delivery records.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations,
	// e.g. rescheduling and the dispatch job.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// OrderPaymentUoW manages transactions spanning order and payment records.
	OrderPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// OrderPaymentUoWFactory creates unit of work instances for order+payment operations.
	OrderPaymentUoWFactory interface {
		Create() OrderPaymentUoW
	}

	// UoW manages transactions across all three records. Used by the create
	// and cancel protocols, which must observe each step's result within one
	// transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   paymentRepo := uow.PaymentRepository()
	//   deliveryRepo := uow.DeliveryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		DeliveryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-record operations.
	UoWFactory interface {
		Create() UoW
	}
)
