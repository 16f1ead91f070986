// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"picante/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryOrderRepoFactory provides access to the delivery order repository
	// within a transaction.
	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// ProductRepoFactory provides access to the catalog repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// TableUoW manages transactions for table-only operations: occupy, serve,
	// free, the kitchen stage changes.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// TableOrderUoW manages transactions that move a table and its order
	// together: request bill, pay, cancel.
	TableOrderUoW interface {
		TxManager
		TableRepoFactory
		OrderRepoFactory
	}

	// TableOrderUoWFactory creates new table+order unit of work instances.
	TableOrderUoWFactory interface {
		Create() TableOrderUoW
	}

	// DeliveryUoW manages transactions for delivery order operations. The
	// catalog repository is included because delivery lines resolve their
	// product snapshot at creation time.
	DeliveryUoW interface {
		TxManager
		DeliveryOrderRepoFactory
		ProductRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW manages transactions across every aggregate in the kitchen pipeline.
	// Used by order confirmation (table + order + catalog) and by kitchen
	// routing of delivery orders (all four).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tableRepo := uow.TableRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TableRepoFactory
		OrderRepoFactory
		DeliveryOrderRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
