package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations: two waiters
// mutating the same table each get their own transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every mutation of a
// table, order, or delivery order (plus its owned items) happens inside one
// unit of work so partial writes never become visible. Cross-entity
// mirroring (proxy table -> delivery status) runs in a separate unit of
// work and is best-effort.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TableRepository returns a TableRepository bound to the current transaction.
	TableRepository() TableRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DeliveryOrderRepository returns a DeliveryOrderRepository bound to the
	// current transaction.
	DeliveryOrderRepository() DeliveryOrderRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository
}
