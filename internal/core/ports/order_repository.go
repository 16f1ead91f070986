package ports

import (
	"context"

	"picante/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for kitchen order
// aggregates, including their item lines.
type OrderRepository interface {
	// Add persists a new order with its items and assigns its storage identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and its items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, items included.
	Get(ctx context.Context, id uint) (*order.Order, error)

	// GetByTableAndStatus retrieves the most recently created order for a
	// table in the given status. Duplicates are resolved newest-first so
	// "the order for table X in status S" is deterministic.
	GetByTableAndStatus(ctx context.Context, tableID uint, status order.Status) (*order.Order, error)

	// GetAllByStatus retrieves all orders in a status, newest first, with
	// items eagerly loaded in a single extra query.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes an order and, by cascade, its items. Used by
	// cancellation, which keeps no audit trail of cancelled orders.
	Delete(ctx context.Context, id uint) error
}
