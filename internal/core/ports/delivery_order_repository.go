package ports

import (
	"context"

	"picante/internal/core/domain/model/deliveryorder"
)

// DeliveryOrderRepository defines the persistence contract for delivery
// order aggregates, including their item lines.
type DeliveryOrderRepository interface {
	// Add persists a new delivery order with its items and assigns its
	// storage identifier.
	Add(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error

	// Update persists changes to an existing delivery order.
	Update(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error

	// Get retrieves a delivery order by its unique identifier, items included.
	Get(ctx context.Context, id uint) (*deliveryorder.DeliveryOrder, error)

	// GetAll retrieves every delivery order, newest first.
	GetAll(ctx context.Context) ([]*deliveryorder.DeliveryOrder, error)

	// GetAllByStatus retrieves all delivery orders in a status, newest first.
	GetAllByStatus(ctx context.Context, status deliveryorder.Status) ([]*deliveryorder.DeliveryOrder, error)
}
