package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryOrdersByStatusQueryHandler reads the delivery board filtered by
// lifecycle state, newest first.
type GetDeliveryOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrdersByStatusQueryHandler creates a handler for
// status-filtered delivery queries.
func NewGetDeliveryOrdersByStatusQueryHandler(db *gorm.DB) GetDeliveryOrdersByStatusQueryHandler {
	return GetDeliveryOrdersByStatusQueryHandler{db: db}
}

// Handle returns the matching delivery orders, items included.
func (h GetDeliveryOrdersByStatusQueryHandler) Handle(
	ctx context.Context, query GetDeliveryOrdersByStatusQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		deliveryOrderColumns+`
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanDeliveryOrders(rows)
	if err != nil {
		return nil, err
	}

	return attachDeliveryOrderItems(ctx, h.db, orders)
}
