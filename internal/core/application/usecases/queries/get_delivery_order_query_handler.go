package queries

import (
	"context"

	"picante/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryOrderQueryHandler reads one delivery order with its items.
type GetDeliveryOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrderQueryHandler creates a handler for single delivery
// order lookups.
func NewGetDeliveryOrderQueryHandler(db *gorm.DB) GetDeliveryOrderQueryHandler {
	return GetDeliveryOrderQueryHandler{db: db}
}

// Handle returns the delivery order or NotFound.
func (h GetDeliveryOrderQueryHandler) Handle(
	ctx context.Context, query GetDeliveryOrderQuery,
) (DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		deliveryOrderColumns+`
		WHERE id = ?
	`, query.DeliveryOrderID()).Rows()
	if err != nil {
		return DeliveryOrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanDeliveryOrders(rows)
	if err != nil {
		return DeliveryOrderResponse{}, err
	}
	if len(orders) == 0 {
		return DeliveryOrderResponse{}, errs.NewObjectNotFoundError(
			"deliveryOrderId", query.DeliveryOrderID())
	}

	orders, err = attachDeliveryOrderItems(ctx, h.db, orders)
	if err != nil {
		return DeliveryOrderResponse{}, err
	}

	return orders[0], nil
}
