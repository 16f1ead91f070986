package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

const deliveryOrderColumns = `
	SELECT
		id,
		customer_name,
		phone,
		address,
		reference,
		notes,
		status,
		total_amount,
		created_at,
		ready_at,
		dispatched_at,
		delivered_at
	FROM delivery_orders`

// GetAllDeliveryOrdersQueryHandler reads the delivery board: every delivery
// order with its items, newest first.
type GetAllDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveryOrdersQueryHandler creates a handler for the delivery board.
func NewGetAllDeliveryOrdersQueryHandler(db *gorm.DB) GetAllDeliveryOrdersQueryHandler {
	return GetAllDeliveryOrdersQueryHandler{db: db}
}

// Handle returns all delivery orders newest first, items included.
func (h GetAllDeliveryOrdersQueryHandler) Handle(
	ctx context.Context, query GetAllDeliveryOrdersQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		deliveryOrderColumns + `
		ORDER BY created_at DESC, id DESC
	`).Rows()
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

// scanDeliveryOrders reads delivery order rows produced by deliveryOrderColumns.
func scanDeliveryOrders(rows *sql.Rows) ([]DeliveryOrderResponse, error) {
	orders := make([]DeliveryOrderResponse, 0)

	for rows.Next() {
		var resp DeliveryOrderResponse
		if err := rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.Phone,
			&resp.Address,
			&resp.Reference,
			&resp.Notes,
			&resp.Status,
			&resp.TotalAmount,
			&resp.CreatedAt,
			&resp.ReadyAt,
			&resp.DispatchedAt,
			&resp.DeliveredAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

// attachDeliveryOrderItems loads the lines for all given delivery orders in
// one query and attaches them.
func attachDeliveryOrderItems(
	ctx context.Context, db *gorm.DB, orders []DeliveryOrderResponse,
) ([]DeliveryOrderResponse, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_order_id,
			product_id,
			product_name,
			quantity,
			unit_price,
			subtotal
		FROM delivery_order_items
		WHERE delivery_order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uint][]DeliveryOrderItemResponse, len(orders))
	for rows.Next() {
		var deliveryOrderID uint
		var item DeliveryOrderItemResponse
		if err = rows.Scan(
			&item.ID,
			&deliveryOrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		); err != nil {
			return nil, err
		}
		items[deliveryOrderID] = append(items[deliveryOrderID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}
