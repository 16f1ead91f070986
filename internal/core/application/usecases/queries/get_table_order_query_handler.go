package queries

import (
	"context"

	"picante/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTableOrderQueryHandler reads the bill-facing details of a table's
// active order. OPEN wins over WAITING_PAYMENT; when duplicates exist the
// most recently created row is the active one.
type GetTableOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetTableOrderQueryHandler creates a handler for table order details.
func NewGetTableOrderQueryHandler(db *gorm.DB) GetTableOrderQueryHandler {
	return GetTableOrderQueryHandler{db: db}
}

// Handle returns the table's active order with its items, or NotFound when
// the table has neither an OPEN nor a WAITING_PAYMENT order.
func (h GetTableOrderQueryHandler) Handle(
	ctx context.Context, query GetTableOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	for _, status := range []string{"OPEN", "WAITING_PAYMENT"} {
		resp, found, err := h.findOrder(ctx, query.TableID(), status)
		if err != nil {
			return OrderResponse{}, err
		}
		if found {
			items, err := loadOrderItems(ctx, h.db, []uint{resp.ID})
			if err != nil {
				return OrderResponse{}, err
			}
			resp.Items = items[resp.ID]
			return resp, nil
		}
	}

	return OrderResponse{}, errs.NewObjectNotFoundError("tableId", query.TableID())
}

func (h GetTableOrderQueryHandler) findOrder(
	ctx context.Context, tableID uint, status string,
) (OrderResponse, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_id,
			table_number,
			table_name,
			status,
			total_amount,
			created_at,
			paid_at
		FROM orders
		WHERE table_id = ? AND status = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, tableID, status).Rows()
	if err != nil {
		return OrderResponse{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return OrderResponse{}, false, rows.Err()
	}

	var resp OrderResponse
	if err = rows.Scan(
		&resp.ID,
		&resp.TableID,
		&resp.TableNumber,
		&resp.TableName,
		&resp.Status,
		&resp.TotalAmount,
		&resp.CreatedAt,
		&resp.PaidAt,
	); err != nil {
		return OrderResponse{}, false, err
	}

	return resp, true, rows.Err()
}

// loadOrderItems fetches the lines for a set of orders in one query and
// groups them by order id.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uint) (map[uint][]OrderItemResponse, error) {
	items := make(map[uint][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uint
		var item OrderItemResponse
		if err = rows.Scan(
			&item.ID,
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}
