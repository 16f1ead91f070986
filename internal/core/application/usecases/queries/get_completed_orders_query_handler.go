package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCompletedOrdersQueryHandler reads the PAID order history. Items are
// fetched for all orders in a single second query rather than one query per
// order; the report covers whole days of service.
type GetCompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCompletedOrdersQueryHandler creates a handler for the completed
// orders report.
func NewGetCompletedOrdersQueryHandler(db *gorm.DB) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{db: db}
}

// Handle returns all PAID orders newest first, items included.
func (h GetCompletedOrdersQueryHandler) Handle(
	ctx context.Context, query GetCompletedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

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
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
	`, "PAID").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
			return nil, err
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	orderIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	items, err := loadOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}
