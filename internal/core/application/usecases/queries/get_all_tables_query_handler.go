package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllTablesQueryHandler reads the full table list for the floor overview.
type GetAllTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTablesQueryHandler creates a handler for the table overview query.
func NewGetAllTablesQueryHandler(db *gorm.DB) GetAllTablesQueryHandler {
	return GetAllTablesQueryHandler{db: db}
}

// Handle returns every table ordered by id, so the floor layout is stable
// across refreshes.
func (h GetAllTablesQueryHandler) Handle(
	ctx context.Context, query GetAllTablesQuery,
) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]TableResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			capacity,
			status,
			occupied_at,
			preparation_at
		FROM restaurant_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t TableResponse
		if err = rows.Scan(
			&t.ID,
			&t.Name,
			&t.Capacity,
			&t.Status,
			&t.OccupiedAt,
			&t.PreparationAt,
		); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
