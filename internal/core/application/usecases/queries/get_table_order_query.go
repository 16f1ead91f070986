package queries

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrGetTableOrderQueryIsNotConstructed = errors.New(
	"GetTableOrderQuery must be created via NewGetTableOrderQuery constructor",
)

// GetTableOrderQuery retrieves the active order of a table: its OPEN order,
// or failing that its WAITING_PAYMENT order, items included.
type GetTableOrderQuery struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewGetTableOrderQuery creates a query for a table's active order.
func NewGetTableOrderQuery(tableID uint) (GetTableOrderQuery, error) {
	if tableID == 0 {
		return GetTableOrderQuery{}, errs.NewValueIsRequiredError("tableID")
	}

	return GetTableOrderQuery{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTableOrderQueryIsNotConstructed)
}

// TableID returns the table whose order is requested.
func (q GetTableOrderQuery) TableID() uint {
	return q.tableID
}
