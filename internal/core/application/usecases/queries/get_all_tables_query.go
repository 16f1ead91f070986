package queries

import (
	"errors"

	"picante/internal/pkg/guard"
)

var ErrGetAllTablesQueryIsNotConstructed = errors.New(
	"GetAllTablesQuery must be created via NewGetAllTablesQuery constructor",
)

// GetAllTablesQuery retrieves every table, physical and delivery proxy, for
// the floor overview. Parameterless.
type GetAllTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTablesQuery creates a query to retrieve all tables.
func NewGetAllTablesQuery() GetAllTablesQuery {
	return GetAllTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTablesQueryIsNotConstructed)
}
