package queries

import (
	"errors"

	"picante/internal/pkg/guard"
)

var ErrGetAllDeliveryOrdersQueryIsNotConstructed = errors.New(
	"GetAllDeliveryOrdersQuery must be created via NewGetAllDeliveryOrdersQuery constructor",
)

// GetAllDeliveryOrdersQuery retrieves every delivery order, newest first.
// Parameterless.
type GetAllDeliveryOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveryOrdersQuery creates a query to retrieve all delivery orders.
func NewGetAllDeliveryOrdersQuery() GetAllDeliveryOrdersQuery {
	return GetAllDeliveryOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveryOrdersQueryIsNotConstructed)
}
