package queries

import (
	"errors"

	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/pkg/guard"
)

var ErrGetDeliveryOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetDeliveryOrdersByStatusQuery must be created via NewGetDeliveryOrdersByStatusQuery constructor",
)

// GetDeliveryOrdersByStatusQuery retrieves delivery orders in one lifecycle
// state. The raw status string is matched case-insensitively; unrecognized
// values are rejected at construction.
type GetDeliveryOrdersByStatusQuery struct {
	status deliveryorder.Status

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersByStatusQuery creates a status-filtered delivery query
// from the raw status string.
func NewGetDeliveryOrdersByStatusQuery(rawStatus string) (GetDeliveryOrdersByStatusQuery, error) {
	status, err := deliveryorder.ParseStatus(rawStatus)
	if err != nil {
		return GetDeliveryOrdersByStatusQuery{}, err
	}

	return GetDeliveryOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersByStatusQueryIsNotConstructed)
}

// Status returns the parsed status filter.
func (q GetDeliveryOrdersByStatusQuery) Status() deliveryorder.Status {
	return q.status
}
