package queries

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrGetDeliveryOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryOrderQuery must be created via NewGetDeliveryOrderQuery constructor",
)

// GetDeliveryOrderQuery retrieves one delivery order by id, items included.
type GetDeliveryOrderQuery struct {
	deliveryOrderID uint

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrderQuery creates a query for a single delivery order.
func NewGetDeliveryOrderQuery(deliveryOrderID uint) (GetDeliveryOrderQuery, error) {
	if deliveryOrderID == 0 {
		return GetDeliveryOrderQuery{}, errs.NewValueIsRequiredError("deliveryOrderID")
	}

	return GetDeliveryOrderQuery{
		deliveryOrderID: deliveryOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrderQueryIsNotConstructed)
}

// DeliveryOrderID returns the requested delivery order's identifier.
func (q GetDeliveryOrderQuery) DeliveryOrderID() uint {
	return q.deliveryOrderID
}
