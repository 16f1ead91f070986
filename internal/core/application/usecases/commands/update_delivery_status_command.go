package commands

import (
	"errors"

	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves a delivery order to a new lifecycle state.
// The raw status string is parsed case-insensitively; an unrecognized value
// is rejected at construction.
type UpdateDeliveryStatusCommand struct {
	deliveryOrderID uint
	status          deliveryorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a delivery
// order's status from its raw string form.
func NewUpdateDeliveryStatusCommand(deliveryOrderID uint, rawStatus string) (UpdateDeliveryStatusCommand, error) {
	if deliveryOrderID == 0 {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredError("deliveryOrderID")
	}

	status, err := deliveryorder.ParseStatus(rawStatus)
	if err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		deliveryOrderID: deliveryOrderID,
		status:          status,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryOrderID returns the target delivery order's identifier.
func (c UpdateDeliveryStatusCommand) DeliveryOrderID() uint {
	return c.deliveryOrderID
}

// Status returns the parsed target status.
func (c UpdateDeliveryStatusCommand) Status() deliveryorder.Status {
	return c.status
}
