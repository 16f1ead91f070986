package commands

import (
	"errors"
	"fmt"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrSendDeliveryToKitchenCommandIsNotConstructed = errors.New(
	"SendDeliveryToKitchenCommand must be created via NewSendDeliveryToKitchenCommand constructor",
)

// KitchenLine is one line routed from a delivery order into the kitchen
// queue. It carries no price; kitchen lines are re-priced from the catalog
// at routing time.
type KitchenLine struct {
	ProductID uint
	Quantity  int
}

// SendDeliveryToKitchenCommand routes a delivery order into the shared
// kitchen pipeline. The line list must be non-empty and every quantity
// positive; violations fail before anything is written.
type SendDeliveryToKitchenCommand struct {
	deliveryOrderID uint
	lines           []KitchenLine

	guard guard.ConstructorGuard
}

// NewSendDeliveryToKitchenCommand creates a command to route a delivery
// order to the kitchen.
func NewSendDeliveryToKitchenCommand(deliveryOrderID uint, lines []KitchenLine) (SendDeliveryToKitchenCommand, error) {
	if deliveryOrderID == 0 {
		return SendDeliveryToKitchenCommand{}, errs.NewValueIsRequiredError("deliveryOrderID")
	}
	if len(lines) == 0 {
		return SendDeliveryToKitchenCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if line.ProductID == 0 {
			return SendDeliveryToKitchenCommand{}, errs.NewValueIsRequiredError("productId")
		}
		if line.Quantity <= 0 {
			return SendDeliveryToKitchenCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}

	return SendDeliveryToKitchenCommand{
		deliveryOrderID: deliveryOrderID,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendDeliveryToKitchenCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryToKitchenCommandIsNotConstructed)
}

// DeliveryOrderID returns the delivery order to route.
func (c SendDeliveryToKitchenCommand) DeliveryOrderID() uint {
	return c.deliveryOrderID
}

// Lines returns the kitchen lines to route.
func (c SendDeliveryToKitchenCommand) Lines() []KitchenLine {
	return c.lines
}
