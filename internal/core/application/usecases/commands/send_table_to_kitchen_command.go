package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrSendTableToKitchenCommandIsNotConstructed = errors.New(
	"SendTableToKitchenCommand must be created via NewSendTableToKitchenCommand constructor",
)

// SendTableToKitchenCommand queues a confirmed table order for the kitchen.
type SendTableToKitchenCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewSendTableToKitchenCommand creates a command to queue a table for the kitchen.
func NewSendTableToKitchenCommand(tableID uint) (SendTableToKitchenCommand, error) {
	if tableID == 0 {
		return SendTableToKitchenCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return SendTableToKitchenCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendTableToKitchenCommand) Validate() error {
	return c.guard.Validate(ErrSendTableToKitchenCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c SendTableToKitchenCommand) TableID() uint {
	return c.tableID
}
