package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrCancelTableOrderCommandIsNotConstructed = errors.New(
	"CancelTableOrderCommand must be created via NewCancelTableOrderCommand constructor",
)

// CancelTableOrderCommand aborts a table's order before the kitchen starts
// cooking it.
type CancelTableOrderCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewCancelTableOrderCommand creates a command to cancel a table's order.
func NewCancelTableOrderCommand(tableID uint) (CancelTableOrderCommand, error) {
	if tableID == 0 {
		return CancelTableOrderCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return CancelTableOrderCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTableOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelTableOrderCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c CancelTableOrderCommand) TableID() uint {
	return c.tableID
}
