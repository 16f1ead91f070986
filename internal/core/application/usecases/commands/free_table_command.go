package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrFreeTableCommandIsNotConstructed = errors.New(
	"FreeTableCommand must be created via NewFreeTableCommand constructor",
)

// FreeTableCommand unconditionally returns a table to AVAILABLE. It has no
// order side effects; staff use it to fix a table stuck in a wrong state.
type FreeTableCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewFreeTableCommand creates a command to free a table.
func NewFreeTableCommand(tableID uint) (FreeTableCommand, error) {
	if tableID == 0 {
		return FreeTableCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return FreeTableCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FreeTableCommand) Validate() error {
	return c.guard.Validate(ErrFreeTableCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c FreeTableCommand) TableID() uint {
	return c.tableID
}
