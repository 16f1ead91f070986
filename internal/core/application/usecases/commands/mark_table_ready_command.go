package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrMarkTableReadyCommandIsNotConstructed = errors.New(
	"MarkTableReadyCommand must be created via NewMarkTableReadyCommand constructor",
)

// MarkTableReadyCommand records that the kitchen finished a table's order.
type MarkTableReadyCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewMarkTableReadyCommand creates a command to mark a table's order as ready.
func NewMarkTableReadyCommand(tableID uint) (MarkTableReadyCommand, error) {
	if tableID == 0 {
		return MarkTableReadyCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return MarkTableReadyCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkTableReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkTableReadyCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c MarkTableReadyCommand) TableID() uint {
	return c.tableID
}
