package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrServeTableCommandIsNotConstructed = errors.New(
	"ServeTableCommand must be created via NewServeTableCommand constructor",
)

// ServeTableCommand records that the order reached the table.
type ServeTableCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewServeTableCommand creates a command to mark a table as being served.
func NewServeTableCommand(tableID uint) (ServeTableCommand, error) {
	if tableID == 0 {
		return ServeTableCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return ServeTableCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ServeTableCommand) Validate() error {
	return c.guard.Validate(ErrServeTableCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c ServeTableCommand) TableID() uint {
	return c.tableID
}
