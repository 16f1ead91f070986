package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrStartPreparationCommandIsNotConstructed = errors.New(
	"StartPreparationCommand must be created via NewStartPreparationCommand constructor",
)

// StartPreparationCommand records that the kitchen began cooking a table's order.
type StartPreparationCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewStartPreparationCommand creates a command to start preparation for a table.
func NewStartPreparationCommand(tableID uint) (StartPreparationCommand, error) {
	if tableID == 0 {
		return StartPreparationCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return StartPreparationCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparationCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c StartPreparationCommand) TableID() uint {
	return c.tableID
}
