package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrPayTableCommandIsNotConstructed = errors.New(
	"PayTableCommand must be created via NewPayTableCommand constructor",
)

// PayTableCommand settles a table's bill.
type PayTableCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewPayTableCommand creates a command to settle a table's bill.
func NewPayTableCommand(tableID uint) (PayTableCommand, error) {
	if tableID == 0 {
		return PayTableCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return PayTableCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayTableCommand) Validate() error {
	return c.guard.Validate(ErrPayTableCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c PayTableCommand) TableID() uint {
	return c.tableID
}
