package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrRequestBillCommandIsNotConstructed = errors.New(
	"RequestBillCommand must be created via NewRequestBillCommand constructor",
)

// RequestBillCommand represents guests asking for the bill.
type RequestBillCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewRequestBillCommand creates a command to request the bill for a table.
func NewRequestBillCommand(tableID uint) (RequestBillCommand, error) {
	if tableID == 0 {
		return RequestBillCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return RequestBillCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestBillCommand) Validate() error {
	return c.guard.Validate(ErrRequestBillCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c RequestBillCommand) TableID() uint {
	return c.tableID
}
