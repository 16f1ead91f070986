package commands

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrOccupyTableCommandIsNotConstructed = errors.New(
	"OccupyTableCommand must be created via NewOccupyTableCommand constructor",
)

// OccupyTableCommand represents a request to seat guests at a table.
//
// Example:
//
//	cmd, err := NewOccupyTableCommand(tableID)
//	if err != nil {
//	    return fmt.Errorf("invalid table: %w", err)
//	}
//
//	handler := NewOccupyTableCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to occupy table: %w", err)
//	}
type OccupyTableCommand struct {
	tableID uint

	guard guard.ConstructorGuard
}

// NewOccupyTableCommand creates a command to occupy a table.
// Validates that the table id is set.
func NewOccupyTableCommand(tableID uint) (OccupyTableCommand, error) {
	if tableID == 0 {
		return OccupyTableCommand{}, errs.NewValueIsRequiredError("tableID")
	}

	return OccupyTableCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OccupyTableCommand) Validate() error {
	return c.guard.Validate(ErrOccupyTableCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c OccupyTableCommand) TableID() uint {
	return c.tableID
}
