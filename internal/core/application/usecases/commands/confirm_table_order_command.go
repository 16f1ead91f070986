package commands

import (
	"errors"
	"fmt"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrConfirmTableOrderCommandIsNotConstructed = errors.New(
	"ConfirmTableOrderCommand must be created via NewConfirmTableOrderCommand constructor",
)

// OrderLine is one requested line of a dine-in order: a catalog product
// reference and a quantity. Prices are never accepted here; they are resolved
// from the catalog when the order is confirmed.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// ConfirmTableOrderCommand represents a waiter confirming a table's selection.
// The item list must be non-empty and every line needs a product reference
// and a positive quantity.
type ConfirmTableOrderCommand struct {
	tableID uint
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewConfirmTableOrderCommand creates a command to confirm a table's order.
func NewConfirmTableOrderCommand(tableID uint, lines []OrderLine) (ConfirmTableOrderCommand, error) {
	if tableID == 0 {
		return ConfirmTableOrderCommand{}, errs.NewValueIsRequiredError("tableID")
	}
	if len(lines) == 0 {
		return ConfirmTableOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if line.ProductID == 0 {
			return ConfirmTableOrderCommand{}, errs.NewValueIsRequiredError("productId")
		}
		if line.Quantity <= 0 {
			return ConfirmTableOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}

	return ConfirmTableOrderCommand{
		tableID: tableID,
		lines:   lines,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmTableOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTableOrderCommandIsNotConstructed)
}

// TableID returns the target table's identifier.
func (c ConfirmTableOrderCommand) TableID() uint {
	return c.tableID
}

// Lines returns the requested order lines.
func (c ConfirmTableOrderCommand) Lines() []OrderLine {
	return c.lines
}
