package commands

import (
	"errors"
	"fmt"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// DeliveryLine is one requested line of a delivery order. Unlike dine-in
// lines, the unit price arrives from the caller and is trusted as-is; only
// the product reference is validated against the catalog.
type DeliveryLine struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

// CreateDeliveryOrderCommand represents a customer placing a delivery order.
// Items are optional; an empty order is a valid placeholder the customer
// completes by phone. The total is caller-supplied and never recomputed.
type CreateDeliveryOrderCommand struct {
	customerName string
	phone        string
	address      string
	reference    string
	notes        string
	totalAmount  float64
	lines        []DeliveryLine

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand creates a command to register a delivery order.
// Customer name, phone, and address are required; every present line needs a
// product reference and a positive quantity.
func NewCreateDeliveryOrderCommand(
	customerName, phone, address, reference, notes string,
	totalAmount float64, lines []DeliveryLine,
) (CreateDeliveryOrderCommand, error) {
	if customerName == "" {
		return CreateDeliveryOrderCommand{}, errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return CreateDeliveryOrderCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return CreateDeliveryOrderCommand{}, errs.NewValueIsRequiredError("address")
	}
	for _, line := range lines {
		if line.ProductID == 0 {
			return CreateDeliveryOrderCommand{}, errs.NewValueIsRequiredError("productId")
		}
		if line.Quantity <= 0 {
			return CreateDeliveryOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}

	return CreateDeliveryOrderCommand{
		customerName: customerName,
		phone:        phone,
		address:      address,
		reference:    reference,
		notes:        notes,
		totalAmount:  totalAmount,
		lines:        lines,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

// CustomerName returns the customer's name.
func (c CreateDeliveryOrderCommand) CustomerName() string { return c.customerName }

// Phone returns the customer's phone number.
func (c CreateDeliveryOrderCommand) Phone() string { return c.phone }

// Address returns the delivery address.
func (c CreateDeliveryOrderCommand) Address() string { return c.address }

// Reference returns the optional address reference.
func (c CreateDeliveryOrderCommand) Reference() string { return c.reference }

// Notes returns the optional order notes.
func (c CreateDeliveryOrderCommand) Notes() string { return c.notes }

// TotalAmount returns the caller-supplied order total.
func (c CreateDeliveryOrderCommand) TotalAmount() float64 { return c.totalAmount }

// Lines returns the requested delivery lines.
func (c CreateDeliveryOrderCommand) Lines() []DeliveryLine { return c.lines }
