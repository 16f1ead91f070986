// Package deliveryorder holds the delivery order aggregate: a customer order
// that lives outside the dining room but shares the restaurant's single
// kitchen. A delivery order keeps its own lifecycle and timestamps; when it
// is sent to the kitchen, a proxy table and a kitchen order are created to
// represent it on the kitchen board, and the record here is never deleted by
// that routing.
package deliveryorder

import (
	"errors"
	"fmt"
	"time"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var (
	// ErrDeliveryOrderIsNotConstructed is returned when a DeliveryOrder was
	// not created through NewDeliveryOrder or RestoreDeliveryOrder.
	ErrDeliveryOrderIsNotConstructed = errors.New(
		"DeliveryOrder must be created via NewDeliveryOrder constructor")

	// ErrItemIsNotConstructed is returned when an Item was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of a delivery order. Unlike kitchen order lines, the unit
// price comes from the customer request and is caller-trusted.
type Item struct {
	id          uint
	productID   uint
	productName string
	quantity    int
	unitPrice   float64
	subtotal    float64

	guard guard.ConstructorGuard
}

// NewItem creates a delivery order line with subtotal = quantity * unitPrice.
func NewItem(productID uint, productName string, quantity int, unitPrice float64) (Item, error) {
	if productID == 0 {
		return Item{}, errs.NewValueIsRequiredError("productID")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		subtotal:    unitPrice * float64(quantity),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a delivery order line from persistence.
func RestoreItem(id, productID uint, productName string, quantity int, unitPrice, subtotal float64) Item {
	return Item{
		id:          id,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		subtotal:    subtotal,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the Item was constructed through NewItem or RestoreItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line's storage identifier (zero before first insert).
func (i Item) ID() uint { return i.id }

// ProductID returns the referenced catalog product.
func (i Item) ProductID() uint { return i.productID }

// ProductName returns the product name snapshot.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the caller-supplied unit price.
func (i Item) UnitPrice() float64 { return i.unitPrice }

// Subtotal returns quantity * unit price.
func (i Item) Subtotal() float64 { return i.subtotal }

// DeliveryOrder is the delivery aggregate. The total is accepted from the
// caller at creation time and never recomputed from items here; kitchen
// routing re-prices its own lines from the catalog instead.
type DeliveryOrder struct {
	id           uint
	customerName string
	phone        string
	address      string
	reference    string
	notes        string
	status       Status
	totalAmount  float64
	createdAt    time.Time
	readyAt      *time.Time
	dispatchedAt *time.Time
	deliveredAt  *time.Time
	items        []Item

	guard guard.ConstructorGuard
}

// NewDeliveryOrder creates a PENDING delivery order. Customer name, phone,
// and address are required; reference and notes are optional.
func NewDeliveryOrder(
	customerName, phone, address, reference, notes string, totalAmount float64, now time.Time,
) (*DeliveryOrder, error) {
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &DeliveryOrder{
		customerName: customerName,
		phone:        phone,
		address:      address,
		reference:    reference,
		notes:        notes,
		status:       StatusPending,
		totalAmount:  totalAmount,
		createdAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryOrder reconstructs a delivery order aggregate from persistence.
func RestoreDeliveryOrder(
	id uint, customerName, phone, address, reference, notes string, status Status,
	totalAmount float64, createdAt time.Time, readyAt, dispatchedAt, deliveredAt *time.Time,
	items []Item,
) (*DeliveryOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDeliveryOrder(customerName, phone, address, reference, notes, totalAmount, createdAt)
	if err != nil {
		return nil, err
	}

	d.id = id
	d.status = status
	d.readyAt = readyAt
	d.dispatchedAt = dispatchedAt
	d.deliveredAt = deliveredAt
	d.items = items
	return d, nil
}

// Validate ensures the DeliveryOrder was constructed through a constructor.
func (d *DeliveryOrder) Validate() error {
	if d == nil {
		return ErrDeliveryOrderIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryOrderIsNotConstructed)
}

// SetID records the storage-assigned identifier. It may be called exactly
// once, by the repository, after the first insert.
func (d *DeliveryOrder) SetID(id uint) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

// ID returns the delivery order's unique identifier.
func (d *DeliveryOrder) ID() uint { return d.id }

// CustomerName returns the customer's name.
func (d *DeliveryOrder) CustomerName() string { return d.customerName }

// Phone returns the customer's phone number.
func (d *DeliveryOrder) Phone() string { return d.phone }

// Address returns the delivery address.
func (d *DeliveryOrder) Address() string { return d.address }

// Reference returns the optional address reference.
func (d *DeliveryOrder) Reference() string { return d.reference }

// Notes returns the optional order notes.
func (d *DeliveryOrder) Notes() string { return d.notes }

// Status returns the delivery order's current lifecycle state.
func (d *DeliveryOrder) Status() Status { return d.status }

// TotalAmount returns the caller-supplied order total.
func (d *DeliveryOrder) TotalAmount() float64 { return d.totalAmount }

// CreatedAt returns when the order was created.
func (d *DeliveryOrder) CreatedAt() time.Time { return d.createdAt }

// ReadyAt returns when the order last became READY, or nil.
func (d *DeliveryOrder) ReadyAt() *time.Time { return d.readyAt }

// DispatchedAt returns when the order last left with a rider, or nil.
func (d *DeliveryOrder) DispatchedAt() *time.Time { return d.dispatchedAt }

// DeliveredAt returns when the order was last delivered, or nil.
func (d *DeliveryOrder) DeliveredAt() *time.Time { return d.deliveredAt }

// Items returns a copy of the delivery order's lines.
func (d *DeliveryOrder) Items() []Item {
	items := make([]Item, len(d.items))
	copy(items, d.items)
	return items
}

// AddItem appends a line with the caller-supplied price. The order total
// stays as supplied at creation.
func (d *DeliveryOrder) AddItem(productID uint, productName string, quantity int, unitPrice float64) error {
	item, err := NewItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}
	d.items = append(d.items, item)
	return nil
}

// ChangeStatus sets a new status and stamps the stage timestamp for READY,
// DISPATCHED, and DELIVERED. Re-entering the same stage re-stamps the
// timestamp; retried transitions intentionally refresh it.
func (d *DeliveryOrder) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	d.status = newStatus
	switch newStatus {
	case StatusReady:
		d.readyAt = &now
	case StatusDispatched:
		d.dispatchedAt = &now
	case StatusDelivered:
		d.deliveredAt = &now
	case StatusPending, StatusPreparing, StatusCancelled:
		// No stage timestamp for these states.
	}
	return nil
}
