package order

import (
	"errors"
	"fmt"
	"time"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder, NewKitchenOrder, or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemIsNotConstructed is returned when an Item was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of an order. Product name and unit price are snapshots
// taken when the line is created; later catalog changes never touch them.
type Item struct {
	id          uint
	productID   uint
	productName string
	quantity    int
	unitPrice   float64
	subtotal    float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line with subtotal = quantity * unitPrice.
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

// RestoreItem reconstructs an order line from persistence, keeping the
// persisted subtotal rather than recomputing it.
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

// ProductID returns the catalog product this line was priced from.
func (i Item) ProductID() uint { return i.productID }

// ProductName returns the product name snapshot.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the unit price snapshot.
func (i Item) UnitPrice() float64 { return i.unitPrice }

// Subtotal returns quantity * unit price as persisted.
func (i Item) Subtotal() float64 { return i.subtotal }

// Order is the kitchen-facing order aggregate. It owns its items and a
// denormalized snapshot of the table it was taken at, so the record stays
// meaningful even after the table moves on to the next party.
//
// Invariants:
//   - At most one OPEN or WAITING_PAYMENT order exists per table at a time
//     (enforced by the use cases, which always resolve the most recent one)
//   - After RecalculateTotal, totalAmount equals the sum of item subtotals
//   - Item snapshots are immutable once added
type Order struct {
	id          uint
	tableID     uint
	tableNumber int
	tableName   string
	status      Status
	totalAmount float64
	createdAt   time.Time
	paidAt      *time.Time
	items       []Item

	guard guard.ConstructorGuard
}

// NewOrder creates an OPEN dine-in order for a table. The table id and name
// are captured as a snapshot, not a live link.
func NewOrder(tableID uint, tableName string, now time.Time) (*Order, error) {
	if tableID == 0 {
		return nil, errs.NewValueIsRequiredError("tableID")
	}

	return &Order{
		tableID:     tableID,
		tableNumber: int(tableID),
		tableName:   tableName,
		status:      StatusOpen,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewKitchenOrder creates a PENDING order that feeds the kitchen board on
// behalf of a delivery order. The total mirrors the delivery order's total
// and is not recomputed from the routed items; the two amounts may
// diverge.
func NewKitchenOrder(tableID uint, tableName string, totalAmount float64, now time.Time) (*Order, error) {
	o, err := NewOrder(tableID, tableName, now)
	if err != nil {
		return nil, err
	}
	o.status = StatusPending
	o.totalAmount = totalAmount
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
func RestoreOrder(
	id, tableID uint, tableNumber int, tableName string, status Status,
	totalAmount float64, createdAt time.Time, paidAt *time.Time, items []Item,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(tableID, tableName, createdAt)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.tableNumber = tableNumber
	o.status = status
	o.totalAmount = totalAmount
	o.paidAt = paidAt
	o.items = items
	return o, nil
}

// Validate ensures the Order was constructed through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// SetID records the storage-assigned identifier. It may be called exactly
// once, by the repository, after the first insert.
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() uint { return o.id }

// TableID returns the id of the table the order was taken at.
func (o *Order) TableID() uint { return o.tableID }

// TableNumber returns the kitchen-board table number. It mirrors the table
// id for compatibility with the board layout.
func (o *Order) TableNumber() int { return o.tableNumber }

// TableName returns the table name snapshot.
func (o *Order) TableName() string { return o.tableName }

// Status returns the order's current lifecycle state.
func (o *Order) Status() Status { return o.status }

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// PaidAt returns when the order was settled, or nil.
func (o *Order) PaidAt() *time.Time { return o.paidAt }

// Items returns a copy of the order's lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a priced line to the order. The caller is responsible for
// recomputing the total afterwards via RecalculateTotal; kitchen orders for
// deliveries skip that on purpose and keep the delivery total.
func (o *Order) AddItem(productID uint, productName string, quantity int, unitPrice float64) error {
	item, err := NewItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// RecalculateTotal sets the order total to the sum of its item subtotals.
func (o *Order) RecalculateTotal() {
	var total float64
	for _, item := range o.items {
		total += item.subtotal
	}
	o.totalAmount = total
}

// RequestPayment moves an OPEN order to WAITING_PAYMENT.
func (o *Order) RequestPayment() error {
	if o.status != StatusOpen {
		return errs.NewStateConflictError("request payment", o.status.String())
	}
	o.status = StatusWaitingPayment
	return nil
}

// MarkPaid settles a WAITING_PAYMENT order and records the payment time.
func (o *Order) MarkPaid(now time.Time) error {
	if o.status != StatusWaitingPayment {
		return errs.NewStateConflictError("mark paid", o.status.String())
	}
	o.status = StatusPaid
	o.paidAt = &now
	return nil
}
