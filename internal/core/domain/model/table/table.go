package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable, NewProxyTable, or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// proxyNamePrefix marks virtual tables that represent delivery orders in the
// kitchen queue. The numeric suffix is the delivery order id.
const proxyNamePrefix = "DELIVERY #"

// ProxyName derives the deterministic name of the virtual table that fronts
// a delivery order in the kitchen pipeline.
func ProxyName(deliveryOrderID uint) string {
	return proxyNamePrefix + strconv.FormatUint(uint64(deliveryOrderID), 10)
}

// ExtractDeliveryOrderID parses a table name and, when it matches the
// "DELIVERY #<id>" proxy contract, returns the delivery order id it encodes.
// Malformed suffixes are treated as "not a proxy", never as an error.
func ExtractDeliveryOrderID(name string) (uint, bool) {
	suffix, ok := strings.CutPrefix(name, proxyNamePrefix)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(suffix, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Table is a seat of kitchen work: either a physical table in the dining room
// or a virtual proxy for a delivery order. Its status drives the kitchen
// board; occupiedAt and preparationAt track service timing.
//
// Invariants:
//   - Name is unique across physical and proxy tables (enforced by storage)
//   - occupiedAt starts only at order confirmation, not at occupation
//   - Status changes happen exclusively through the methods below
type Table struct {
	id            uint
	name          string
	capacity      int
	status        Status
	occupiedAt    *time.Time
	preparationAt *time.Time

	guard guard.ConstructorGuard
}

// NewTable creates a physical table in AVAILABLE status. The identifier is
// assigned by storage on first insert via SetID.
func NewTable(name string, capacity int) (*Table, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if capacity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is negative", capacity))
	}

	return &Table{
		name:     name,
		capacity: capacity,
		status:   StatusAvailable,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewProxyTable creates the virtual table representing a delivery order.
// Capacity is zero because no guests ever sit at it.
func NewProxyTable(deliveryOrderID uint) (*Table, error) {
	if deliveryOrderID == 0 {
		return nil, errs.NewValueIsRequiredError("deliveryOrderID")
	}
	return NewTable(ProxyName(deliveryOrderID), 0)
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(
	id uint, name string, capacity int, status Status, occupiedAt, preparationAt *time.Time,
) (*Table, error) {
	t, err := NewTable(name, capacity)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.id = id
	t.status = status
	t.occupiedAt = occupiedAt
	t.preparationAt = preparationAt
	return t, nil
}

// Validate ensures the Table was constructed through a constructor.
func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// SetID records the storage-assigned identifier. It may be called exactly
// once, by the repository, after the first insert.
func (t *Table) SetID(id uint) error {
	if t.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	t.id = id
	return nil
}

// ID returns the table's unique identifier.
func (t *Table) ID() uint {
	return t.id
}

// Name returns the table's unique display name.
func (t *Table) Name() string {
	return t.name
}

// Capacity returns the number of seats. Proxy tables report zero.
func (t *Table) Capacity() int {
	return t.capacity
}

// Status returns the table's current lifecycle state.
func (t *Table) Status() Status {
	return t.status
}

// OccupiedAt returns when the current order was confirmed, or nil.
func (t *Table) OccupiedAt() *time.Time {
	return t.occupiedAt
}

// PreparationAt returns when the kitchen started cooking, or nil.
func (t *Table) PreparationAt() *time.Time {
	return t.preparationAt
}

// DeliveryOrderID returns the delivery order this table fronts, when the
// table is a delivery proxy.
func (t *Table) DeliveryOrderID() (uint, bool) {
	return ExtractDeliveryOrderID(t.name)
}

// Occupy seats guests at the table. The occupation clock does not start
// here; it starts when the order is confirmed.
func (t *Table) Occupy() {
	t.status = StatusOccupied
	t.occupiedAt = nil
}

// ConfirmOrder marks the table's order as confirmed and starts the
// occupation clock.
func (t *Table) ConfirmOrder(now time.Time) {
	t.status = StatusReadyToKitchen
	t.occupiedAt = &now
}

// SendToKitchen queues the confirmed order for the kitchen.
func (t *Table) SendToKitchen() {
	t.status = StatusWaitingKitchen
}

// RouteToKitchen places the table in the kitchen queue with a fresh
// occupation clock. Used when a delivery order is (re)routed through its
// proxy table.
func (t *Table) RouteToKitchen(now time.Time) {
	t.status = StatusWaitingKitchen
	t.occupiedAt = &now
	t.preparationAt = nil
}

// StartPreparation records that the kitchen began cooking.
func (t *Table) StartPreparation(now time.Time) {
	t.status = StatusPreparing
	t.preparationAt = &now
}

// MarkReady records that the kitchen finished the order.
func (t *Table) MarkReady() {
	t.status = StatusReady
}

// Serve records that the order reached the table.
func (t *Table) Serve() {
	t.status = StatusServing
}

// RequestBill moves the table to WAITING_PAYMENT.
func (t *Table) RequestBill() {
	t.status = StatusWaitingPayment
}

// Release unconditionally returns the table to AVAILABLE and clears both
// service clocks. Used by free, pay, and cancel.
func (t *Table) Release() {
	t.status = StatusAvailable
	t.occupiedAt = nil
	t.preparationAt = nil
}

// Cancel releases the table if its order may still be cancelled. Once the
// kitchen has started cooking it returns a StateConflictError and leaves the
// table untouched.
func (t *Table) Cancel() error {
	if !t.status.Cancellable() {
		return errs.NewStateConflictError("cancel order", t.status.String())
	}
	t.Release()
	return nil
}
