package table

import (
	"fmt"

	"picante/internal/pkg/errs"
)

// Status represents the lifecycle state of a table. It covers the full
// payment loop plus the cancellation shortcut:
//
//	AVAILABLE ─> OCCUPIED ─> READY_TO_KITCHEN ─> WAITING_KITCHEN ─> PREPARING
//	    ^                                                               │
//	    │                                                               v
//	    └── WAITING_PAYMENT <─ SERVING <─ READY <───────────────────────┘
//
// Cancellation returns OCCUPIED, READY_TO_KITCHEN, or WAITING_KITCHEN tables
// straight to AVAILABLE; once the kitchen starts cooking the order can no
// longer be cancelled.
type Status string

const (
	// StatusAvailable means the table is free and ready to seat guests.
	StatusAvailable Status = "AVAILABLE"

	// StatusOccupied means guests are seated but no order is confirmed yet.
	StatusOccupied Status = "OCCUPIED"

	// StatusReadyToKitchen means the order is confirmed and priced, awaiting dispatch.
	StatusReadyToKitchen Status = "READY_TO_KITCHEN"

	// StatusWaitingKitchen means the order is in the kitchen queue.
	StatusWaitingKitchen Status = "WAITING_KITCHEN"

	// StatusPreparing means the kitchen is cooking the order.
	StatusPreparing Status = "PREPARING"

	// StatusReady means the kitchen finished and the order awaits pickup.
	StatusReady Status = "READY"

	// StatusServing means the order is at the table.
	StatusServing Status = "SERVING"

	// StatusWaitingPayment means the bill was requested.
	StatusWaitingPayment Status = "WAITING_PAYMENT"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusAvailable:      {},
		StatusOccupied:       {},
		StatusReadyToKitchen: {},
		StatusWaitingKitchen: {},
		StatusPreparing:      {},
		StatusReady:          {},
		StatusServing:        {},
		StatusWaitingPayment: {},
	}
}

// Validate checks that the status belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a table status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// KitchenStarted reports whether the kitchen has begun working the table's
// order. Cancellation is forbidden from these states.
func (s Status) KitchenStarted() bool {
	switch s {
	case StatusPreparing, StatusReady, StatusServing, StatusWaitingPayment:
		return true
	default:
		return false
	}
}

// Cancellable reports whether an order on a table in this status may still
// be cancelled.
func (s Status) Cancellable() bool {
	switch s {
	case StatusOccupied, StatusReadyToKitchen, StatusWaitingKitchen:
		return true
	default:
		return false
	}
}
