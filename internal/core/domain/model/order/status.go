package order

import (
	"fmt"

	"picante/internal/pkg/errs"
)

// Status represents the lifecycle state of a kitchen order.
//
// Dine-in orders move OPEN -> WAITING_PAYMENT -> PAID. Kitchen orders
// created for delivery proxies are born PENDING and never pass through the
// payment loop; the delivery order carries its own lifecycle.
type Status string

const (
	// StatusOpen is the initial status of a confirmed dine-in order.
	StatusOpen Status = "OPEN"

	// StatusWaitingPayment means the bill was requested for the order.
	StatusWaitingPayment Status = "WAITING_PAYMENT"

	// StatusPaid is the terminal status of a settled order.
	StatusPaid Status = "PAID"

	// StatusPending marks kitchen orders routed from delivery. They exist
	// only to feed the kitchen board and are settled on the delivery side.
	StatusPending Status = "PENDING"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusOpen:           {},
		StatusWaitingPayment: {},
		StatusPaid:           {},
		StatusPending:        {},
	}
}

// Validate checks that the status belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not an order status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
