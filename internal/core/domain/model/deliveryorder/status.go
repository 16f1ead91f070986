package deliveryorder

import (
	"fmt"
	"strings"

	"picante/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order:
//
//	PENDING -> PREPARING -> READY -> DISPATCHED -> DELIVERED
//
// CANCELLED is reachable from any non-terminal state. PREPARING, READY and
// later stages are usually driven by the kitchen through the proxy table
// mirror rather than set directly.
type Status string

const (
	// StatusPending is the initial status of every delivery order.
	StatusPending Status = "PENDING"

	// StatusPreparing means the order was routed to the kitchen.
	StatusPreparing Status = "PREPARING"

	// StatusReady means the kitchen finished the order.
	StatusReady Status = "READY"

	// StatusDispatched means the order left with a rider.
	StatusDispatched Status = "DISPATCHED"

	// StatusDelivered means the customer received the order.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled means the order was called off.
	StatusCancelled Status = "CANCELLED"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusPreparing:  {},
		StatusReady:      {},
		StatusDispatched: {},
		StatusDelivered:  {},
		StatusCancelled:  {},
	}
}

// Validate checks that the status belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a delivery status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus resolves a caller-supplied status string case-insensitively.
// Unrecognized values fail with a ValueIsInvalidError naming the input.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a delivery status", raw))
	}
	return s, nil
}
