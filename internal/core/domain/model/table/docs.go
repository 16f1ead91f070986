// Package table holds the table aggregate, the unit the kitchen board is
// built around. A Table is either a physical table in the dining room or a
// virtual "proxy" table that represents a delivery order inside the same
// kitchen queue, identified by the DELIVERY #<id> naming contract.
//
// The aggregate owns the table state machine (see Status) and the two
// service clocks: occupiedAt starts when an order is confirmed, and
// preparationAt starts when the kitchen begins cooking. All transitions go
// through the aggregate's methods; storage adapters only persist the result.
package table
