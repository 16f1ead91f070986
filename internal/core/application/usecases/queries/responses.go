// Package queries contains read-only operations for the restaurant state.
// Query handlers bypass the domain model and read projections straight from
// the database, the read side of the CQRS split.
package queries

import "time"

// TableResponse represents one table row for the floor overview.
type TableResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Capacity      int        `json:"capacity"`
	Status        string     `json:"status"`
	OccupiedAt    *time.Time `json:"occupiedAt"`
	PreparationAt *time.Time `json:"preparationAt"`
}

// OrderItemResponse represents one order line as persisted.
type OrderItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderResponse represents an order with its lines.
type OrderResponse struct {
	ID          uint                `json:"id"`
	TableID     uint                `json:"tableId"`
	TableNumber int                 `json:"tableNumber"`
	TableName   string              `json:"tableName"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	PaidAt      *time.Time          `json:"paidAt"`
	Items       []OrderItemResponse `json:"items"`
}

// DeliveryOrderItemResponse represents one delivery order line.
type DeliveryOrderItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// DeliveryOrderResponse represents a delivery order with its lines.
type DeliveryOrderResponse struct {
	ID           uint                        `json:"id"`
	CustomerName string                      `json:"customerName"`
	Phone        string                      `json:"phone"`
	Address      string                      `json:"address"`
	Reference    string                      `json:"reference"`
	Notes        string                      `json:"notes"`
	Status       string                      `json:"status"`
	TotalAmount  float64                     `json:"totalAmount"`
	CreatedAt    time.Time                   `json:"createdAt"`
	ReadyAt      *time.Time                  `json:"readyAt"`
	DispatchedAt *time.Time                  `json:"dispatchedAt"`
	DeliveredAt  *time.Time                  `json:"deliveredAt"`
	Items        []DeliveryOrderItemResponse `json:"items"`
}
