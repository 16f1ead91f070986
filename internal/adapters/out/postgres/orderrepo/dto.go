// Package orderrepo provides data transfer objects and mapping functions for
// kitchen order persistence. It implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and the
// orders/order_items tables.
package orderrepo

import (
	"time"

	"picante/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Table id/number/name are the denormalized snapshot taken at creation time.
type OrderDTO struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	TableID     uint           `gorm:"not null;index:idx_orders_table_status"`
	TableNumber int            `gorm:"not null"`
	TableLabel  string         `gorm:"column:table_name;type:varchar(255);not null"`
	Status      string         `gorm:"type:varchar(32);not null;index:idx_orders_table_status"`
	TotalAmount float64        `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time
	PaidAt      *time.Time
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Product name and unit
// price are snapshots, never refreshed from the catalog.
type OrderItemDTO struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	OrderID     uint    `gorm:"not null;index"`
	ProductID   uint    `gorm:"not null"`
	ProductName string  `gorm:"type:varchar(255);not null"`
	Quantity    int     `gorm:"not null"`
	UnitPrice   float64 `gorm:"not null"`
	Subtotal    float64 `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemDTO{
			ID:          item.ID(),
			OrderID:     aggregate.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		TableID:     aggregate.TableID(),
		TableNumber: aggregate.TableNumber(),
		TableLabel:  aggregate.TableName(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		PaidAt:      aggregate.PaidAt(),
		Items:       items,
	}
}

// toDomain converts a database row to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		items = append(items, order.RestoreItem(
			itemDto.ID,
			itemDto.ProductID,
			itemDto.ProductName,
			itemDto.Quantity,
			itemDto.UnitPrice,
			itemDto.Subtotal,
		))
	}

	return order.RestoreOrder(
		dto.ID,
		dto.TableID,
		dto.TableNumber,
		dto.TableLabel,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.CreatedAt,
		dto.PaidAt,
		items,
	)
}
