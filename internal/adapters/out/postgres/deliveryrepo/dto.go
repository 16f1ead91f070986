// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery order persistence, converting between the delivery order
// aggregate and the delivery_orders/delivery_order_items tables.
package deliveryrepo

import (
	"time"

	"picante/internal/core/domain/model/deliveryorder"
)

// DeliveryOrderDTO represents the database structure for persisting delivery
// order aggregates.
type DeliveryOrderDTO struct {
	ID           uint                   `gorm:"primaryKey;autoIncrement"`
	CustomerName string                 `gorm:"type:varchar(255);not null"`
	Phone        string                 `gorm:"type:varchar(64);not null"`
	Address      string                 `gorm:"type:varchar(512);not null"`
	Reference    string                 `gorm:"type:varchar(255)"`
	Notes        string                 `gorm:"type:text"`
	Status       string                 `gorm:"type:varchar(32);not null;index"`
	TotalAmount  float64                `gorm:"not null"`
	CreatedAt    time.Time              `gorm:"not null;index"`
	UpdatedAt    time.Time
	ReadyAt      *time.Time
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	Items        []DeliveryOrderItemDTO `gorm:"foreignKey:DeliveryOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery order entities.
func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

// DeliveryOrderItemDTO represents one persisted delivery order line.
type DeliveryOrderItemDTO struct {
	ID              uint    `gorm:"primaryKey;autoIncrement"`
	DeliveryOrderID uint    `gorm:"not null;index"`
	ProductID       uint    `gorm:"not null"`
	ProductName     string  `gorm:"type:varchar(255);not null"`
	Quantity        int     `gorm:"not null"`
	UnitPrice       float64 `gorm:"not null"`
	Subtotal        float64 `gorm:"not null"`
}

// TableName specifies the database table name for delivery order line entities.
func (DeliveryOrderItemDTO) TableName() string {
	return "delivery_order_items"
}

// fromDomain converts a delivery order domain aggregate to its database
// representation.
func fromDomain(aggregate *deliveryorder.DeliveryOrder) DeliveryOrderDTO {
	domainItems := aggregate.Items()
	items := make([]DeliveryOrderItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, DeliveryOrderItemDTO{
			ID:              item.ID(),
			DeliveryOrderID: aggregate.ID(),
			ProductID:       item.ProductID(),
			ProductName:     item.ProductName(),
			Quantity:        item.Quantity(),
			UnitPrice:       item.UnitPrice(),
			Subtotal:        item.Subtotal(),
		})
	}

	return DeliveryOrderDTO{
		ID:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		Reference:    aggregate.Reference(),
		Notes:        aggregate.Notes(),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount(),
		CreatedAt:    aggregate.CreatedAt(),
		ReadyAt:      aggregate.ReadyAt(),
		DispatchedAt: aggregate.DispatchedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Items:        items,
	}
}

// toDomain converts a database row to a delivery order domain aggregate.
func toDomain(dto DeliveryOrderDTO) (*deliveryorder.DeliveryOrder, error) {
	items := make([]deliveryorder.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		items = append(items, deliveryorder.RestoreItem(
			itemDto.ID,
			itemDto.ProductID,
			itemDto.ProductName,
			itemDto.Quantity,
			itemDto.UnitPrice,
			itemDto.Subtotal,
		))
	}

	return deliveryorder.RestoreDeliveryOrder(
		dto.ID,
		dto.CustomerName,
		dto.Phone,
		dto.Address,
		dto.Reference,
		dto.Notes,
		deliveryorder.Status(dto.Status),
		dto.TotalAmount,
		dto.CreatedAt,
		dto.ReadyAt,
		dto.DispatchedAt,
		dto.DeliveredAt,
		items,
	)
}
