// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence, converting between the product aggregate and the
// products table.
package productrepo

import (
	"time"

	"picante/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting catalog items.
// Price is nullable; unpriced items still route to the kitchen.
type ProductDTO struct {
	ID          uint     `gorm:"primaryKey;autoIncrement"`
	Name        string   `gorm:"type:varchar(255);not null"`
	Price       *float64 `gorm:""`
	Description string   `gorm:"type:text"`
	Available   bool     `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price(),
		Description: aggregate.Description(),
		Available:   aggregate.Available(),
	}
}

// toDomain converts a database row to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Price,
		dto.Description,
		dto.Available,
	)
}
