package ports

import (
	"context"

	"picante/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the product catalog.
// Pricing always resolves products through this interface so order lines
// snapshot the catalog price at call time.
type ProductRepository interface {
	// Add persists a new catalog item. Used by seeding and catalog management.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id uint) (*product.Product, error)
}
