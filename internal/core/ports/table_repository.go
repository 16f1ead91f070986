// Package ports defines repository and unit-of-work interfaces for the
// restaurant domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"picante/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates,
// covering both physical tables and delivery proxy tables.
type TableRepository interface {
	// Add persists a new table and assigns its storage identifier.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its unique identifier.
	Get(ctx context.Context, id uint) (*table.Table, error)

	// GetByName retrieves a table by its unique name. Used to resolve
	// delivery proxy tables through the DELIVERY #<id> naming contract.
	GetByName(ctx context.Context, name string) (*table.Table, error)
}
