// Package tablerepo provides data transfer objects and mapping functions for
// table persistence. It implements the repository pattern for the table
// aggregate, converting between domain entities and database rows.
package tablerepo

import (
	"time"

	"picante/internal/core/domain/model/table"
)

// TableDTO represents the database structure for persisting table aggregates.
// The unique name index enforces the invariant that physical and delivery
// proxy tables never collide.
type TableDTO struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Capacity      int     `gorm:"type:int;not null"`
	Status        string  `gorm:"type:varchar(32);not null;index"`
	OccupiedAt    *time.Time
	PreparationAt *time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for table entities.
func (TableDTO) TableName() string {
	return "restaurant_tables"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(aggregate *table.Table) TableDTO {
	return TableDTO{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		Capacity:      aggregate.Capacity(),
		Status:        aggregate.Status().String(),
		OccupiedAt:    aggregate.OccupiedAt(),
		PreparationAt: aggregate.PreparationAt(),
	}
}

// toDomain converts a database row to a table domain aggregate.
func toDomain(dto TableDTO) (*table.Table, error) {
	return table.RestoreTable(
		dto.ID,
		dto.Name,
		dto.Capacity,
		table.Status(dto.Status),
		dto.OccupiedAt,
		dto.PreparationAt,
	)
}
