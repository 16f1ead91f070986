// Package product holds the catalog aggregate: the sellable items the
// restaurant prices orders against. The catalog is read-mostly; every order
// line snapshots the product name and price at the moment it is created, so
// later catalog edits never rewrite history.
package product

import (
	"errors"

	"picante/internal/pkg/errs"
	"picante/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable catalog item. Price is optional: items without a
// price are routable to the kitchen but contribute zero to order totals.
type Product struct {
	id          uint
	name        string
	price       *float64
	description string
	available   bool

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog item. The identifier is assigned by storage
// on first insert via SetID.
func NewProduct(name string, price *float64, description string, available bool) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		name:        name,
		price:       price,
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a catalog item from persistence.
func RestoreProduct(id uint, name string, price *float64, description string, available bool) (*Product, error) {
	p, err := NewProduct(name, price, description, available)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// SetID records the storage-assigned identifier. It may be called exactly
// once, by the repository, after the first insert.
func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() uint {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the catalog price, or nil if none is recorded.
func (p *Product) Price() *float64 {
	return p.price
}

// UnitPrice returns the catalog price, falling back to zero when absent.
// Kitchen routing uses this fallback so an unpriced item never blocks an order.
func (p *Product) UnitPrice() float64 {
	if p.price == nil {
		return 0
	}
	return *p.price
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// Available reports whether the product is currently offered.
func (p *Product) Available() bool {
	return p.available
}
