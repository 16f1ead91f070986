// Package guard provides a construction marker for domain objects.
// Embedding a ConstructorGuard in a struct lets its Validate method detect
// zero-value instances that bypassed the designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard keeps an internal flag that
// is only set when the object is built via NewConstructorGuard, so any
// zero-value struct fails validation.
//
// Example:
//
//	var ErrTableNotConstructed = errors.New("Table must be created via NewTable")
//
//	type Table struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTable(name string) (Table, error) {
//	    if name == "" {
//	        return Table{}, errors.New("name is required")
//	    }
//	    return Table{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Table) Validate() error {
//	    return t.guard.Validate(ErrTableNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
// Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// instances it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
