// Package guard implements the constructor guard pattern used by domain
// objects and commands to reject zero-value instances that bypassed their
// designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a specific validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed one as a private field and set it with NewConstructorGuard inside the
// constructor; a zero-value struct will then fail Validate.
//
// Example:
//
//	type Rating struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRating(value int) (Rating, error) {
//	    if value < 1 || value > 5 {
//	        return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
//	    }
//	    return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rating) Validate() error {
//	    return r.guard.Validate(ErrRatingIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was created via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
