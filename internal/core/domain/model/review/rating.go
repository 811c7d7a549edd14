package review

import (
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

const (
	// MinRating is the lowest allowed star rating.
	MinRating = 1
	// MaxRating is the highest allowed star rating.
	MaxRating = 5
)

// ErrRatingIsNotConstructed is returned when a Rating was not created through NewRating.
var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError("rating must be created via NewRating constructor")

// Rating is a star rating between MinRating and MaxRating inclusive.
type Rating struct {
	value int

	guard guard.ConstructorGuard
}

// NewRating creates a validated star rating.
func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Rating was created through NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// Value returns the star count.
func (r Rating) Value() int {
	return r.value
}

// IsEqual compares two ratings by value.
func (r Rating) IsEqual(other Rating) bool {
	return r.value == other.value
}
