package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetBakerReviewsQueryIsNotConstructed = errors.New(
	"GetBakerReviewsQuery must be created via NewGetBakerReviewsQuery constructor",
)

// GetBakerReviewsQuery retrieves reviews across all of a baker's products,
// so the baker can find the ones still awaiting a reply.
type GetBakerReviewsQuery struct {
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBakerReviewsQuery creates a baker review query.
func NewGetBakerReviewsQuery(bakerID kernel.UUID) (GetBakerReviewsQuery, error) {
	if err := bakerID.Validate(); err != nil {
		return GetBakerReviewsQuery{}, err
	}
	return GetBakerReviewsQuery{
		bakerID: bakerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBakerReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetBakerReviewsQueryIsNotConstructed)
}

// BakerID returns the baker whose reviews are requested.
func (q GetBakerReviewsQuery) BakerID() kernel.UUID {
	return q.bakerID
}
