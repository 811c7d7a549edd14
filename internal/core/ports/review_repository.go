package ports

import (
	"context"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review aggregate to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists changes to an existing review aggregate.
	Update(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// Exists reports whether the customer already reviewed the product from
	// the given order. One review per product per order.
	Exists(ctx context.Context, orderID, productID kernel.UUID) (bool, error)
}
