package ports

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"
)

// WishlistRepository defines the persistence contract for wishlist entries.
// A wishlist entry is a plain (customer, product) pair; it carries no behavior
// of its own, so no aggregate backs it.
type WishlistRepository interface {
	// Add stores a wishlist entry. Adding an existing entry is a no-op.
	Add(ctx context.Context, customerID, productID kernel.UUID, at time.Time) error

	// Remove deletes a wishlist entry. Removing a missing entry is a no-op.
	Remove(ctx context.Context, customerID, productID kernel.UUID) error

	// Contains reports whether the product is on the customer's wishlist.
	Contains(ctx context.Context, customerID, productID kernel.UUID) (bool, error)
}
