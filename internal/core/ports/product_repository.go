package ports

import (
	"context"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products for the given identifiers. Missing
	// identifiers are reported as an error, since checkout must never price a
	// phantom product.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// Delete removes a product listing from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error
}
