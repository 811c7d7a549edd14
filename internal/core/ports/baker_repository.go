package ports

import (
	"context"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"
)

// BakerRepository defines the persistence contract for baker aggregates.
type BakerRepository interface {
	// Add persists a new baker aggregate to storage.
	Add(ctx context.Context, aggregate *baker.Baker) error

	// Update persists changes to an existing baker aggregate.
	Update(ctx context.Context, aggregate *baker.Baker) error

	// Get retrieves a baker aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*baker.Baker, error)

	// GetByEmail retrieves a baker by login email.
	GetByEmail(ctx context.Context, email string) (*baker.Baker, error)
}
