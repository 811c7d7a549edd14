package ports

import (
	"context"

	"localcrust/internal/core/domain/model/kernel"
)

// ReviewSubmissionGuard is a short-lived duplicate-submission lock for
// reviews. Acquire wins at most once per (customer, product) within the lock
// TTL, which stops double-clicked submissions from racing the database
// uniqueness check.
type ReviewSubmissionGuard interface {
	// Acquire takes the lock. Returns false when a submission for the same
	// (customer, product) pair is already in flight.
	Acquire(ctx context.Context, customerID, productID kernel.UUID) (bool, error)

	// Release frees the lock early, on a failed submission.
	Release(ctx context.Context, customerID, productID kernel.UUID) error
}
