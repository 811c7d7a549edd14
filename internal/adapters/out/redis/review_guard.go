// Package redis implements the ReviewSubmissionGuard port with a Redis
// SETNX lock. The lock stops a double-clicked review form from racing the
// database uniqueness check; it expires on its own after the TTL.
package redis

import (
	"context"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// DefaultLockTTL bounds how long a crashed submission can hold the lock.
const DefaultLockTTL = 30 * time.Second

// ReviewSubmissionGuard is a Redis-backed duplicate-submission lock.
type ReviewSubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReviewSubmissionGuard creates a guard on the given Redis client. A
// non-positive ttl falls back to DefaultLockTTL.
func NewReviewSubmissionGuard(client *redis.Client, ttl time.Duration) *ReviewSubmissionGuard {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &ReviewSubmissionGuard{client: client, ttl: ttl}
}

// Acquire takes the lock. Returns false when a submission for the same
// (customer, product) pair is already in flight.
func (g *ReviewSubmissionGuard) Acquire(ctx context.Context, customerID, productID kernel.UUID) (bool, error) {
	return g.client.SetNX(ctx, lockKey(customerID, productID), "1", g.ttl).Result()
}

// Release frees the lock early, on a failed submission.
func (g *ReviewSubmissionGuard) Release(ctx context.Context, customerID, productID kernel.UUID) error {
	return g.client.Del(ctx, lockKey(customerID, productID)).Err()
}

func lockKey(customerID, productID kernel.UUID) string {
	return fmt.Sprintf("review-lock:%s:%s", customerID, productID)
}
