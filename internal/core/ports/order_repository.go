// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, the payment
// gateway, the event publisher, and the review submission guard.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByGatewayOrderID retrieves the order attached to a payment gateway
	// order reference. Used when matching payment callbacks.
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*order.Order, error)

	// GetStalePending retrieves orders still pending payment that were created
	// before the cutoff. Used by the stale-payment sweep.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
