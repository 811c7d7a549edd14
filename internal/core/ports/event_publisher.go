package ports

import (
	"context"
	"time"
)

// OrderPlacedEvent is emitted once a paid order is confirmed.
type OrderPlacedEvent struct {
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	CustomerID string    `json:"customer_id"`
	TotalPaise int64     `json:"total_paise"`
	PlacedAt   time.Time `json:"placed_at"`
}

// OrderStatusChangedEvent is emitted on every fulfillment transition.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	CustomerID string    `json:"customer_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedAt  time.Time `json:"changed_at"`
}

// ReviewSubmittedEvent is emitted when a customer publishes a review.
type ReviewSubmittedEvent struct {
	ReviewID    string    `json:"review_id"`
	ProductID   string    `json:"product_id"`
	CustomerID  string    `json:"customer_id"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EventPublisher defines the contract for emitting integration events to the
// message broker. Publishing happens after the transaction commits; a publish
// failure is logged, never rolled back into the command.
type EventPublisher interface {
	// PublishOrderPlaced emits an OrderPlacedEvent.
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error

	// PublishOrderStatusChanged emits an OrderStatusChangedEvent.
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error

	// PublishReviewSubmitted emits a ReviewSubmittedEvent.
	PublishReviewSubmitted(ctx context.Context, event ReviewSubmittedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
