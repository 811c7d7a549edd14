// Package kafka implements the EventPublisher port on top of segmentio's
// kafka-go writer. Each event family gets its own topic so that downstream
// consumers subscribe to what they need.
package kafka

import (
	"context"
	"encoding/json"

	"localcrust/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Topic names for the marketplace integration events.
const (
	TopicOrderPlaced        = "localcrust.orders.placed"
	TopicOrderStatusChanged = "localcrust.orders.status-changed"
	TopicReviewSubmitted    = "localcrust.reviews.submitted"
)

// Publisher writes integration events to Kafka. Messages are keyed by order
// or review ID so that events of one aggregate land on one partition in order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Kafka publisher for the given brokers. The topic is
// set per message, so one writer serves all three topics.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderPlaced emits an OrderPlacedEvent.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event ports.OrderPlacedEvent) error {
	return p.publish(ctx, TopicOrderPlaced, event.OrderID, event)
}

// PublishOrderStatusChanged emits an OrderStatusChangedEvent.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	return p.publish(ctx, TopicOrderStatusChanged, event.OrderID, event)
}

// PublishReviewSubmitted emits a ReviewSubmittedEvent.
func (p *Publisher) PublishReviewSubmitted(ctx context.Context, event ports.ReviewSubmittedEvent) error {
	return p.publish(ctx, TopicReviewSubmitted, event.ReviewID, event)
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, topic, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}
