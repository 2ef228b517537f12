package service

import (
	"context"
)

// OrderStatusEvent is published after every committed status transition and
// consumed by the fulfillment worker, which fans it out to the third-party
// collaborators (project board, customer messenger).
type OrderStatusEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Summary       string `json:"summary"` // Human-readable status summary.
	OccurredAt    string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderStatusEvent publishes a status transition event for async processing
	PublishOrderStatusEvent(ctx context.Context, event *OrderStatusEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
