// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is an immutable audit record of one order status transition.
// Events are append-only: once written they are never updated or deleted, and
// the newest event's status always agrees with the owning order's status.
type TrackingEvent struct {
	ID         uuid.UUID   `json:"id"`                 // The Global Unique Identifier (GUID) for the event.
	OrderID    uuid.UUID   `json:"order_id"`           // The order this event belongs to.
	Status     OrderStatus `json:"status"`             // Order status at the time of the event.
	OccurredAt time.Time   `json:"occurred_at"`        // When the fulfillment event happened. Defaults to creation time.
	Location   string      `json:"location,omitempty"` // Optional free-text location.
	Carrier    string      `json:"carrier,omitempty"`  // Optional carrier name.
	Notes      string      `json:"notes,omitempty"`    // Optional free-text notes (e.g. cancellation reason).
	CreatedAt  time.Time   `json:"created_at"`         // When the record was written. Set once, immutable.
}
