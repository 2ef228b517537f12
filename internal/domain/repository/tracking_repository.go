package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoTrackingEvents is returned when an order has no tracking history yet.
var ErrNoTrackingEvents = errors.New("no tracking events for order")

// TrackingRepository defines the append-only persistence of tracking events.
// Events are never updated or deleted.
type TrackingRepository interface {
	// Append persists a new tracking event.
	Append(ctx context.Context, event *entity.TrackingEvent) error

	// ListByOrder retrieves all events of an order, oldest first, ordered by
	// occurred-at with creation order breaking ties.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.TrackingEvent, error)

	// FindLatestByOrder retrieves the newest event of an order, or
	// ErrNoTrackingEvents when the order has no history.
	FindLatestByOrder(ctx context.Context, orderID uuid.UUID) (*entity.TrackingEvent, error)
}
