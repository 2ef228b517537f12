package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AdvanceStatusInput defines the data required to move an order to its next
// fulfillment status.
type AdvanceStatusInput struct {
	OrderID    uuid.UUID
	NextStatus entity.OrderStatus
	OccurredAt *time.Time // Defaults to now when nil.
	Location   string
	Carrier    string
	Notes      string
}

// CancelOrderInput defines the data required to cancel an order.
type CancelOrderInput struct {
	OrderID uuid.UUID
	Reason  string
}

// --- Output DTOs ---

// TransitionOutput returns the order after a committed transition together
// with the tracking event that recorded it.
type TransitionOutput struct {
	Order *entity.Order
	Event *entity.TrackingEvent
}

// TrackingHistoryOutput returns the full audit trail of an order, oldest first.
type TrackingHistoryOutput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
	Events  []*entity.TrackingEvent
}

// TrackingUsecase is the order lifecycle engine. It owns every status change:
// nothing else in the system writes Order.Status or tracking events.
type TrackingUsecase interface {
	// AdvanceStatus validates the transition against the lifecycle graph and,
	// when legal, atomically updates the order status and appends the audit
	// event. Illegal transitions fail without mutating anything.
	AdvanceStatus(ctx context.Context, input *AdvanceStatusInput) (*TransitionOutput, error)

	// CancelOrder transitions an order to its cancelled status when the order
	// is still cancellable.
	CancelOrder(ctx context.Context, input *CancelOrderInput) (*TransitionOutput, error)

	// GetHistory retrieves the order's full tracking trail, oldest first.
	GetHistory(ctx context.Context, orderID uuid.UUID) (*TrackingHistoryOutput, error)
}
