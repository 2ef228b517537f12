package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// BoardService syncs order fulfillment progress to the external project board.
// Calls are best-effort; failures are logged by the caller and never surfaced
// to request handling.
type BoardService interface {
	// SyncOrderStatus moves or annotates the board card of an order to
	// reflect its new status.
	SyncOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
}

// MessengerService sends order updates to the customer over the external
// messaging API. Best-effort, same isolation rules as BoardService.
type MessengerService interface {
	// SendOrderUpdate delivers a human-readable status message to the customer.
	SendOrderUpdate(ctx context.Context, recipient string, orderID uuid.UUID, status entity.OrderStatus, summary string) error
}
