// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrStaleOrderStatus is returned when a conditional status update matched no
// row, i.e. another transition won the race for the same order.
var ErrStaleOrderStatus = errors.New("order status changed concurrently")

// OrderRepository defines the standard operations for order persistence.
// The application layer will depend on this interface, not the concrete implementation.
type OrderRepository interface {
	// FindByID retrieves a single order with its line items by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order while holding a row-level lock for
	// the duration of the surrounding transaction. Callers must only invoke it
	// through TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus moves an order from one status to another. The update is
	// conditional on the current status still being from; when no row matches
	// it returns ErrStaleOrderStatus.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
