package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is a domain-specific error returned when a cart is not found.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartItemNotFound is returned when a cart line does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindByID retrieves a cart with its items by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// UpsertItem adds a product line to a cart or updates its quantity.
	UpsertItem(ctx context.Context, item *entity.CartItem) error

	// RemoveItem deletes a product line from a cart.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// Clear removes every item of a cart.
	Clear(ctx context.Context, cartID uuid.UUID) error
}
