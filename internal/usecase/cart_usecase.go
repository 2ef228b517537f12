package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to a cart.
type AddCartItemInput struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// RemoveCartItemInput defines the data required to remove a product from a cart.
type RemoveCartItemInput struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
}

// --- Output DTOs ---

// CartOutput returns a cart with its current lines.
type CartOutput struct {
	Cart *entity.Cart
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	CreateCart(ctx context.Context) (*CartOutput, error)
	GetCart(ctx context.Context, id uuid.UUID) (*CartOutput, error)
	AddItem(ctx context.Context, input *AddCartItemInput) (*CartOutput, error)
	RemoveItem(ctx context.Context, input *RemoveCartItemInput) (*CartOutput, error)
}
