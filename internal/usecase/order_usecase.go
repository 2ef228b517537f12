package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutInput defines the data required to turn a cart into an order.
type CheckoutInput struct {
	CartID          uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
}

// --- Output DTOs ---

// OrderOutput returns a single order with its line items.
type OrderOutput struct {
	Order *entity.Order
}

// OrderListOutput returns orders newest first.
type OrderListOutput struct {
	Orders []*entity.Order
}

// OrderUsecase defines the interface for placing and reading orders.
type OrderUsecase interface {
	// Checkout prices the cart at current catalog prices, creates the order in
	// its initial status with its first tracking event, and clears the cart.
	Checkout(ctx context.Context, input *CheckoutInput) (*OrderOutput, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*OrderOutput, error)
	ListOrders(ctx context.Context) (*OrderListOutput, error)
}
