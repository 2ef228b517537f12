// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateProductInput defines the data for modifying a catalog item.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// --- Output DTOs ---

// ProductOutput returns a single catalog item.
type ProductOutput struct {
	Product *entity.Product
}

// ProductListOutput returns the catalog listing.
type ProductListOutput struct {
	Products []*entity.Product
}

// CatalogUsecase defines the interface for catalog browsing and management.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) (*ProductListOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductOutput, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*ProductOutput, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
