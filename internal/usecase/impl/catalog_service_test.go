package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return service, productRepo
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()

	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	output, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Oolong Tea",
		Price: 500,
		Stock: 20,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.Product.ID)
	assert.Equal(t, "Oolong Tea", output.Product.Name)
}

func TestCatalogService_UpdateProduct_PartialFields(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()
	existing := &entity.Product{
		ID:          uuid.New(),
		Name:        "Oolong Tea",
		Description: "High mountain",
		Price:       500,
		Stock:       20,
	}
	newPrice := 450.0

	productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	productRepo.EXPECT().Update(ctx, existing).Return(nil)

	output, err := service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		ID:    existing.ID,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.InDelta(t, 450.0, output.Product.Price, 0.001)
	// Untouched fields survive.
	assert.Equal(t, "Oolong Tea", output.Product.Name)
	assert.Equal(t, 20, output.Product.Stock)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := service.GetProduct(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProducts(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Teapot"},
		{ID: uuid.New(), Name: "Oolong Tea"},
	}

	productRepo.EXPECT().List(ctx).Return(products, nil)

	output, err := service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, output.Products, 2)
}
