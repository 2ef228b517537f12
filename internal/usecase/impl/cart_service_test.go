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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (f cartServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(f.cartRepo).Maybe()
	factory.EXPECT().ProductRepo().Return(f.productRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCartService_CreateCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, cart *entity.Cart) {
			cart.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.CreateCart(ctx)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.Cart.ID)
	assert.Empty(t, output.Cart.Items)
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Teapot", Price: 350, Stock: 10}
	cart := &entity.Cart{ID: uuid.New()}

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil).Once()
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		UpsertItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(_ context.Context, item *entity.CartItem) {
			assert.Equal(t, cart.ID, item.CartID)
			assert.Equal(t, 2, item.Quantity)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().
		FindByID(ctx, cart.ID).
		Return(&entity.Cart{
			ID:    cart.ID,
			Items: []entity.CartItem{{CartID: cart.ID, ProductID: product.ID, Quantity: 2}},
		}, nil).
		Once()

	output, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, output.Cart.Items, 1)
	assert.Equal(t, product.ID, output.Cart.Items[0].ProductID)
}

func TestCartService_AddItem_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	for _, quantity := range []int{0, -3} {
		_, err := fx.service.AddItem(context.Background(), &usecase.AddCartItemInput{
			CartID:    uuid.New(),
			ProductID: uuid.New(),
			Quantity:  quantity,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	cart := &entity.Cart{ID: uuid.New()}
	productID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_CartNotFound(t *testing.T) {
	fx := createTestCartService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		CartID:    cartID,
		ProductID: uuid.New(),
		Quantity:  1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	cart := &entity.Cart{ID: uuid.New()}
	productID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
	fx.cartRepo.EXPECT().
		RemoveItem(ctx, cart.ID, productID).
		Return(repository.ErrCartItemNotFound)

	_, err := fx.service.RemoveItem(ctx, &usecase.RemoveCartItemInput{
		CartID:    cart.ID,
		ProductID: productID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
