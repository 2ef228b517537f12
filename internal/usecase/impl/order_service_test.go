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
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	trackingRepo *mockRepo.MockTrackingRepository
	productRepo  *mockRepo.MockProductRepository
	cartRepo     *mockRepo.MockCartRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		publisher:    publisher,
	}
}

func (f orderServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	factory.EXPECT().TrackingRepo().Return(f.trackingRepo).Maybe()
	factory.EXPECT().ProductRepo().Return(f.productRepo).Maybe()
	factory.EXPECT().CartRepo().Return(f.cartRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestCheckoutInput(cartID uuid.UUID) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		CartID:          cartID,
		CustomerName:    "Lin Yating",
		CustomerEmail:   "yating@example.com",
		CustomerPhone:   "0912345678",
		ShippingAddress: "台北市信義區市府路45號",
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	productA := &entity.Product{ID: uuid.New(), Name: "Teapot", Price: 350, Stock: 10}
	productB := &entity.Product{ID: uuid.New(), Name: "Oolong Tea", Price: 500, Stock: 3}
	cart := &entity.Cart{
		ID: uuid.New(),
		Items: []entity.CartItem{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
	}

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productA.ID, productB.ID}).
		Return([]*entity.Product{productA, productB}, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil).
		Twice()
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)
	fx.trackingRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		Run(func(_ context.Context, event *entity.TrackingEvent) {
			assert.Equal(t, entity.StatusPlaced, event.Status)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, cart.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	output, err := fx.service.Checkout(ctx, newTestCheckoutInput(cart.ID))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlaced, output.Order.Status)
	assert.InDelta(t, 1200.0, output.Order.TotalAmount, 0.001)
	require.Len(t, output.Order.Items, 2)
	assert.Equal(t, "Teapot", output.Order.Items[0].Name)
	assert.InDelta(t, 350.0, output.Order.Items[0].UnitPrice, 0.001)
	assert.Equal(t, 8, productA.Stock)
	assert.Equal(t, 2, productB.Stock)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	cart := &entity.Cart{ID: uuid.New()}

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)

	_, err := fx.service.Checkout(ctx, newTestCheckoutInput(cart.ID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_CartNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.Checkout(ctx, newTestCheckoutInput(cartID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestOrderService_Checkout_ProductRemovedFromCatalog(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	missingID := uuid.New()
	cart := &entity.Cart{
		ID:    uuid.New(),
		Items: []entity.CartItem{{ProductID: missingID, Quantity: 1}},
	}

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{missingID}).
		Return([]*entity.Product{}, nil)

	_, err := fx.service.Checkout(ctx, newTestCheckoutInput(cart.ID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Teapot", Price: 350, Stock: 1}
	cart := &entity.Cart{
		ID:    uuid.New(),
		Items: []entity.CartItem{{ProductID: product.ID, Quantity: 5}},
	}

	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	_, err := fx.service.Checkout(ctx, newTestCheckoutInput(cart.ID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOutOfStock)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), Status: entity.StatusShipped},
		{ID: uuid.New(), Status: entity.StatusPlaced},
	}

	fx.orderRepo.EXPECT().List(ctx).Return(orders, nil)

	output, err := fx.service.ListOrders(ctx)

	require.NoError(t, err)
	assert.Len(t, output.Orders, 2)
}
