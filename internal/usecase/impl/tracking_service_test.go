package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service      usecase.TrackingUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	trackingRepo *mockRepo.MockTrackingRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTrackingService(TrackingServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		TrackingRepo: trackingRepo,
		Publisher:    publisher,
		Logger:       logger,
	})

	return trackingServiceFixtures{
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
		publisher:    publisher,
	}
}

// expectTransaction wires the transaction manager so Execute runs the given
// function against a factory backed by the fixture's repository mocks.
func (f trackingServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	factory.EXPECT().TrackingRepo().Return(f.trackingRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		CustomerName:  "Wang Xiaoming",
		CustomerEmail: "customer@example.com",
		Status:        status,
		TotalAmount:   1200,
	}
}

func TestTrackingService_AdvanceStatus_Success(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusPlaced)

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.trackingRepo.EXPECT().
		FindLatestByOrder(ctx, order.ID).
		Return(&entity.TrackingEvent{Status: entity.StatusPlaced, OccurredAt: time.Now().Add(-time.Hour)}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.StatusPlaced, entity.StatusConfirmed).
		Return(nil)
	fx.trackingRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	output, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		OrderID:    order.ID,
		NextStatus: entity.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, output.Order.Status)
	assert.Equal(t, entity.StatusConfirmed, output.Event.Status)
	assert.Equal(t, order.ID, output.Event.OrderID)
}

func TestTrackingService_AdvanceStatus_IllegalTransition(t *testing.T) {
	cases := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{"placed cannot skip to processing", entity.StatusPlaced, entity.StatusProcessing},
		{"placed cannot skip to shipped", entity.StatusPlaced, entity.StatusShipped},
		{"placed cannot skip to delivered", entity.StatusPlaced, entity.StatusDelivered},
		{"confirmed cannot skip to shipped", entity.StatusConfirmed, entity.StatusShipped},
		{"confirmed cannot skip to delivered", entity.StatusConfirmed, entity.StatusDelivered},
		{"processing cannot skip to delivered", entity.StatusProcessing, entity.StatusDelivered},
		{"shipped cannot cancel", entity.StatusShipped, entity.StatusCancelled},
		{"shipped cannot regress to processing", entity.StatusShipped, entity.StatusProcessing},
		{"confirmed cannot regress to placed", entity.StatusConfirmed, entity.StatusPlaced},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestTrackingService(t)
			fx.expectTransaction(t)

			ctx := context.Background()
			order := newTestOrder(tc.from)

			fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

			output, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
				OrderID:    order.ID,
				NextStatus: tc.to,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
			assert.Nil(t, output)
		})
	}
}

func TestTrackingService_AdvanceStatus_TerminalOrderRejectsEverything(t *testing.T) {
	nextStatuses := []entity.OrderStatus{
		entity.StatusPlaced,
		entity.StatusConfirmed,
		entity.StatusProcessing,
		entity.StatusShipped,
		entity.StatusDelivered,
		entity.StatusCancelled,
	}

	for _, terminal := range []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled} {
		for _, next := range nextStatuses {
			t.Run(terminal.String()+" rejects "+next.String(), func(t *testing.T) {
				fx := createTestTrackingService(t)
				fx.expectTransaction(t)

				ctx := context.Background()
				order := newTestOrder(terminal)

				fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

				_, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
					OrderID:    order.ID,
					NextStatus: next,
				})

				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrOrderClosed)
			})
		}
	}
}

func TestTrackingService_AdvanceStatus_UnknownStatus(t *testing.T) {
	fx := createTestTrackingService(t)

	_, err := fx.service.AdvanceStatus(context.Background(), &usecase.AdvanceStatusInput{
		OrderID:    uuid.New(),
		NextStatus: entity.OrderStatus("TELEPORTED"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTrackingService_AdvanceStatus_OrderNotFound(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		OrderID:    orderID,
		NextStatus: entity.StatusConfirmed,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestTrackingService_AdvanceStatus_ConcurrentTransitionLosesRace(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusConfirmed)

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.trackingRepo.EXPECT().
		FindLatestByOrder(ctx, order.ID).
		Return(nil, repository.ErrNoTrackingEvents)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.StatusConfirmed, entity.StatusProcessing).
		Return(repository.ErrStaleOrderStatus)

	_, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		OrderID:    order.ID,
		NextStatus: entity.StatusProcessing,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStatusConflict)
}

func TestTrackingService_AdvanceStatus_BackdatedEventRejected(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusConfirmed)
	latest := time.Now()
	backdated := latest.Add(-2 * time.Hour)

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.trackingRepo.EXPECT().
		FindLatestByOrder(ctx, order.ID).
		Return(&entity.TrackingEvent{Status: entity.StatusConfirmed, OccurredAt: latest}, nil)

	_, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		OrderID:    order.ID,
		NextStatus: entity.StatusProcessing,
		OccurredAt: &backdated,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingOutOfOrder)
}

func TestTrackingService_AdvanceStatus_PublishFailureDoesNotFailTransition(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusProcessing)
	published := make(chan struct{}, 1)

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.trackingRepo.EXPECT().
		FindLatestByOrder(ctx, order.ID).
		Return(nil, repository.ErrNoTrackingEvents)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.StatusProcessing, entity.StatusShipped).
		Return(nil)
	fx.trackingRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *service.OrderStatusEvent) error {
			published <- struct{}{}

			return errors.New("broker unavailable")
		})

	output, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		OrderID:    order.ID,
		NextStatus: entity.StatusShipped,
		Carrier:    "黑貓宅急便",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, output.Order.Status)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("expected the transition event to be published")
	}
}

func TestTrackingService_FullLifecycle(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusPlaced)
	var lastEventAt time.Time

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
	factory.EXPECT().TrackingRepo().Return(fx.trackingRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.orderRepo.EXPECT().
		FindByIDForUpdate(ctx, order.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
			snapshot := *order

			return &snapshot, nil
		})
	fx.trackingRepo.EXPECT().
		FindLatestByOrder(ctx, order.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.TrackingEvent, error) {
			if lastEventAt.IsZero() {
				return nil, repository.ErrNoTrackingEvents
			}

			return &entity.TrackingEvent{Status: order.Status, OccurredAt: lastEventAt}, nil
		})
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, from, to entity.OrderStatus) error {
			if order.Status != from {
				return repository.ErrStaleOrderStatus
			}
			order.Status = to

			return nil
		})
	fx.trackingRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
		RunAndReturn(func(_ context.Context, event *entity.TrackingEvent) error {
			lastEventAt = event.OccurredAt

			return nil
		})
	fx.publisher.EXPECT().
		PublishOrderStatusEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	path := []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusProcessing,
		entity.StatusShipped,
		entity.StatusDelivered,
	}
	for _, next := range path {
		output, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
			OrderID:    order.ID,
			NextStatus: next,
		})

		require.NoError(t, err, "transition to %s should succeed", next)
		assert.Equal(t, next, output.Order.Status)
	}

	assert.Equal(t, entity.StatusDelivered, order.Status)

	// The delivered order is closed for good.
	_, err := fx.service.AdvanceStatus(ctx, &usecase.AdvanceStatusInput{
		OrderID:    order.ID,
		NextStatus: entity.StatusShipped,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderClosed)
}

func TestTrackingService_CancelOrder_BeforeShipment(t *testing.T) {
	for _, from := range []entity.OrderStatus{entity.StatusPlaced, entity.StatusConfirmed, entity.StatusProcessing} {
		t.Run("cancel from "+from.String(), func(t *testing.T) {
			fx := createTestTrackingService(t)
			fx.expectTransaction(t)

			ctx := context.Background()
			order := newTestOrder(from)

			fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
			fx.trackingRepo.EXPECT().
				FindLatestByOrder(ctx, order.ID).
				Return(nil, repository.ErrNoTrackingEvents)
			fx.orderRepo.EXPECT().
				UpdateStatus(ctx, order.ID, from, entity.StatusCancelled).
				Return(nil)
			fx.trackingRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.TrackingEvent")).
				Run(func(_ context.Context, event *entity.TrackingEvent) {
					assert.Equal(t, "customer changed their mind", event.Notes)
				}).
				Return(nil)
			fx.publisher.EXPECT().
				PublishOrderStatusEvent(mock.Anything, mock.Anything).
				Return(nil).
				Maybe()

			output, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
				OrderID: order.ID,
				Reason:  "customer changed their mind",
			})

			require.NoError(t, err)
			assert.Equal(t, entity.StatusCancelled, output.Order.Status)
		})
	}
}

func TestTrackingService_CancelOrder_AfterShipmentRejected(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusShipped)

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{OrderID: order.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyShipped)
}

func TestTrackingService_CancelOrder_TerminalRejected(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusCancelled)

	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{OrderID: order.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderClosed)
}

func TestTrackingService_GetHistory(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	order := newTestOrder(entity.StatusProcessing)
	events := []*entity.TrackingEvent{
		{OrderID: order.ID, Status: entity.StatusPlaced, OccurredAt: time.Now().Add(-2 * time.Hour)},
		{OrderID: order.ID, Status: entity.StatusConfirmed, OccurredAt: time.Now().Add(-time.Hour)},
		{OrderID: order.ID, Status: entity.StatusProcessing, OccurredAt: time.Now()},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.trackingRepo.EXPECT().ListByOrder(ctx, order.ID).Return(events, nil)

	output, err := fx.service.GetHistory(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, output.Status)
	require.Len(t, output.Events, 3)
	// Newest event always agrees with the order's current status.
	assert.Equal(t, output.Status, output.Events[len(output.Events)-1].Status)
}

func TestTrackingService_GetHistory_OrderNotFound(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetHistory(ctx, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
