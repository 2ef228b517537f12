// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// trackingService implements the TrackingUsecase interface. It is the single
// writer of Order.Status and of tracking events.
type trackingService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	trackingRepo repository.TrackingRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// TrackingServiceParams holds dependencies for trackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	TrackingRepo repository.TrackingRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		trackingRepo: params.TrackingRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AdvanceStatus moves an order to the requested next status. The whole
// transition runs inside one transaction holding the order's row lock, so
// concurrent transitions on the same order serialize: one wins, the rest fail
// against the updated status.
func (srv *trackingService) AdvanceStatus(ctx context.Context, input *usecase.AdvanceStatusInput) (*usecase.TransitionOutput, error) {
	if !input.NextStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown order status %q", input.NextStatus))
	}

	occurredAt := time.Now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	event := &entity.TrackingEvent{
		Status:     input.NextStatus,
		OccurredAt: occurredAt,
		Location:   input.Location,
		Carrier:    input.Carrier,
		Notes:      input.Notes,
	}

	output, err := srv.executeTransition(ctx, input.OrderID, event, func(order *entity.Order) error {
		if order.Status.IsTerminal() {
			return domainerrors.ErrOrderClosed.WrapMessage(
				fmt.Sprintf("order is %s", order.Status))
		}
		if !order.Status.CanTransitionTo(input.NextStatus) {
			return domainerrors.ErrIllegalTransition.WrapMessage(
				fmt.Sprintf("cannot move from %s to %s", order.Status, input.NextStatus))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishTransition(ctx, output.Order, output.Event)

	return output, nil
}

// CancelOrder cancels an order that has not shipped yet. Shipped orders are
// past the point of no return and must go through the returns process instead.
func (srv *trackingService) CancelOrder(ctx context.Context, input *usecase.CancelOrderInput) (*usecase.TransitionOutput, error) {
	event := &entity.TrackingEvent{
		Status:     entity.StatusCancelled,
		OccurredAt: time.Now(),
		Notes:      input.Reason,
	}

	output, err := srv.executeTransition(ctx, input.OrderID, event, func(order *entity.Order) error {
		if order.Status.IsTerminal() {
			return domainerrors.ErrOrderClosed.WrapMessage(
				fmt.Sprintf("order is %s", order.Status))
		}
		if order.Status == entity.StatusShipped {
			return domainerrors.ErrOrderAlreadyShipped.WrapMessage("cancel rejected after shipment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishTransition(ctx, output.Order, output.Event)

	return output, nil
}

// executeTransition is the shared core of every status change: lock the order
// row, run the guard against the current status, reject timestamps older than
// the newest tracking event, then update the status conditionally and append
// the audit event in the same transaction.
func (srv *trackingService) executeTransition(
	ctx context.Context,
	orderID uuid.UUID,
	event *entity.TrackingEvent,
	guard func(order *entity.Order) error,
) (*usecase.TransitionOutput, error) {
	srv.log(ctx).Info("Starting order status transition",
		slog.String("order_id", orderID.String()),
		slog.String("next_status", event.Status.String()),
	)

	var (
		updatedOrder  *entity.Order
		appendedEvent *entity.TrackingEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		trackingRepo := repoFactory.TrackingRepo()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("order lookup for transition failed")
			}

			return errors.Wrap(err, "failed to lock order for transition")
		}

		if err := guard(order); err != nil {
			return err
		}

		if err := srv.checkEventOrdering(ctx, trackingRepo, order.ID, event.OccurredAt); err != nil {
			return err
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, order.Status, event.Status); err != nil {
			if errors.Is(err, repository.ErrStaleOrderStatus) {
				return domainerrors.ErrStatusConflict.WrapMessage("concurrent transition won the race")
			}

			return errors.Wrap(err, "failed to update order status")
		}

		event.OrderID = order.ID
		if err := trackingRepo.Append(ctx, event); err != nil {
			return errors.Wrap(err, "failed to append tracking event")
		}

		order.Status = event.Status
		updatedOrder = order
		appendedEvent = event

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status transition rejected",
			slog.String("order_id", orderID.String()),
			slog.String("next_status", event.Status.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order status transition committed",
		slog.String("order_id", updatedOrder.ID.String()),
		slog.String("status", updatedOrder.Status.String()),
	)

	return &usecase.TransitionOutput{Order: updatedOrder, Event: appendedEvent}, nil
}

// checkEventOrdering rejects events timestamped before the newest recorded
// event, keeping the trail monotonic when read back oldest first.
func (srv *trackingService) checkEventOrdering(ctx context.Context, trackingRepo repository.TrackingRepository, orderID uuid.UUID, occurredAt time.Time) error {
	latest, err := trackingRepo.FindLatestByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNoTrackingEvents) {
			return nil
		}

		return errors.Wrap(err, "failed to load latest tracking event")
	}

	if occurredAt.Before(latest.OccurredAt) {
		return domainerrors.ErrTrackingOutOfOrder.WrapMessage(
			fmt.Sprintf("event at %s predates latest event at %s",
				occurredAt.Format(time.RFC3339), latest.OccurredAt.Format(time.RFC3339)))
	}

	return nil
}

// GetHistory retrieves an order's full tracking trail, oldest first.
func (srv *trackingService) GetHistory(ctx context.Context, orderID uuid.UUID) (*usecase.TrackingHistoryOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup for history failed")
		}

		return nil, errors.Wrap(err, "failed to find order for history")
	}

	events, err := srv.trackingRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tracking events")
	}

	return &usecase.TrackingHistoryOutput{
		OrderID: order.ID,
		Status:  order.Status,
		Events:  events,
	}, nil
}

// publishTransition hands the committed transition to the fulfillment pipeline.
// Publishing is best-effort and fully isolated from the request: it runs on a
// detached context and any failure is only logged.
func (srv *trackingService) publishTransition(ctx context.Context, order *entity.Order, event *entity.TrackingEvent) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := srv.log(ctx)

	statusEvent := &service.OrderStatusEvent{
		RequestID:     requestID,
		OrderID:       order.ID.String(),
		Status:        order.Status.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Summary:       buildTransitionSummary(event),
		OccurredAt:    event.OccurredAt.Format(time.RFC3339),
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic while publishing order status event", slog.Any("panic", r))
			}
		}()

		publishCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.publisher.PublishOrderStatusEvent(publishCtx, statusEvent); err != nil {
			logger.Warn("Failed to publish order status event",
				slog.String("order_id", statusEvent.OrderID),
				slog.String("status", statusEvent.Status),
				slog.Any("error", err),
			)
		}
	}()
}

// buildTransitionSummary renders the optional event details into one line for
// the downstream notifications.
func buildTransitionSummary(event *entity.TrackingEvent) string {
	summary := ""
	if event.Location != "" {
		summary = event.Location
	}
	if event.Carrier != "" {
		if summary != "" {
			summary += " / "
		}
		summary += event.Carrier
	}
	if event.Notes != "" {
		if summary != "" {
			summary += " / "
		}
		summary += event.Notes
	}

	return summary
}
