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

// orderService implements the OrderUsecase interface. It creates orders in
// their initial status; every later status change belongs to the tracking
// engine.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns a cart into an order. Prices are snapshotted from the
// catalog at this moment, stock is decremented, the order starts in its
// initial status with its first tracking event, and the cart is cleared. All
// of it commits or none of it does.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.OrderOutput, error) {
	srv.log(ctx).Info("Starting checkout",
		slog.String("cart_id", input.CartID.String()),
		slog.String("customer_email", input.CustomerEmail),
	)

	var createdOrder *entity.Order
	var initialEvent *entity.TrackingEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()
		trackingRepo := repoFactory.TrackingRepo()

		cart, err := cartRepo.FindByID(ctx, input.CartID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound.WrapMessage("checkout cart lookup failed")
			}

			return errors.Wrap(err, "failed to find cart for checkout")
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrCartEmpty.WrapMessage("checkout rejected")
		}

		items, err := srv.priceCartItems(ctx, productRepo, cart.Items)
		if err != nil {
			return err
		}

		order := &entity.Order{
			CustomerName:    input.CustomerName,
			CustomerEmail:   input.CustomerEmail,
			CustomerPhone:   input.CustomerPhone,
			ShippingAddress: input.ShippingAddress,
			Items:           items,
			Status:          entity.StatusPlaced,
		}
		order.TotalAmount = order.ComputeTotal()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		event := &entity.TrackingEvent{
			OrderID:    order.ID,
			Status:     entity.StatusPlaced,
			OccurredAt: time.Now(),
		}
		if err := trackingRepo.Append(ctx, event); err != nil {
			return errors.Wrap(err, "failed to append initial tracking event")
		}

		if err := cartRepo.Clear(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		createdOrder = order
		initialEvent = event

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed",
			slog.String("cart_id", input.CartID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Checkout completed",
		slog.String("order_id", createdOrder.ID.String()),
		slog.Float64("total_amount", createdOrder.TotalAmount),
	)

	srv.publishOrderPlaced(ctx, createdOrder, initialEvent)

	return &usecase.OrderOutput{Order: createdOrder}, nil
}

// priceCartItems resolves every cart line against the catalog, snapshots name
// and price, and decrements stock.
func (srv *orderService) priceCartItems(ctx context.Context, productRepo repository.ProductRepository, cartItems []entity.CartItem) ([]entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(cartItems))
	for _, line := range cartItems {
		ids = append(ids, line.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products for checkout")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]entity.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WrapMessage(
				fmt.Sprintf("product %s no longer in catalog", line.ProductID))
		}
		if product.Stock < line.Quantity {
			return nil, domainerrors.ErrProductOutOfStock.WrapMessage(
				fmt.Sprintf("product %s has %d in stock, %d requested", product.ID, product.Stock, line.Quantity))
		}

		product.Stock -= line.Quantity
		if err := productRepo.Update(ctx, product); err != nil {
			return nil, errors.Wrap(err, "failed to decrement product stock")
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}

	return items, nil
}

// GetOrder retrieves a single order with its line items.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return &usecase.OrderOutput{Order: order}, nil
}

// ListOrders retrieves every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) (*usecase.OrderListOutput, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{Orders: orders}, nil
}

// publishOrderPlaced notifies the fulfillment pipeline about the new order.
// Best-effort, same isolation as every other transition event.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order, event *entity.TrackingEvent) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := srv.log(ctx)

	statusEvent := &service.OrderStatusEvent{
		RequestID:     requestID,
		OrderID:       order.ID.String(),
		Status:        order.Status.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		OccurredAt:    event.OccurredAt.Format(time.RFC3339),
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic while publishing order placed event", slog.Any("panic", r))
			}
		}()

		publishCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.publisher.PublishOrderStatusEvent(publishCtx, statusEvent); err != nil {
			logger.Warn("Failed to publish order placed event",
				slog.String("order_id", statusEvent.OrderID),
				slog.Any("error", err),
			)
		}
	}()
}
