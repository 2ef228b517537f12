package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCart creates a new empty cart.
func (srv *cartService) CreateCart(ctx context.Context) (*usecase.CartOutput, error) {
	cart := &entity.Cart{}
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		srv.log(ctx).Error("Failed to create cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Debug("Cart created", slog.String("cart_id", cart.ID.String()))

	return &usecase.CartOutput{Cart: cart}, nil
}

// GetCart retrieves a cart with its current lines.
func (srv *cartService) GetCart(ctx context.Context, id uuid.UUID) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound.WrapMessage("cart lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return &usecase.CartOutput{Cart: cart}, nil
}

// AddItem adds a product line to a cart, or bumps its quantity when the
// product is already in the cart. The product must exist in the catalog.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("quantity must be positive, got %d", input.Quantity))
	}

	var updatedCart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		cart, err := cartRepo.FindByID(ctx, input.CartID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound.WrapMessage("cart lookup for add failed")
			}

			return errors.Wrap(err, "failed to find cart for add")
		}

		if _, err := productRepo.FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("cannot add unknown product to cart")
			}

			return errors.Wrap(err, "failed to find product for add")
		}

		item := &entity.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := cartRepo.UpsertItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to upsert cart item")
		}

		updatedCart, err = cartRepo.FindByID(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart after add")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add cart item",
			slog.String("cart_id", input.CartID.String()),
			slog.String("product_id", input.ProductID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &usecase.CartOutput{Cart: updatedCart}, nil
}

// RemoveItem deletes a product line from a cart.
func (srv *cartService) RemoveItem(ctx context.Context, input *usecase.RemoveCartItemInput) (*usecase.CartOutput, error) {
	var updatedCart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		if _, err := cartRepo.FindByID(ctx, input.CartID); err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound.WrapMessage("cart lookup for remove failed")
			}

			return errors.Wrap(err, "failed to find cart for remove")
		}

		if err := cartRepo.RemoveItem(ctx, input.CartID, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("product not in cart")
			}

			return errors.Wrap(err, "failed to remove cart item")
		}

		var err error
		updatedCart, err = cartRepo.FindByID(ctx, input.CartID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart after remove")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.CartOutput{Cart: updatedCart}, nil
}
