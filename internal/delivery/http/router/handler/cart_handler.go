package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCart creates a new empty cart.
func (h *CartHandler) CreateCart(c echo.Context) error {
	output, err := h.uc.CreateCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Cart, "Cart created successfully")
}

// GetCart returns a cart with its lines.
func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetCart(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Cart, "")
}

// AddCartItemRequest is the request body for adding a product to a cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// AddItem adds a product line to a cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := parseUUIDString(req.ProductID, "product_id")
	if err != nil {
		return err
	}

	output, err := h.uc.AddItem(c.Request().Context(), &usecase.AddCartItemInput{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Cart, "Item added to cart")
}

// RemoveItem deletes a product line from a cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	productID, err := parseUUIDParam(c, "productID")
	if err != nil {
		return err
	}

	output, err := h.uc.RemoveItem(c.Request().Context(), &usecase.RemoveCartItemInput{
		CartID:    cartID,
		ProductID: productID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Cart, "Item removed from cart")
}
