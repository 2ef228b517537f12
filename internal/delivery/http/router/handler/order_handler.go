package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order and tracking handlers.
type OrderHandler struct {
	orderUC    usecase.OrderUsecase
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUC usecase.OrderUsecase, trackingUC usecase.TrackingUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC:    orderUC,
		trackingUC: trackingUC,
		logger:     logger,
	}
}

// CheckoutRequest is the request body for placing an order from a cart.
type CheckoutRequest struct {
	CartID          string `json:"cart_id" validate:"required,uuid"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
}

// Checkout turns a cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cartID, err := parseUUIDString(req.CartID, "cart_id")
	if err != nil {
		return err
	}

	output, err := h.orderUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		CartID:          cartID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Order, "Order placed successfully")
}

// GetOrder returns a single order with its line items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Order, "")
}

// ListOrders returns every order, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	output, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Orders, "")
}

// GetTracking returns the full tracking trail of an order, oldest first.
func (h *OrderHandler) GetTracking(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.trackingUC.GetHistory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AdvanceStatusRequest is the request body for moving an order forward.
type AdvanceStatusRequest struct {
	Status     string     `json:"status" validate:"required"`
	OccurredAt *time.Time `json:"occurred_at"`
	Location   string     `json:"location"`
	Carrier    string     `json:"carrier"`
	Notes      string     `json:"notes"`
}

// AdvanceStatus moves an order to its next fulfillment status.
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req AdvanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.trackingUC.AdvanceStatus(c.Request().Context(), &usecase.AdvanceStatusInput{
		OrderID:    id,
		NextStatus: entity.OrderStatus(req.Status),
		OccurredAt: req.OccurredAt,
		Location:   req.Location,
		Carrier:    req.Carrier,
		Notes:      req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order status updated")
}

// CancelOrderRequest is the request body for cancelling an order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder cancels an order that has not shipped yet.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cancel input")
	}

	output, err := h.trackingUC.CancelOrder(c.Request().Context(), &usecase.CancelOrderInput{
		OrderID: id,
		Reason:  req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order cancelled")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
