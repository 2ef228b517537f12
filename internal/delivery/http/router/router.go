// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authenticate runs on every route and never rejects; it only derives the
// principal. RequireRole does the actual gating per route group.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	// Public storefront routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	cartGroup := e.Group("/carts")
	{
		cartGroup.POST("", r.cartHandler.CreateCart)
		cartGroup.GET("/:id", r.cartHandler.GetCart)
		cartGroup.POST("/:id/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/:id/items/:productID", r.cartHandler.RemoveItem)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Checkout)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/tracking", r.orderHandler.GetTracking)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	// Back-office routes require the admin role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.POST("/orders/:id/status", r.orderHandler.AdvanceStatus)

		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	}
}
