// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AddressHandler *handler.AddressHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// Router holds all the handlers that need to be registered.
type Router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.HealthHandler.Check)

	if r.Config.Metrics != nil && r.Config.Metrics.Enabled {
		e.GET(r.Config.Metrics.Path, r.Metrics.Handler())
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.AuthHandler.Signup)
		authGroup.POST("/signin", r.AuthHandler.Signin)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.DELETE("/signout", r.AuthHandler.Signout, r.AuthMiddleware.Authenticate)
	}

	// Everything below requires a valid access token.
	protected := e.Group("", r.AuthMiddleware.Authenticate)

	userGroup := protected.Group("/user")
	{
		userGroup.GET("", r.UserHandler.GetMe)
		userGroup.PATCH("", r.UserHandler.EditMe)
	}

	productGroup := protected.Group("/product")
	{
		productGroup.GET("", r.ProductHandler.List)
		productGroup.GET("/:id", r.ProductHandler.Get)
		productGroup.POST("", r.ProductHandler.Create)
		productGroup.PATCH("/:id", r.ProductHandler.Edit)
		productGroup.DELETE("/:id", r.ProductHandler.Delete)
	}

	addressGroup := protected.Group("/address")
	{
		addressGroup.GET("", r.AddressHandler.List)
		addressGroup.GET("/:id", r.AddressHandler.Get)
		addressGroup.POST("", r.AddressHandler.Create)
		addressGroup.PATCH("/:id", r.AddressHandler.Edit)
		addressGroup.DELETE("/:id", r.AddressHandler.Delete)
	}

	cartGroup := protected.Group("/cart")
	{
		cartGroup.GET("", r.CartHandler.Get)
		cartGroup.POST("", r.CartHandler.Add)
		cartGroup.DELETE("", r.CartHandler.Remove)
	}

	orderGroup := protected.Group("/order")
	{
		orderGroup.GET("", r.OrderHandler.List)
		orderGroup.POST("", r.OrderHandler.Checkout)
	}
}
