// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"handyhub/internal/delivery/http/middleware"
	"handyhub/internal/delivery/http/router/handler"
	"handyhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	MarketplaceHandler *handler.MarketplaceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	marketplaceHandler *handler.MarketplaceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		marketplaceHandler: params.MarketplaceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential lifecycle routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/verify", r.authHandler.Verify)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)

		// Token-bearing routes. Logout and Me validate the token themselves,
		// but the middleware keeps revoked tokens out uniformly.
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Public catalog
	e.GET("/services", r.marketplaceHandler.ListServices)

	// Vendor routes: authentication plus the VENDOR role
	e.POST("/services", r.marketplaceHandler.CreateService,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleVendor.String()))

	// Customer routes
	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingGroup.GET("", r.marketplaceHandler.ListBookings)
		bookingGroup.POST("", r.marketplaceHandler.CreateBooking,
			r.authMiddleware.RequireRole(entity.RoleCustomer.String()))
		bookingGroup.POST("/:id/review", r.marketplaceHandler.LeaveReview,
			r.authMiddleware.RequireRole(entity.RoleCustomer.String()))
	}
}
