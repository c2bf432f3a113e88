// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"busquei/internal/delivery/http/middleware"
	"busquei/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		// Public endpoints
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)

		// Endpoints requiring a valid access token
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PUT("/me", r.authHandler.UpdateMe, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}
}
