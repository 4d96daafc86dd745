// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"matcha/internal/delivery/http/middleware"
	"matcha/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	HealthHandler       *handler.HealthHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	healthHandler       *handler.HealthHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		healthHandler:       params.HealthHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	api := e.Group("/api")
	{
		api.GET("/health", handler.HealthCheck)
		api.GET("/health/db", r.healthHandler.Database)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", r.authHandler.Register)
		}
	}
}
