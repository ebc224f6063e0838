// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kindling/internal/delivery/http/middleware"
	"kindling/internal/delivery/http/router/handler"
	"kindling/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SyncHandler       *handler.SyncHandler
	AuthHandler       *handler.AuthHandler
	AccountHandler    *handler.AccountHandler
	SessionMiddleware *middleware.SessionMiddleware
	Gatherer          prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	syncHandler       *handler.SyncHandler
	authHandler       *handler.AuthHandler
	accountHandler    *handler.AccountHandler
	sessionMiddleware *middleware.SessionMiddleware
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		syncHandler:       params.SyncHandler,
		authHandler:       params.AuthHandler,
		accountHandler:    params.AccountHandler,
		sessionMiddleware: params.SessionMiddleware,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/github", r.authHandler.Login)
		authGroup.GET("/github/callback", r.authHandler.Callback)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/sync-token", r.authHandler.SyncToken, r.sessionMiddleware.Authenticate)
	}

	// API routes that require a live session
	apiGroup := e.Group("/api")
	apiGroup.Use(r.sessionMiddleware.Authenticate)
	{
		syncGroup := apiGroup.Group("/sync")
		syncGroup.POST("/push", r.syncHandler.Push)
		syncGroup.POST("/pull", r.syncHandler.Pull)

		accountGroup := apiGroup.Group("/accounts")
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.POST("/bluesky", r.accountHandler.ConnectBluesky)
		accountGroup.DELETE("/:provider", r.accountHandler.Disconnect)
		accountGroup.POST("/:provider/import", r.accountHandler.Import)
	}
}
