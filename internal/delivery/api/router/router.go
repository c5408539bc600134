// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"intercity/config"
	"intercity/internal/delivery/api/router/handler"
	"intercity/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NetworkHandler *handler.NetworkHandler
	HealthHandler  *handler.HealthHandler
	Metrics        *metrics.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	networkHandler *handler.NetworkHandler
	healthHandler  *handler.HealthHandler
	metrics        *metrics.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		networkHandler: params.NetworkHandler,
		healthHandler:  params.HealthHandler,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	citiesGroup := apiV1.Group("/cities")
	{
		citiesGroup.GET("", r.networkHandler.ListCities)
		citiesGroup.POST("", r.networkHandler.RegisterCity)
	}

	connectionsGroup := apiV1.Group("/connections")
	{
		connectionsGroup.GET("", r.networkHandler.ListConnections)
		connectionsGroup.POST("", r.networkHandler.AddConnection)
		connectionsGroup.DELETE("", r.networkHandler.RemoveConnection)
	}

	apiV1.GET("/routes", r.networkHandler.FindRoute)
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
