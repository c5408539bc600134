package handler

import (
	"net/http"

	"intercity/internal/delivery/api/response"
	"intercity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	NetworkUC usecase.NetworkUsecase
}

// HealthHandler reports liveness and whether the network is loaded
type HealthHandler struct {
	networkUC usecase.NetworkUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{networkUC: params.NetworkUC}
}

// HealthCheck always answers 200; network_ready tells callers whether queries will succeed.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":        "ok",
		"network_ready": h.networkUC.IsReady(),
	})
}
