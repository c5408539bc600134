package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"intercity/config"
	"intercity/internal/delivery/api/response"
	"intercity/internal/domain/entity"
	domainerrors "intercity/internal/domain/errors"
	"intercity/internal/errors"
	"intercity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NetworkHandlerParams holds dependencies for NetworkHandler, injected by Fx.
type NetworkHandlerParams struct {
	fx.In

	NetworkUC usecase.NetworkUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NetworkHandler serves cities, connections and route queries
type NetworkHandler struct {
	networkUC        usecase.NetworkUsecase
	defaultDimension entity.Dimension
	logger           *slog.Logger
}

// NewNetworkHandler is the constructor for NetworkHandler
func NewNetworkHandler(params NetworkHandlerParams) (*NetworkHandler, error) {
	dim := entity.DimensionCost
	if params.Config != nil && params.Config.Network != nil && params.Config.Network.DefaultDimension != "" {
		parsed, err := entity.ParseDimension(params.Config.Network.DefaultDimension)
		if err != nil {
			return nil, errors.Wrap(err, "network.defaultDimension")
		}
		dim = parsed
	}

	return &NetworkHandler{
		networkUC:        params.NetworkUC,
		defaultDimension: dim,
		logger:           params.Logger,
	}, nil
}

// RegisterCityRequest represents the request body for registering a city
type RegisterCityRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

// AddConnectionRequest represents the request body for adding a connection.
// Cost and time are pointers so that an explicit zero is accepted.
type AddConnectionRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Mode string `json:"mode" validate:"required"`
	Cost *int64 `json:"cost" validate:"required,min=0"`
	Time *int64 `json:"time" validate:"required,min=0"`
}

// RemoveConnectionRequest identifies the connection to remove
type RemoveConnectionRequest struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
	Mode string `query:"mode" validate:"required"`
}

// FindRouteRequest represents the query parameters of a route search
type FindRouteRequest struct {
	From      string `query:"from" validate:"required"`
	To        string `query:"to" validate:"required"`
	Dimension string `query:"dimension" validate:"omitempty"`
	Modes     string `query:"modes" validate:"omitempty"`
}

// ListCities handles listing every registered city
func (h *NetworkHandler) ListCities(c echo.Context) error {
	cities, err := h.networkUC.ListCities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities)
}

// RegisterCity handles city registration
func (h *NetworkHandler) RegisterCity(c echo.Context) error {
	var req RegisterCityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	city, err := h.networkUC.RegisterCity(c.Request().Context(), strings.TrimSpace(req.Name))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, city)
}

// ListConnections handles listing every connection
func (h *NetworkHandler) ListConnections(c echo.Context) error {
	connections, err := h.networkUC.ListConnections(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// AddConnection handles adding or overwriting a connection
func (h *NetworkHandler) AddConnection(c echo.Context) error {
	var req AddConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	mode, err := entity.ParseMode(req.Mode)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidMode.WithDetails(err.Error()))
	}

	conn, err := h.networkUC.AddConnection(c.Request().Context(), &usecase.ConnectionInput{
		From: req.From,
		To:   req.To,
		Mode: mode,
		Cost: *req.Cost,
		Time: *req.Time,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, conn)
}

// RemoveConnection handles removing a connection
func (h *NetworkHandler) RemoveConnection(c echo.Context) error {
	var req RemoveConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connection reference")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	mode, err := entity.ParseMode(req.Mode)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidMode.WithDetails(err.Error()))
	}

	ref := &usecase.ConnectionRef{From: req.From, To: req.To, Mode: mode}
	if err := h.networkUC.RemoveConnection(c.Request().Context(), ref); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Connection removed successfully"})
}

// FindRoute handles route queries. Unreachable destinations answer 200 with
// is_reachable set to false.
func (h *NetworkHandler) FindRoute(c echo.Context) error {
	var req FindRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	dim := h.defaultDimension
	if req.Dimension != "" {
		parsed, err := entity.ParseDimension(req.Dimension)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidDimension.WithDetails(err.Error()))
		}
		dim = parsed
	}

	modes, err := entity.ParseModeSet(req.Modes)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidMode.WithDetails(err.Error()))
	}

	result, err := h.networkUC.FindRoute(c.Request().Context(), &usecase.RouteQuery{
		From:      req.From,
		To:        req.To,
		Dimension: dim,
		Modes:     modes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
