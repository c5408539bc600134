package impl

import (
	"context"
	"log/slog"

	deliverycontext "intercity/internal/delivery/context"
	"intercity/internal/domain/entity"
	domainerrors "intercity/internal/domain/errors"
	"intercity/internal/errors"
	"intercity/internal/infra/routing/engine"
	"intercity/internal/infra/routing/network"
	"intercity/internal/usecase"

	"go.uber.org/fx"
)

// NetworkServiceParams holds dependencies for the network service, injected by Fx.
type NetworkServiceParams struct {
	fx.In

	Engine *engine.Engine
	Logger *slog.Logger
}

type networkService struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewNetworkService creates a new network service instance
func NewNetworkService(params NetworkServiceParams) usecase.NetworkUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &networkService{
		engine: params.Engine,
		logger: logger,
	}
}

func (s *networkService) ListCities(ctx context.Context) ([]usecase.CityInfo, error) {
	cities := s.engine.ListCities()
	out := make([]usecase.CityInfo, len(cities))
	for i, city := range cities {
		out[i] = toCityInfo(city)
	}

	return out, nil
}

func (s *networkService) RegisterCity(ctx context.Context, name string) (*usecase.CityInfo, error) {
	idx, err := s.engine.RegisterCity(name)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &usecase.CityInfo{Index: idx, Name: name}, nil
}

func (s *networkService) ListConnections(ctx context.Context) ([]usecase.ConnectionInfo, error) {
	connections := s.engine.Connections()
	out := make([]usecase.ConnectionInfo, len(connections))
	for i, conn := range connections {
		out[i] = usecase.ConnectionInfo{
			From: conn.From,
			To:   conn.To,
			Mode: conn.Mode.Slug(),
			Cost: conn.Cost,
			Time: conn.Time,
		}
	}

	return out, nil
}

func (s *networkService) AddConnection(ctx context.Context, input *usecase.ConnectionInput) (*usecase.ConnectionInfo, error) {
	if err := s.engine.Connect(input.From, input.To, input.Mode, input.Cost, input.Time); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &usecase.ConnectionInfo{
		From: input.From,
		To:   input.To,
		Mode: input.Mode.Slug(),
		Cost: input.Cost,
		Time: input.Time,
	}, nil
}

func (s *networkService) RemoveConnection(ctx context.Context, ref *usecase.ConnectionRef) error {
	if err := s.engine.Disconnect(ref.From, ref.To, ref.Mode); err != nil {
		return s.mapError(ctx, err)
	}

	return nil
}

func (s *networkService) FindRoute(ctx context.Context, query *usecase.RouteQuery) (*usecase.RouteResult, error) {
	modes := query.Modes
	if modes.IsEmpty() {
		modes = entity.AllModes()
	}

	result := &usecase.RouteResult{
		From:        query.From,
		To:          query.To,
		Dimension:   query.Dimension.String(),
		Unit:        query.Dimension.Unit(),
		Modes:       modeSlugs(modes),
		IsReachable: true,
		Hops:        []usecase.RouteHop{},
	}

	route, err := s.engine.FindRoute(query.From, query.To, query.Dimension, modes)
	switch {
	case errors.Is(err, engine.ErrNoPathFound):
		result.IsReachable = false
		result.Description = "No path found from " + query.From + " to " + query.To

		return result, nil
	case err != nil:
		return nil, s.mapError(ctx, err)
	}

	result.SameEndpoint = query.From == query.To
	result.Total = route.Total
	result.Description = route.String()
	for _, hop := range route.Hops {
		result.Hops = append(result.Hops, usecase.RouteHop{City: hop.City, Mode: hop.Mode.Slug()})
	}

	return result, nil
}

func (s *networkService) IsReady() bool {
	return s.engine.IsReady()
}

// mapError translates core errors into application errors
func (s *networkService) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, network.ErrCityNotFound):
		return domainerrors.ErrCityNotFound.WithDetails(err.Error())
	case errors.Is(err, network.ErrEmptyCityName):
		return domainerrors.ErrCityNameRequired
	case errors.Is(err, network.ErrInvalidIndex):
		return domainerrors.ErrInvalidIndex.WithDetails(err.Error())
	case errors.Is(err, network.ErrInvalidMode), errors.Is(err, entity.ErrUnknownMode):
		return domainerrors.ErrInvalidMode.WithDetails(err.Error())
	case errors.Is(err, network.ErrInvalidDimension), errors.Is(err, entity.ErrUnknownDimension):
		return domainerrors.ErrInvalidDimension
	case errors.Is(err, network.ErrNegativeWeight):
		return domainerrors.ErrInvalidWeight.WithDetails(err.Error())
	case errors.Is(err, network.ErrAllocation):
		return domainerrors.ErrNetworkCapacityExceeded.WithDetails(err.Error())
	}

	s.getLogger(ctx).ErrorContext(ctx, "Unexpected network error", slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrInternalError, err.Error())
}

func (s *networkService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, s.logger)
}

func toCityInfo(city entity.City) usecase.CityInfo {
	return usecase.CityInfo{Index: city.Index, Name: city.Name}
}

func modeSlugs(modes entity.ModeSet) []string {
	members := modes.Modes()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Slug()
	}

	return out
}
