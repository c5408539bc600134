package impl

import (
	"context"
	"testing"

	"intercity/internal/domain/entity"
	domainerrors "intercity/internal/domain/errors"
	"intercity/internal/errors"
	"intercity/internal/infra/routing/engine"
	"intercity/internal/infra/routing/loader"
	"intercity/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, maxCities int) usecase.NetworkUsecase {
	t.Helper()

	e := engine.NewEngine(engine.EngineConfig{MaxCities: maxCities}, nil, nil)
	require.NoError(t, e.LoadRecords([]loader.Record{
		{Line: 2, From: "A", To: "B", Mode: entity.ModeRoad, Cost: 10, Time: 2},
		{Line: 3, From: "B", To: "C", Mode: entity.ModeRailway, Cost: 5, Time: 1},
		{Line: 4, From: "A", To: "C", Mode: entity.ModeAir, Cost: 30, Time: 1},
	}))

	return NewNetworkService(NetworkServiceParams{Engine: e})
}

func TestNetworkService_FindRoute(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	t.Run("empty mode set allows every mode", func(t *testing.T) {
		result, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "C", Dimension: entity.DimensionCost})
		require.NoError(t, err)

		assert.True(t, result.IsReachable)
		assert.False(t, result.SameEndpoint)
		assert.Equal(t, int64(15), result.Total)
		assert.Equal(t, "yuan", result.Unit)
		assert.Equal(t, []string{"road", "railway", "air"}, result.Modes)
		assert.Equal(t, []usecase.RouteHop{{City: "B", Mode: "road"}, {City: "C", Mode: "railway"}}, result.Hops)
		assert.Equal(t, "A -> B (Road) -> C (Railway)", result.Description)
	})

	t.Run("time dimension", func(t *testing.T) {
		result, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "C", Dimension: entity.DimensionTime, Modes: entity.AllModes()})
		require.NoError(t, err)

		assert.Equal(t, int64(1), result.Total)
		assert.Equal(t, "hours", result.Unit)
		assert.Equal(t, "A -> C (Air)", result.Description)
	})

	t.Run("no path is a result", func(t *testing.T) {
		result, err := svc.FindRoute(ctx, &usecase.RouteQuery{
			From:      "A",
			To:        "C",
			Dimension: entity.DimensionCost,
			Modes:     entity.NewModeSet(entity.ModeRailway),
		})
		require.NoError(t, err)

		assert.False(t, result.IsReachable)
		assert.Empty(t, result.Hops)
		assert.Equal(t, []string{"railway"}, result.Modes)
		assert.Equal(t, "No path found from A to C", result.Description)
	})

	t.Run("same endpoint", func(t *testing.T) {
		result, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "B", To: "B", Dimension: entity.DimensionCost})
		require.NoError(t, err)

		assert.True(t, result.IsReachable)
		assert.True(t, result.SameEndpoint)
		assert.Equal(t, int64(0), result.Total)
		assert.NotNil(t, result.Hops)
		assert.Empty(t, result.Hops)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "Z", Dimension: entity.DimensionCost})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrCityNotFound))
	})

	t.Run("invalid dimension", func(t *testing.T) {
		_, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "C", Dimension: entity.Dimension(7)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidDimension))
	})
}

func TestNetworkService_WithoutLoad(t *testing.T) {
	ctx := context.Background()
	svc := NewNetworkService(NetworkServiceParams{Engine: engine.NewEngine(engine.EngineConfig{}, nil, nil)})

	assert.False(t, svc.IsReady())

	_, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "B", Dimension: entity.DimensionCost})
	assert.True(t, errors.Is(err, domainerrors.ErrCityNotFound))

	for _, name := range []string{"A", "B"} {
		_, err := svc.RegisterCity(ctx, name)
		require.NoError(t, err)
	}
	_, err = svc.AddConnection(ctx, &usecase.ConnectionInput{From: "A", To: "B", Mode: entity.ModeRailway, Cost: 7, Time: 3})
	require.NoError(t, err)

	result, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "B", Dimension: entity.DimensionTime})
	require.NoError(t, err)
	assert.True(t, result.IsReachable)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, "A -> B (Railway)", result.Description)
}

func TestNetworkService_Cities(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 4)

	city, err := svc.RegisterCity(ctx, "D")
	require.NoError(t, err)
	assert.Equal(t, &usecase.CityInfo{Index: 3, Name: "D"}, city)

	cities, err := svc.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 4)
	assert.Equal(t, usecase.CityInfo{Index: 0, Name: "A"}, cities[0])

	_, err = svc.RegisterCity(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrCityNameRequired))

	_, err = svc.RegisterCity(ctx, "E")
	assert.True(t, errors.Is(err, domainerrors.ErrNetworkCapacityExceeded))
}

func TestNetworkService_Connections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	conn, err := svc.AddConnection(ctx, &usecase.ConnectionInput{From: "A", To: "C", Mode: entity.ModeRoad, Cost: 3, Time: 8})
	require.NoError(t, err)
	assert.Equal(t, "road", conn.Mode)

	connections, err := svc.ListConnections(ctx)
	require.NoError(t, err)
	assert.Contains(t, connections, usecase.ConnectionInfo{From: "A", To: "C", Mode: "road", Cost: 3, Time: 8})
	assert.Len(t, connections, 4)

	result, err := svc.FindRoute(ctx, &usecase.RouteQuery{From: "A", To: "C", Dimension: entity.DimensionCost})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)

	require.NoError(t, svc.RemoveConnection(ctx, &usecase.ConnectionRef{From: "A", To: "C", Mode: entity.ModeRoad}))
	connections, err = svc.ListConnections(ctx)
	require.NoError(t, err)
	assert.Len(t, connections, 3)

	tests := []struct {
		name  string
		input usecase.ConnectionInput
		want  error
	}{
		{"unknown city", usecase.ConnectionInput{From: "A", To: "Z", Mode: entity.ModeRoad, Cost: 1, Time: 1}, domainerrors.ErrCityNotFound},
		{"invalid mode", usecase.ConnectionInput{From: "A", To: "B", Mode: entity.Mode(9), Cost: 1, Time: 1}, domainerrors.ErrInvalidMode},
		{"negative cost", usecase.ConnectionInput{From: "A", To: "B", Mode: entity.ModeAir, Cost: -1, Time: 1}, domainerrors.ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddConnection(ctx, &tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	err = svc.RemoveConnection(ctx, &usecase.ConnectionRef{From: "Z", To: "A", Mode: entity.ModeRoad})
	assert.True(t, errors.Is(err, domainerrors.ErrCityNotFound))
}
