package main

import (
	"context"
	"log/slog"
	"os"

	"intercity/config"
	"intercity/internal/delivery"
	"intercity/internal/delivery/api"
	"intercity/internal/delivery/api/router/handler"
	logs "intercity/internal/infra/log"
	"intercity/internal/infra/metrics"
	"intercity/internal/infra/routing/engine"
	"intercity/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		newRoutingEngine,
	)
}

// newRoutingEngine creates the engine and loads the configured network on start
func newRoutingEngine(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, registry *metrics.Registry) *engine.Engine {
	e := engine.NewEngine(engine.EngineConfig{MaxCities: cfg.Network.MaxCities}, logger, registry)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Network.DataPath == "" {
				logger.Warn("No network data path configured, starting with an empty network")

				return e.LoadRecords(nil)
			}

			return e.LoadData(cfg.Network.DataPath)
		},
	})

	return e
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNetworkService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNetworkHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
