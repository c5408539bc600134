// Package engine answers shortest-path queries over the multi-modal network
// and serializes them against network mutations.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"intercity/internal/domain/entity"
	"intercity/internal/errors"
	"intercity/internal/infra/routing/loader"
	"intercity/internal/infra/routing/network"
)

// Query outcomes reported to the Observer
const (
	OutcomeFound        = "found"
	OutcomeSameEndpoint = "same_endpoint"
	OutcomeNoPath       = "no_path"
	OutcomeError        = "error"
)

// Observer receives engine activity for instrumentation
type Observer interface {
	ObserveQuery(dim entity.Dimension, outcome string, duration time.Duration)
	ObserveConnectionChange(operation string, mode entity.Mode)
	ObserveLoad(status string)
	SetNetworkSize(cities, connections int)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(entity.Dimension, string, time.Duration) {}
func (nopObserver) ObserveConnectionChange(string, entity.Mode)          {}
func (nopObserver) ObserveLoad(string)                                   {}
func (nopObserver) SetNetworkSize(int, int)                              {}

// EngineConfig holds configuration for the routing engine
type EngineConfig struct {
	MaxCities int // 0 = unbounded
}

// Engine owns the city registry and its graph. Queries hold the read lock;
// registrations, connection changes and loads hold the write lock.
type Engine struct {
	config   EngineConfig
	logger   *slog.Logger
	observer Observer

	mu       sync.RWMutex
	registry *network.Registry
	loaded   bool
}

// NewEngine creates an engine with an empty network. The empty network is
// queryable and mutable right away; IsReady only turns true after a load.
func NewEngine(config EngineConfig, logger *slog.Logger, observer Observer) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Engine{
		config:   config,
		logger:   logger,
		observer: observer,
		registry: network.NewRegistry(config.MaxCities),
	}
}

// LoadData replaces the network with the contents of a transport data file
func (e *Engine) LoadData(path string) error {
	start := time.Now()

	data, err := loader.NewTextLoader(path, e.logger).Load()
	if err != nil {
		e.observer.ObserveLoad("error")

		return errors.Wrap(err, "failed to load network data")
	}

	if err := e.LoadRecords(data.Records); err != nil {
		return err
	}

	e.logger.Info("Transport network loaded successfully",
		slog.String("path", path),
		slog.Int("records", data.Stats.Records),
		slog.Int("skipped", data.Stats.Skipped),
		slog.Int("cities", e.Size()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// LoadRecords replaces the network with one built from records. The new
// network is built aside and swapped in, so a failure leaves the current
// network untouched.
func (e *Engine) LoadRecords(records []loader.Record) error {
	registry, err := buildRegistry(e.config.MaxCities, records)
	if err != nil {
		e.observer.ObserveLoad("error")

		return err
	}

	e.mu.Lock()
	e.registry = registry
	e.loaded = true
	e.reportSizeLocked()
	e.mu.Unlock()

	e.observer.ObserveLoad("success")

	return nil
}

func buildRegistry(capacity int, records []loader.Record) (*network.Registry, error) {
	registry := network.NewRegistry(capacity)
	for _, rec := range records {
		from, err := registry.Register(rec.From)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.Line)
		}
		to, err := registry.Register(rec.To)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.Line)
		}
		if err := registry.Graph().SetEdge(from, to, rec.Mode, rec.Cost, rec.Time); err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.Line)
		}
	}

	return registry, nil
}

// IsReady reports whether a network has been loaded
func (e *Engine) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.loaded
}

// Size returns the number of registered cities
func (e *Engine) Size() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.registry.Len()
}

// RegisterCity returns the index of name, adding the city if it is new
func (e *Engine) RegisterCity(name string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	before := e.registry.Len()
	idx, err := e.registry.Register(name)
	if err != nil {
		return -1, err
	}

	if e.registry.Len() != before {
		e.logger.Debug("City registered", slog.String("city", name), slog.Int("index", idx))
		e.reportSizeLocked()
	}

	return idx, nil
}

// CityIndex looks up a city by exact name
func (e *Engine) CityIndex(name string) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.registry.IndexOf(name)
}

// ListCities returns every city ordered by index
func (e *Engine) ListCities() []entity.City {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.registry.Cities()
}

// Connections lists every connection in the network
func (e *Engine) Connections() []entity.Connection {
	e.mu.RLock()
	defer e.mu.RUnlock()

	edges := e.registry.Graph().Edges()
	out := make([]entity.Connection, 0, len(edges))
	for _, edge := range edges {
		from, _ := e.registry.Name(edge.From)
		to, _ := e.registry.Name(edge.To)
		out = append(out, entity.Connection{
			From: from,
			To:   to,
			Mode: edge.Mode,
			Cost: edge.Cost,
			Time: edge.Time,
		})
	}

	return out
}

// AddConnection sets the mode-specific edge between two city indices
func (e *Engine) AddConnection(a, b int, mode entity.Mode, cost, travelTime int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.addLocked(a, b, mode, cost, travelTime)
}

// RemoveConnection clears the mode-specific edge between two city indices
func (e *Engine) RemoveConnection(a, b int, mode entity.Mode) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.removeLocked(a, b, mode)
}

// Connect is AddConnection addressed by city names
func (e *Engine) Connect(from, to string, mode entity.Mode, cost, travelTime int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, b, err := e.resolveLocked(from, to)
	if err != nil {
		return err
	}

	return e.addLocked(a, b, mode, cost, travelTime)
}

// Disconnect is RemoveConnection addressed by city names
func (e *Engine) Disconnect(from, to string, mode entity.Mode) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, b, err := e.resolveLocked(from, to)
	if err != nil {
		return err
	}

	return e.removeLocked(a, b, mode)
}

// Query finds the best route between two city indices. An unreachable
// destination yields ErrNoPathFound.
func (e *Engine) Query(source, dest int, dim entity.Dimension, modes entity.ModeSet) (*entity.Route, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.queryLocked(source, dest, dim, modes)
}

// FindRoute is Query addressed by city names, resolved under the same lock
func (e *Engine) FindRoute(from, to string, dim entity.Dimension, modes entity.ModeSet) (*entity.Route, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	source, dest, err := e.resolveLocked(from, to)
	if err != nil {
		return nil, err
	}

	return e.queryLocked(source, dest, dim, modes)
}

func (e *Engine) queryLocked(source, dest int, dim entity.Dimension, modes entity.ModeSet) (*entity.Route, error) {
	start := time.Now()

	route, err := e.search(source, dest, dim, modes)

	outcome := OutcomeFound
	switch {
	case errors.Is(err, ErrNoPathFound):
		outcome = OutcomeNoPath
	case err != nil:
		outcome = OutcomeError
	case source == dest:
		outcome = OutcomeSameEndpoint
	}
	e.observer.ObserveQuery(dim, outcome, time.Since(start))

	return route, err
}

func (e *Engine) search(source, dest int, dim entity.Dimension, modes entity.ModeSet) (*entity.Route, error) {
	graph := e.registry.Graph()
	if !graph.InRange(dest) {
		return nil, errors.Wrapf(network.ErrInvalidIndex, "destination %d with %d cities", dest, graph.Size())
	}

	result, err := ShortestPaths(graph, source, modes, dim)
	if err != nil {
		return nil, err
	}

	return Reconstruct(result, e.registry, dest)
}

func (e *Engine) resolveLocked(from, to string) (int, int, error) {
	a, err := e.registry.IndexOf(from)
	if err != nil {
		return -1, -1, err
	}
	b, err := e.registry.IndexOf(to)
	if err != nil {
		return -1, -1, err
	}

	return a, b, nil
}

func (e *Engine) addLocked(a, b int, mode entity.Mode, cost, travelTime int64) error {
	if err := e.registry.Graph().SetEdge(a, b, mode, cost, travelTime); err != nil {
		return err
	}

	e.logger.Info("Connection added",
		slog.Int("from", a),
		slog.Int("to", b),
		slog.String("mode", mode.Slug()),
		slog.Int64("cost", cost),
		slog.Int64("time", travelTime),
	)
	e.observer.ObserveConnectionChange("add", mode)
	e.reportSizeLocked()

	return nil
}

func (e *Engine) removeLocked(a, b int, mode entity.Mode) error {
	if err := e.registry.Graph().ClearEdge(a, b, mode); err != nil {
		return err
	}

	e.logger.Info("Connection removed",
		slog.Int("from", a),
		slog.Int("to", b),
		slog.String("mode", mode.Slug()),
	)
	e.observer.ObserveConnectionChange("remove", mode)
	e.reportSizeLocked()

	return nil
}

func (e *Engine) reportSizeLocked() {
	e.observer.SetNetworkSize(e.registry.Len(), len(e.registry.Graph().Edges()))
}
