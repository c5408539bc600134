package usecase

import (
	"context"

	"intercity/internal/domain/entity"
)

// CityInfo represents a registered city
type CityInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ConnectionInfo represents one mode-specific connection between two cities
type ConnectionInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
	Mode string `json:"mode"`
	Cost int64  `json:"cost"`
	Time int64  `json:"time"`
}

// ConnectionInput describes a connection to add or overwrite
type ConnectionInput struct {
	From string
	To   string
	Mode entity.Mode
	Cost int64
	Time int64
}

// ConnectionRef identifies a connection to remove
type ConnectionRef struct {
	From string
	To   string
	Mode entity.Mode
}

// RouteQuery asks for the best route between two cities.
// An empty Modes set means every mode is allowed.
type RouteQuery struct {
	From      string
	To        string
	Dimension entity.Dimension
	Modes     entity.ModeSet
}

// RouteHop is one leg of a route
type RouteHop struct {
	City string `json:"city"`
	Mode string `json:"mode"`
}

// RouteResult represents the outcome of a route query
type RouteResult struct {
	From         string     `json:"from"`
	To           string     `json:"to"`
	Dimension    string     `json:"dimension"`
	Unit         string     `json:"unit"`
	Modes        []string   `json:"modes"`         // Modes the search was allowed to use
	IsReachable  bool       `json:"is_reachable"`  // False when no route exists under the selected modes
	SameEndpoint bool       `json:"same_endpoint"` // True when departure and destination are the same city
	Total        int64      `json:"total"`
	Hops         []RouteHop `json:"hops"`
	Description  string     `json:"description,omitempty"`
}

// NetworkUsecase defines the transport network operations exposed to deliveries
type NetworkUsecase interface {
	// ListCities returns every registered city ordered by index
	ListCities(ctx context.Context) ([]CityInfo, error)

	// RegisterCity adds a city, or returns the existing one with the same name
	RegisterCity(ctx context.Context, name string) (*CityInfo, error)

	// ListConnections returns every connection in the network
	ListConnections(ctx context.Context) ([]ConnectionInfo, error)

	// AddConnection sets a connection between two registered cities, overwriting
	// any existing connection of the same mode
	AddConnection(ctx context.Context, input *ConnectionInput) (*ConnectionInfo, error)

	// RemoveConnection clears a connection between two registered cities
	RemoveConnection(ctx context.Context, ref *ConnectionRef) error

	// FindRoute computes the best route. Unreachable destinations and identical
	// endpoints are reported in the result, not as errors.
	FindRoute(ctx context.Context, query *RouteQuery) (*RouteResult, error)

	// IsReady returns whether a network has been loaded
	IsReady() bool
}
