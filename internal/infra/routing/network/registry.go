package network

import (
	"intercity/internal/domain/entity"
	"intercity/internal/errors"
)

var (
	// ErrCityNotFound is returned when a name has not been registered
	ErrCityNotFound = errors.New("city not found")

	// ErrEmptyCityName is returned when registering a blank name
	ErrEmptyCityName = errors.New("city name is required")
)

// Registry maps city names to stable indices and owns the graph those
// indices address. Cities are append-only.
type Registry struct {
	names []string
	index map[string]int
	graph *Graph
}

// NewRegistry creates an empty registry backed by a graph with the given capacity
func NewRegistry(capacity int) *Registry {
	return &Registry{
		index: make(map[string]int),
		graph: NewGraph(capacity),
	}
}

// Graph returns the graph addressed by this registry's indices
func (r *Registry) Graph() *Graph {
	return r.graph
}

// IndexOf looks up a city by exact name
func (r *Registry) IndexOf(name string) (int, error) {
	idx, ok := r.index[name]
	if !ok {
		return -1, errors.Wrapf(ErrCityNotFound, "%q", name)
	}

	return idx, nil
}

// Register returns the index of name, adding the city and growing the graph
// if it is new. Registering an existing name does not change N.
func (r *Registry) Register(name string) (int, error) {
	if name == "" {
		return -1, errors.WithStack(ErrEmptyCityName)
	}
	if idx, ok := r.index[name]; ok {
		return idx, nil
	}

	if err := r.graph.grow(); err != nil {
		return -1, errors.Wrapf(err, "register %q", name)
	}

	idx := len(r.names)
	r.names = append(r.names, name)
	r.index[name] = idx

	return idx, nil
}

// Name returns the city registered at index
func (r *Registry) Name(index int) (string, error) {
	if index < 0 || index >= len(r.names) {
		return "", errors.Wrapf(ErrInvalidIndex, "%d with %d cities", index, len(r.names))
	}

	return r.names[index], nil
}

// Len returns the number of registered cities
func (r *Registry) Len() int {
	return len(r.names)
}

// Cities lists every city ordered by index
func (r *Registry) Cities() []entity.City {
	cities := make([]entity.City, len(r.names))
	for i, name := range r.names {
		cities[i] = entity.City{Index: i, Name: name}
	}

	return cities
}
