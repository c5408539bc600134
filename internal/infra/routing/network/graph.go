// Package network holds the city registry and the per-mode weight matrices.
package network

import (
	"intercity/internal/domain/entity"
	"intercity/internal/errors"
)

var (
	// ErrInvalidIndex is returned when a city index is outside [0, N)
	ErrInvalidIndex = errors.New("invalid city index")

	// ErrInvalidMode is returned for a mode outside the supported set
	ErrInvalidMode = errors.New("invalid transport mode")

	// ErrInvalidDimension is returned for a dimension other than cost or time
	ErrInvalidDimension = errors.New("invalid search dimension")

	// ErrNegativeWeight is returned when a cost or time below zero is supplied
	ErrNegativeWeight = errors.New("edge weights must be non-negative")

	// ErrAllocation is returned when the graph cannot grow by another city
	ErrAllocation = errors.New("network capacity exhausted")
)

const dimensionCount = 2

// Graph stores, for every mode, an N×N cost matrix and an N×N time matrix.
// All matrices are square and symmetric.
type Graph struct {
	size     int
	capacity int

	// matrices[mode][dimension][i][j]
	matrices [entity.ModeCount][dimensionCount][][]Weight
}

// Edge is one undirected connection as stored in the matrices (From <= To)
type Edge struct {
	From int
	To   int
	Mode entity.Mode
	Cost int64
	Time int64
}

// NewGraph creates an empty graph. A positive capacity bounds the number of
// cities; zero means unbounded.
func NewGraph(capacity int) *Graph {
	if capacity < 0 {
		capacity = 0
	}

	return &Graph{capacity: capacity}
}

// Size returns the number of cities N
func (g *Graph) Size() int {
	return g.size
}

// grow appends one row and one column to every matrix. New cells are
// NoConnection; existing cells are untouched.
func (g *Graph) grow() error {
	if g.capacity > 0 && g.size >= g.capacity {
		return errors.Wrapf(ErrAllocation, "limit of %d cities reached", g.capacity)
	}

	n := g.size + 1
	for m := range g.matrices {
		for d := range g.matrices[m] {
			g.matrices[m][d] = growMatrix(g.matrices[m][d], n)
		}
	}
	g.size = n

	return nil
}

func growMatrix(rows [][]Weight, n int) [][]Weight {
	for i := range rows {
		rows[i] = append(rows[i], NoConnection)
	}

	row := make([]Weight, n)
	for j := range row {
		row[j] = NoConnection
	}

	return append(rows, row)
}

// SetEdge connects i and j under mode in both directions, overwriting any
// previous weights for that pair and mode. Self loops are accepted.
func (g *Graph) SetEdge(i, j int, mode entity.Mode, cost, travelTime int64) error {
	if err := g.checkEdge(i, j, mode); err != nil {
		return err
	}
	if cost < 0 || travelTime < 0 {
		return errors.Wrapf(ErrNegativeWeight, "cost=%d time=%d", cost, travelTime)
	}

	g.set(i, j, mode, entity.DimensionCost, Connected(cost))
	g.set(i, j, mode, entity.DimensionTime, Connected(travelTime))

	return nil
}

// ClearEdge removes the connection between i and j under mode in both directions
func (g *Graph) ClearEdge(i, j int, mode entity.Mode) error {
	if err := g.checkEdge(i, j, mode); err != nil {
		return err
	}

	g.set(i, j, mode, entity.DimensionCost, NoConnection)
	g.set(i, j, mode, entity.DimensionTime, NoConnection)

	return nil
}

// Weight returns the weight from i to j under mode in the given dimension,
// or NoConnection when there is no edge or the arguments are out of range.
func (g *Graph) Weight(i, j int, mode entity.Mode, dim entity.Dimension) Weight {
	if !g.InRange(i) || !g.InRange(j) || !mode.Valid() || !dim.Valid() {
		return NoConnection
	}

	return g.matrices[mode][dim][i][j]
}

// HasEdge reports whether i and j are connected under mode
func (g *Graph) HasEdge(i, j int, mode entity.Mode) bool {
	return g.Weight(i, j, mode, entity.DimensionCost).Valid
}

// Edges lists every stored connection once, ordered by From, To, then mode
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for i := 0; i < g.size; i++ {
		for j := i; j < g.size; j++ {
			for _, mode := range entity.Modes() {
				cost := g.matrices[mode][entity.DimensionCost][i][j]
				if !cost.Valid {
					continue
				}
				edges = append(edges, Edge{
					From: i,
					To:   j,
					Mode: mode,
					Cost: cost.Value,
					Time: g.matrices[mode][entity.DimensionTime][i][j].Value,
				})
			}
		}
	}

	return edges
}

// InRange reports whether i is a registered city index
func (g *Graph) InRange(i int) bool {
	return i >= 0 && i < g.size
}

func (g *Graph) checkEdge(i, j int, mode entity.Mode) error {
	if !g.InRange(i) || !g.InRange(j) {
		return errors.Wrapf(ErrInvalidIndex, "(%d, %d) with %d cities", i, j, g.size)
	}
	if !mode.Valid() {
		return errors.Wrapf(ErrInvalidMode, "mode %d", int(mode))
	}

	return nil
}

func (g *Graph) set(i, j int, mode entity.Mode, dim entity.Dimension, w Weight) {
	g.matrices[mode][dim][i][j] = w
	g.matrices[mode][dim][j][i] = w
}
