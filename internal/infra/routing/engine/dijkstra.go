package engine

import (
	"math"

	"intercity/internal/domain/entity"
	"intercity/internal/errors"
	"intercity/internal/infra/routing/network"
)

// Unreachable is the distance of a node the search could not reach
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable nodes
const NoPredecessor = -1

// Predecessor records how the search arrived at a node
type Predecessor struct {
	City int
	Mode entity.Mode
}

// PathResult holds single-source distances and predecessors for one query.
// It is not shared across queries.
type PathResult struct {
	Source    int
	Dimension entity.Dimension
	Dist      []int64
	Pred      []Predecessor
}

// Reachable reports whether v has a finite distance
func (r *PathResult) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// ShortestPaths runs a dense Dijkstra search from source over the modes in
// allowed, minimizing dim. An empty mode set is taken literally: only the
// source is reachable.
//
// Node selection breaks ties on the lowest index. For each candidate pair the
// cheapest allowed mode wins, with ties going to the first mode in
// entity.Modes order.
func ShortestPaths(g *network.Graph, source int, allowed entity.ModeSet, dim entity.Dimension) (*PathResult, error) {
	if !g.InRange(source) {
		return nil, errors.Wrapf(network.ErrInvalidIndex, "source %d with %d cities", source, g.Size())
	}
	if !dim.Valid() {
		return nil, errors.Wrapf(network.ErrInvalidDimension, "dimension %d", int(dim))
	}

	n := g.Size()
	result := initializeResult(n, source, dim)
	visited := make([]bool, n)
	modes := allowed.Modes()

	for range n {
		u := selectNearest(result.Dist, visited)
		if u == NoPredecessor {
			break
		}
		visited[u] = true
		relaxEdges(g, result, visited, u, modes)
	}

	return result, nil
}

func initializeResult(n, source int, dim entity.Dimension) *PathResult {
	result := &PathResult{
		Source:    source,
		Dimension: dim,
		Dist:      make([]int64, n),
		Pred:      make([]Predecessor, n),
	}
	for i := range n {
		result.Dist[i] = Unreachable
		result.Pred[i] = Predecessor{City: NoPredecessor}
	}
	result.Dist[source] = 0

	return result
}

// selectNearest returns the unvisited node with the smallest finite distance,
// preferring the lowest index on ties, or NoPredecessor if none is left.
func selectNearest(dist []int64, visited []bool) int {
	best := NoPredecessor
	for v, d := range dist {
		if visited[v] || d == Unreachable {
			continue
		}
		if best == NoPredecessor || d < dist[best] {
			best = v
		}
	}

	return best
}

func relaxEdges(g *network.Graph, result *PathResult, visited []bool, u int, modes []entity.Mode) {
	for v := range result.Dist {
		if visited[v] || v == u {
			continue
		}

		candidate, mode, ok := cheapestHop(g, u, v, result.Dist[u], modes, result.Dimension)
		if ok && candidate < result.Dist[v] {
			result.Dist[v] = candidate
			result.Pred[v] = Predecessor{City: u, Mode: mode}
		}
	}
}

// cheapestHop picks the allowed mode giving the smallest distance to v via u.
// Only a strictly smaller candidate replaces an earlier mode.
func cheapestHop(g *network.Graph, u, v int, base int64, modes []entity.Mode, dim entity.Dimension) (int64, entity.Mode, bool) {
	var (
		best     int64
		bestMode entity.Mode
		found    bool
	)

	for _, mode := range modes {
		w := g.Weight(u, v, mode, dim)
		if !w.Valid || w.Value >= Unreachable-base {
			continue
		}

		candidate := base + w.Value
		if !found || candidate < best {
			best, bestMode, found = candidate, mode, true
		}
	}

	return best, bestMode, found
}
