package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"intercity/internal/domain/entity"
	"intercity/internal/infra/routing/network"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var dimensions = []entity.Dimension{entity.DimensionCost, entity.DimensionTime}

// randomRegistry builds a reproducible network of n cities from seed
func randomRegistry(seed int64, n int) *network.Registry {
	rng := rand.New(rand.NewSource(seed))
	r := network.NewRegistry(0)
	for i := 0; i < n; i++ {
		_, _ = r.Register(fmt.Sprintf("C%d", i))
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, mode := range entity.Modes() {
				if rng.Intn(100) < 35 {
					_ = r.Graph().SetEdge(i, j, mode, int64(rng.Intn(20)), int64(rng.Intn(10)))
				}
			}
		}
	}

	return r
}

// randomEngine builds the same network as randomRegistry through the engine API
func randomEngine(seed int64, n int) (*Engine, error) {
	r := randomRegistry(seed, n)
	e := NewEngine(EngineConfig{}, nil, nil)
	for _, city := range r.Cities() {
		if _, err := e.RegisterCity(city.Name); err != nil {
			return nil, err
		}
	}
	for _, edge := range r.Graph().Edges() {
		if err := e.AddConnection(edge.From, edge.To, edge.Mode, edge.Cost, edge.Time); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// referenceDistances relaxes every edge N times (Bellman-Ford) as an oracle
func referenceDistances(g *network.Graph, source int, modes entity.ModeSet, dim entity.Dimension) []int64 {
	n := g.Size()
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0

	for range n {
		for u := 0; u < n; u++ {
			if dist[u] == Unreachable {
				continue
			}
			for v := 0; v < n; v++ {
				for _, mode := range modes.Modes() {
					w := g.Weight(u, v, mode, dim)
					if w.Valid && dist[u]+w.Value < dist[v] {
						dist[v] = dist[u] + w.Value
					}
				}
			}
		}
	}

	return dist
}

func modeSetFrom(bits uint8) entity.ModeSet {
	return entity.ModeSet(bits) & entity.AllModes()
}

func TestShortestPathProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("distances match a brute-force oracle", prop.ForAll(
		func(seed int64, n int, bits uint8) bool {
			r := randomRegistry(seed, n)
			modes := modeSetFrom(bits)
			for _, dim := range dimensions {
				for source := 0; source < n; source++ {
					result, err := ShortestPaths(r.Graph(), source, modes, dim)
					if err != nil {
						return false
					}
					want := referenceDistances(r.Graph(), source, modes, dim)
					for v := range want {
						if result.Dist[v] != want[v] {
							return false
						}
					}
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
		gen.UInt8Range(0, 7),
	))

	properties.Property("every predecessor is an allowed edge that accounts for the distance", prop.ForAll(
		func(seed int64, n int, bits uint8) bool {
			r := randomRegistry(seed, n)
			modes := modeSetFrom(bits)
			for _, dim := range dimensions {
				result, err := ShortestPaths(r.Graph(), 0, modes, dim)
				if err != nil {
					return false
				}
				if result.Dist[0] != 0 || result.Pred[0].City != NoPredecessor {
					return false
				}
				for v, pred := range result.Pred {
					if pred.City == NoPredecessor {
						if v != 0 && result.Reachable(v) {
							return false
						}

						continue
					}
					w := r.Graph().Weight(pred.City, v, pred.Mode, dim)
					if !w.Valid || !modes.Has(pred.Mode) || result.Dist[pred.City]+w.Value != result.Dist[v] {
						return false
					}
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
		gen.UInt8Range(0, 7),
	))

	properties.Property("removing a mode never shortens a route", prop.ForAll(
		func(seed int64, n int, drop uint8) bool {
			r := randomRegistry(seed, n)
			mode := entity.Mode(drop)
			for _, dim := range dimensions {
				full, err := ShortestPaths(r.Graph(), 0, entity.AllModes(), dim)
				if err != nil {
					return false
				}
				reduced, err := ShortestPaths(r.Graph(), 0, entity.AllModes().Without(mode), dim)
				if err != nil {
					return false
				}
				for v := range full.Dist {
					if reduced.Dist[v] < full.Dist[v] {
						return false
					}
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
		gen.UInt8Range(0, entity.ModeCount-1),
	))

	properties.Property("reconstructed routes have consistent totals", prop.ForAll(
		func(seed int64, n int) bool {
			r := randomRegistry(seed, n)
			result, err := ShortestPaths(r.Graph(), 0, entity.AllModes(), entity.DimensionCost)
			if err != nil {
				return false
			}
			for dest := 0; dest < n; dest++ {
				route, err := Reconstruct(result, r, dest)
				if !result.Reachable(dest) {
					if err == nil {
						return false
					}

					continue
				}
				if err != nil || len(route.Hops) >= n {
					return false
				}

				var total int64
				prev, _ := r.IndexOf(route.Source)
				for _, hop := range route.Hops {
					next, _ := r.IndexOf(hop.City)
					total += r.Graph().Weight(prev, next, hop.Mode, entity.DimensionCost).Value
					prev = next
				}
				if total != route.Total {
					return false
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}

func TestNetworkProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("matrices stay symmetric under add and remove", prop.ForAll(
		func(seed int64, n int, ops int) bool {
			r := randomRegistry(seed, n)
			g := r.Graph()
			rng := rand.New(rand.NewSource(seed + 1))
			for range ops {
				i, j := rng.Intn(n), rng.Intn(n)
				mode := entity.Mode(rng.Intn(entity.ModeCount))
				if rng.Intn(2) == 0 {
					_ = g.SetEdge(i, j, mode, int64(rng.Intn(50)), int64(rng.Intn(50)))
				} else {
					_ = g.ClearEdge(i, j, mode)
				}
			}

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					for _, mode := range entity.Modes() {
						for _, dim := range dimensions {
							if g.Weight(i, j, mode, dim) != g.Weight(j, i, mode, dim) {
								return false
							}
						}
					}
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
		gen.IntRange(0, 40),
	))

	properties.Property("registering a city never alters existing weights", prop.ForAll(
		func(seed int64, n int) bool {
			r := randomRegistry(seed, n)
			before := r.Graph().Edges()

			if _, err := r.Register("Newcomer"); err != nil {
				return false
			}

			after := r.Graph().Edges()
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			for i := 0; i <= n; i++ {
				for _, mode := range entity.Modes() {
					if r.Graph().HasEdge(i, n, mode) {
						return false
					}
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(0, 8),
	))

	properties.Property("registration is idempotent", prop.ForAll(
		func(seed int64, n int, pick int) bool {
			r := randomRegistry(seed, n)
			name := fmt.Sprintf("C%d", pick%n)

			first, err := r.Register(name)
			if err != nil {
				return false
			}
			second, err := r.Register(name)

			return err == nil && first == second && first == pick%n && r.Len() == n
		},
		gen.Int64(),
		gen.IntRange(1, 8),
		gen.IntRange(0, 100),
	))

	properties.Property("a city is zero distance from itself", prop.ForAll(
		func(seed int64, n int, bits uint8) bool {
			e, err := randomEngine(seed, n)
			if err != nil {
				return false
			}

			for i := 0; i < n; i++ {
				for _, dim := range dimensions {
					route, err := e.Query(i, i, dim, modeSetFrom(bits))
					if err != nil || route.Total != 0 || len(route.Hops) != 0 {
						return false
					}
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
		gen.UInt8Range(0, 7),
	))

	properties.TestingRun(t)
}
