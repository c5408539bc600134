package engine

import (
	"intercity/internal/domain/entity"
	"intercity/internal/errors"
	"intercity/internal/infra/routing/network"
)

var (
	// ErrNoPathFound is returned when the destination is unreachable under the
	// requested modes
	ErrNoPathFound = errors.New("no path found")

	// ErrBrokenPath is returned when the predecessor chain does not lead back
	// to the source within N steps
	ErrBrokenPath = errors.New("predecessor chain does not reach source")
)

// NameResolver maps city indices to names
type NameResolver interface {
	Name(index int) (string, error)
}

// Reconstruct builds the forward route from the search source to dest.
// When dest is the source the route has no hops and a zero total.
func Reconstruct(result *PathResult, names NameResolver, dest int) (*entity.Route, error) {
	if dest < 0 || dest >= len(result.Dist) {
		return nil, errors.Wrapf(network.ErrInvalidIndex, "destination %d with %d cities", dest, len(result.Dist))
	}

	source, err := names.Name(result.Source)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	destination, err := names.Name(dest)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !result.Reachable(dest) {
		return nil, errors.Wrapf(ErrNoPathFound, "from %s to %s", source, destination)
	}

	route := &entity.Route{
		Source:      source,
		Destination: destination,
		Dimension:   result.Dimension,
		Total:       result.Dist[dest],
	}
	if dest == result.Source {
		return route, nil
	}

	hops, err := walkBack(result, names, dest)
	if err != nil {
		return nil, err
	}
	route.Hops = hops

	return route, nil
}

// walkBack follows predecessors from dest to the source, bounded to N steps,
// and returns the hops in travel order.
func walkBack(result *PathResult, names NameResolver, dest int) ([]entity.Hop, error) {
	var reversed []entity.Hop

	current := dest
	for steps := 0; current != result.Source; steps++ {
		if steps >= len(result.Pred) {
			return nil, errors.Wrapf(ErrBrokenPath, "exceeded %d steps", len(result.Pred))
		}

		pred := result.Pred[current]
		if pred.City == NoPredecessor {
			return nil, errors.Wrapf(ErrBrokenPath, "city %d has no predecessor", current)
		}

		name, err := names.Name(current)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reversed = append(reversed, entity.Hop{City: name, Mode: pred.Mode})
		current = pred.City
	}

	hops := make([]entity.Hop, len(reversed))
	for i, hop := range reversed {
		hops[len(reversed)-1-i] = hop
	}

	return hops, nil
}
