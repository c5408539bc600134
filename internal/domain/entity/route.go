package entity

import (
	"fmt"
	"strings"
)

// Hop is one leg of a route: the city arrived at and the mode used to get there
type Hop struct {
	City string
	Mode Mode
}

// Route is the best path found between two cities under one dimension
type Route struct {
	Source      string
	Destination string
	Dimension   Dimension
	Total       int64
	Hops        []Hop
}

// String renders the route as "A -> B (Road) -> C (Railway)"
func (r *Route) String() string {
	var b strings.Builder
	b.WriteString(r.Source)
	for _, hop := range r.Hops {
		fmt.Fprintf(&b, " -> %s (%s)", hop.City, hop.Mode)
	}

	return b.String()
}

// Summary renders the total, e.g. "Total cost: 15 yuan"
func (r *Route) Summary() string {
	return fmt.Sprintf("Total %s: %d %s", r.Dimension, r.Total, r.Dimension.Unit())
}
