package entity

import (
	"strings"

	"intercity/internal/errors"
)

// ErrUnknownDimension is returned when a token does not name a search dimension
var ErrUnknownDimension = errors.New("unknown search dimension")

// Dimension is the metric a route query minimizes
type Dimension int

const (
	DimensionCost Dimension = iota
	DimensionTime
)

// Valid reports whether d is cost or time
func (d Dimension) Valid() bool {
	return d == DimensionCost || d == DimensionTime
}

func (d Dimension) String() string {
	switch d {
	case DimensionCost:
		return "cost"
	case DimensionTime:
		return "time"
	default:
		return "unknown"
	}
}

// Unit returns the unit totals are reported in
func (d Dimension) Unit() string {
	switch d {
	case DimensionCost:
		return "yuan"
	case DimensionTime:
		return "hours"
	default:
		return ""
	}
}

// ParseDimension accepts "cost" or "time" in any case
func ParseDimension(token string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "cost":
		return DimensionCost, nil
	case "time":
		return DimensionTime, nil
	default:
		return 0, errors.Wrapf(ErrUnknownDimension, "%q", token)
	}
}
