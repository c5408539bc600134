package network

import "strconv"

// Weight is an optional edge weight. The zero value means "no connection",
// which keeps a genuine zero-cost edge distinguishable from a missing one.
type Weight struct {
	Value int64
	Valid bool
}

// NoConnection marks the absence of an edge
var NoConnection = Weight{}

// Connected wraps v as a present weight
func Connected(v int64) Weight {
	return Weight{Value: v, Valid: true}
}

func (w Weight) String() string {
	if !w.Valid {
		return "none"
	}

	return strconv.FormatInt(w.Value, 10)
}
