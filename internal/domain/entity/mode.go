package entity

import (
	"strings"

	"intercity/internal/errors"
)

// ErrUnknownMode is returned when a token does not name a transport mode
var ErrUnknownMode = errors.New("unknown transport mode")

// Mode is one independent weighted layer of the city graph
type Mode int

const (
	ModeRoad Mode = iota
	ModeRailway
	ModeAir

	// ModeCount is the number of supported modes. Valid modes are [0, ModeCount).
	ModeCount = 3
)

// modeOrder is the evaluation order used when several modes tie on weight.
var modeOrder = [ModeCount]Mode{ModeRoad, ModeRailway, ModeAir}

var modeNames = [ModeCount]string{"Road", "Railway", "Air"}

var modeSlugs = [ModeCount]string{"road", "railway", "air"}

// modeAliases maps accepted input tokens onto modes. Keys are lower-cased.
var modeAliases = map[string]Mode{
	"road":    ModeRoad,
	"car":     ModeRoad,
	"drive":   ModeRoad,
	"highway": ModeRoad,
	"自驾":      ModeRoad,
	"公路":      ModeRoad,

	"rail":    ModeRailway,
	"railway": ModeRailway,
	"train":   ModeRailway,
	"hsr":     ModeRailway,
	"高铁":      ModeRailway,
	"铁路":      ModeRailway,

	"air":    ModeAir,
	"flight": ModeAir,
	"plane":  ModeAir,
	"航空":     ModeAir,
	"飞机":     ModeAir,
}

// Modes returns every mode in tie-break evaluation order: road, railway, air.
func Modes() []Mode {
	out := make([]Mode, ModeCount)
	copy(out, modeOrder[:])

	return out
}

// Valid reports whether m is one of the supported modes
func (m Mode) Valid() bool {
	return m >= 0 && m < ModeCount
}

// String returns the display name used in route descriptions
func (m Mode) String() string {
	if !m.Valid() {
		return "Unknown"
	}

	return modeNames[m]
}

// Slug returns the lower-case identifier used in APIs and metric labels
func (m Mode) Slug() string {
	if !m.Valid() {
		return "unknown"
	}

	return modeSlugs[m]
}

// ParseMode maps a free-text token onto a mode.
// Latin tokens are matched case-insensitively.
func ParseMode(token string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(token))
	if mode, ok := modeAliases[key]; ok {
		return mode, nil
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", token)
}

// ModeSet is a subset of the supported modes
type ModeSet uint8

// NewModeSet builds a set from the given modes, ignoring invalid ones
func NewModeSet(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s = s.With(m)
	}

	return s
}

// AllModes returns the set containing every supported mode
func AllModes() ModeSet {
	return NewModeSet(modeOrder[:]...)
}

// ParseModeSet parses a comma or whitespace separated list of mode tokens.
// An empty input yields the empty set.
func ParseModeSet(list string) (ModeSet, error) {
	var s ModeSet
	tokens := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, token := range tokens {
		mode, err := ParseMode(token)
		if err != nil {
			return 0, err
		}
		s = s.With(mode)
	}

	return s, nil
}

// Has reports whether m is in the set
func (s ModeSet) Has(m Mode) bool {
	return m.Valid() && s&(1<<uint(m)) != 0
}

// With returns a copy of the set including m
func (s ModeSet) With(m Mode) ModeSet {
	if !m.Valid() {
		return s
	}

	return s | 1<<uint(m)
}

// Without returns a copy of the set excluding m
func (s ModeSet) Without(m Mode) ModeSet {
	if !m.Valid() {
		return s
	}

	return s &^ (1 << uint(m))
}

// IsEmpty reports whether no mode is selected
func (s ModeSet) IsEmpty() bool {
	return s&AllModes() == 0
}

// Modes lists the members in evaluation order
func (s ModeSet) Modes() []Mode {
	out := make([]Mode, 0, ModeCount)
	for _, m := range modeOrder {
		if s.Has(m) {
			out = append(out, m)
		}
	}

	return out
}

// String renders the set as display names separated by spaces, e.g. "Road Air"
func (s ModeSet) String() string {
	modes := s.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}

	return strings.Join(names, " ")
}
