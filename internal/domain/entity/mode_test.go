package entity

import (
	"testing"

	"intercity/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		token string
		want  Mode
	}{
		{token: "ROAD", want: ModeRoad},
		{token: "road", want: ModeRoad},
		{token: "自驾", want: ModeRoad},
		{token: "RAILWAY", want: ModeRailway},
		{token: "rail", want: ModeRailway},
		{token: "高铁", want: ModeRailway},
		{token: "AIR", want: ModeAir},
		{token: " Flight ", want: ModeAir},
		{token: "航空", want: ModeAir},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMode(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("boat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Road", ModeRoad.String())
	assert.Equal(t, "Railway", ModeRailway.String())
	assert.Equal(t, "Air", ModeAir.String())
	assert.Equal(t, "Unknown", Mode(7).String())
	assert.Equal(t, "railway", ModeRailway.Slug())
}

func TestModes_EvaluationOrder(t *testing.T) {
	assert.Equal(t, []Mode{ModeRoad, ModeRailway, ModeAir}, Modes())

	// Callers cannot disturb the shared order.
	modes := Modes()
	modes[0] = ModeAir
	assert.Equal(t, ModeRoad, Modes()[0])
}

func TestModeSet(t *testing.T) {
	var empty ModeSet
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, empty.Modes())

	s := NewModeSet(ModeAir, ModeRoad)
	assert.True(t, s.Has(ModeRoad))
	assert.False(t, s.Has(ModeRailway))
	assert.True(t, s.Has(ModeAir))
	assert.Equal(t, []Mode{ModeRoad, ModeAir}, s.Modes())
	assert.Equal(t, "Road Air", s.String())

	s = s.Without(ModeRoad)
	assert.Equal(t, []Mode{ModeAir}, s.Modes())

	assert.Equal(t, NewModeSet(ModeRoad, ModeRailway, ModeAir), AllModes())
	assert.Equal(t, AllModes(), AllModes().With(Mode(9)))
}

func TestParseModeSet(t *testing.T) {
	s, err := ParseModeSet("road, rail")
	require.NoError(t, err)
	assert.Equal(t, NewModeSet(ModeRoad, ModeRailway), s)

	s, err = ParseModeSet("")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	_, err = ParseModeSet("road,ferry")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("COST")
	require.NoError(t, err)
	assert.Equal(t, DimensionCost, d)
	assert.Equal(t, "yuan", d.Unit())

	d, err = ParseDimension("time")
	require.NoError(t, err)
	assert.Equal(t, DimensionTime, d)
	assert.Equal(t, "hours", d.Unit())

	_, err = ParseDimension("distance")
	assert.True(t, errors.Is(err, ErrUnknownDimension))
}

func TestRoute_Render(t *testing.T) {
	route := &Route{
		Source:      "A",
		Destination: "C",
		Dimension:   DimensionCost,
		Total:       15,
		Hops: []Hop{
			{City: "B", Mode: ModeRoad},
			{City: "C", Mode: ModeRailway},
		},
	}

	assert.Equal(t, "A -> B (Road) -> C (Railway)", route.String())
	assert.Equal(t, "Total cost: 15 yuan", route.Summary())

	trivial := &Route{Source: "A", Destination: "A", Dimension: DimensionTime}
	assert.Equal(t, "A", trivial.String())
	assert.Equal(t, "Total time: 0 hours", trivial.Summary())
}
