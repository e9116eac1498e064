package heuristic_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

func TestEstimate_Formulas(t *testing.T) {
	start := grid.C(0, 0)
	goal := grid.C(6, 2)
	v := grid.C(2, 5)
	// dx = 4, dy = -3

	cases := []struct {
		kind heuristic.Kind
		want float64
	}{
		{heuristic.Pythagorean, 5},
		{heuristic.Manhattan, 7},
		{heuristic.AxisMax, 4},
		{heuristic.ManhattanHex, 0.5},
		{heuristic.StartDelta, math.Abs(math.Hypot(6, 2) - math.Hypot(2, 5))},
		{heuristic.Uniform, 0},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.kind.Estimate(start, goal, v), 1e-12)
		})
	}
}

func TestEstimate_ZeroAtGoal(t *testing.T) {
	start, goal := grid.C(1, 1), grid.C(4, 3)
	for _, k := range []heuristic.Kind{
		heuristic.Pythagorean, heuristic.Manhattan, heuristic.AxisMax,
		heuristic.ManhattanHex, heuristic.StartDelta, heuristic.Uniform,
	} {
		assert.Zero(t, k.Estimate(start, goal, goal), k.String())
	}
}

// TestEstimate_NonNegative sweeps a small area for every kind.
func TestEstimate_NonNegative(t *testing.T) {
	start, goal := grid.C(2, 7), grid.C(5, 1)
	for _, k := range heuristic.All() {
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				assert.GreaterOrEqual(t, k.Estimate(start, goal, grid.C(x, y)), 0.0)
			}
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]heuristic.Kind{
		"pythagorean":     heuristic.Pythagorean,
		"Euclidean":       heuristic.Pythagorean,
		"MANHATTAN":       heuristic.Manhattan,
		"Manhattan (Hex)": heuristic.ManhattanHex,
		"manhattan-hex":   heuristic.ManhattanHex,
		"Axial":           heuristic.AxisMax,
		"axis-max":        heuristic.AxisMax,
		"Start Delta":     heuristic.StartDelta,
		" uniform ":       heuristic.Uniform,
	}
	for in, want := range cases {
		got, err := heuristic.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := heuristic.Parse("octile")
	require.ErrorIs(t, err, heuristic.ErrUnknown)

	list, err := heuristic.ParseList([]string{"pythagorean", "start-delta"})
	require.NoError(t, err)
	assert.Equal(t, []heuristic.Kind{heuristic.Pythagorean, heuristic.StartDelta}, list)
	_, err = heuristic.ParseList([]string{"pythagorean", "bogus"})
	require.ErrorIs(t, err, heuristic.ErrUnknown)
}

func TestNamesRoundTrip(t *testing.T) {
	for _, name := range heuristic.Names() {
		k, err := heuristic.Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
		assert.True(t, k.Valid())
	}
	assert.False(t, heuristic.Kind(42).Valid())
	assert.Equal(t, "heuristic(42)", heuristic.Kind(42).String())
}

func TestAll_AnchorFirst(t *testing.T) {
	all := heuristic.All()
	require.Len(t, all, 5)
	assert.Equal(t, heuristic.Pythagorean, all[0])
	assert.True(t, all[0].Admissible())
	assert.False(t, heuristic.StartDelta.Admissible())
}

func TestPrecompute(t *testing.T) {
	start, goal := grid.C(0, 0), grid.C(2, 1)
	h := heuristic.Precompute(heuristic.Manhattan, 2, 3, start, goal)
	assert.Equal(t, []float64{3, 2, 1, 2, 1, 0}, h)

	zero := heuristic.Precompute(heuristic.Uniform, 2, 3, start, goal)
	assert.Equal(t, make([]float64, 6), zero)
}

func TestKind_JSON(t *testing.T) {
	data, err := json.Marshal([]heuristic.Kind{heuristic.AxisMax, heuristic.StartDelta})
	require.NoError(t, err)
	assert.JSONEq(t, `["axis-max","start-delta"]`, string(data))

	var ks []heuristic.Kind
	require.NoError(t, json.Unmarshal([]byte(`["Euclidean","manhattan (hex)"]`), &ks))
	assert.Equal(t, []heuristic.Kind{heuristic.Pythagorean, heuristic.ManhattanHex}, ks)

	err = json.Unmarshal([]byte(`["octile"]`), &ks)
	require.ErrorIs(t, err, heuristic.ErrUnknown)

	_, err = json.Marshal(heuristic.Kind(42))
	require.Error(t, err)
}
