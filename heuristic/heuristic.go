// Package heuristic provides the closed set of distance estimators used by
// the search engines in gridpath.
//
// Every estimator is a pure function of (start, goal, current) returning a
// value ≥ 0:
//
//   - Pythagorean:  Euclidean distance current→goal.
//   - Manhattan:    |dx| + |dy|.
//   - AxisMax:      max(|dx|, |dy|).
//   - ManhattanHex: |dx + dy| / 2, a hex-grid flavoured Manhattan variant.
//   - StartDelta:   |dist(goal,start) − dist(current,start)|; deliberately
//     inadmissible, it only diversifies a multi-heuristic search.
//   - Uniform:      0; turns A* into uniform-cost search.
//
// Only Pythagorean, AxisMax and Uniform are admissible for the eight-connected
// cost model without highways; highway moves cost 1/4 per step, so no
// non-zero distance here is admissible on maps that contain highways.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknown indicates a heuristic name that Parse does not recognise.
var ErrUnknown = errors.New("heuristic: unknown heuristic")

// Kind selects one estimator.
type Kind int

const (
	Pythagorean Kind = iota
	Manhattan
	AxisMax
	ManhattanHex
	StartDelta
	Uniform
)

// dimensions is the coordinate arity used by ManhattanHex.
const dimensions = 2

var names = [...]string{
	Pythagorean:  "pythagorean",
	Manhattan:    "manhattan",
	AxisMax:      "axis-max",
	ManhattanHex: "manhattan-hex",
	StartDelta:   "start-delta",
	Uniform:      "uniform",
}

// aliases maps alternative spellings, including the menu labels of the
// desktop viewer, to their Kind.
var aliases = map[string]Kind{
	"euclidean":       Pythagorean,
	"axial":           AxisMax,
	"chebyshev":       AxisMax,
	"manhattan (hex)": ManhattanHex,
	"start delta":     StartDelta,
	"delta":           StartDelta,
	"zero":            Uniform,
	"none":            Uniform,
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("heuristic(%d)", int(k))
	}
	return names[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(names)
}

// Admissible reports whether k never overestimates on highway-free maps.
func (k Kind) Admissible() bool {
	switch k {
	case Pythagorean, AxisMax, Uniform:
		return true
	default:
		return false
	}
}

// Estimate returns the estimated cost from current to goal.
func (k Kind) Estimate(start, goal, current grid.Coord) float64 {
	dx := float64(goal.X - current.X)
	dy := float64(goal.Y - current.Y)

	switch k {
	case Pythagorean:
		return math.Hypot(dx, dy)
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy)
	case AxisMax:
		return math.Max(math.Abs(dx), math.Abs(dy))
	case ManhattanHex:
		return math.Abs(dx+dy) / dimensions
	case StartDelta:
		total := math.Hypot(float64(goal.X-start.X), float64(goal.Y-start.Y))
		travelled := math.Hypot(float64(current.X-start.X), float64(current.Y-start.Y))
		return math.Abs(total - travelled)
	default:
		return 0
	}
}

// Parse resolves a case-insensitive name or alias to a Kind.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, canonical := range names {
		if n == canonical {
			return Kind(k), nil
		}
	}
	if k, ok := aliases[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// MarshalText encodes k as its canonical name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(k))
	}
	return []byte(names[k]), nil
}

// UnmarshalText accepts anything Parse does.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseList resolves every name in order.
func ParseList(list []string) ([]Kind, error) {
	out := make([]Kind, 0, len(list))
	for _, name := range list {
		k, err := Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// All returns the default multi-heuristic lineup. Pythagorean comes first so
// it can serve as the anchor.
func All() []Kind {
	return []Kind{Pythagorean, Manhattan, ManhattanHex, AxisMax, StartDelta}
}

// Names returns the canonical names of every kind, in declaration order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Precompute fills a row-major rows×cols table with k's estimate for every
// cell. start and goal are fixed for the table's lifetime.
// Complexity: O(rows×cols).
func Precompute(k Kind, rows, cols int, start, goal grid.Coord) []float64 {
	h := make([]float64, rows*cols)
	if k == Uniform {
		return h
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			h[y*cols+x] = k.Estimate(start, goal, grid.Coord{X: x, Y: y})
		}
	}
	return h
}
