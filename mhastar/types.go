package mhastar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors. Every configuration error satisfies
// errors.Is(err, ErrInvalidConfiguration).
var (
	// ErrInvalidConfiguration is the root of all errors raised before the
	// search starts.
	ErrInvalidConfiguration = errors.New("mhastar: invalid configuration")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidConfiguration)

	// ErrNoHeuristics indicates an empty heuristic list.
	ErrNoHeuristics = fmt.Errorf("%w: at least one heuristic is required", ErrInvalidConfiguration)

	// ErrUnknownHeuristic indicates a heuristic.Kind outside the defined set.
	ErrUnknownHeuristic = fmt.Errorf("%w: unknown heuristic", ErrInvalidConfiguration)

	// ErrBadWeight indicates a negative or non-finite inflation weight.
	ErrBadWeight = fmt.Errorf("%w: weight must be finite and ≥ 0", ErrInvalidConfiguration)

	// ErrBadWeight2 indicates a weight2 below 1 or non-finite.
	ErrBadWeight2 = fmt.Errorf("%w: weight2 must be finite and ≥ 1", ErrInvalidConfiguration)

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = fmt.Errorf("%w: max expansions must be ≥ 0", ErrInvalidConfiguration)

	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrInvalidConfiguration)

	// ErrDegenerateInput indicates start == goal, or a blocked start or goal.
	ErrDegenerateInput = fmt.Errorf("%w: degenerate endpoints", ErrInvalidConfiguration)

	// ErrNoPath indicates that no finite-cost path connects start and goal.
	ErrNoPath = errors.New("mhastar: no path between start and goal")

	// ErrExpansionLimit indicates the search gave up after MaxExpansions.
	ErrExpansionLimit = errors.New("mhastar: expansion limit reached")
)

const (
	// DefaultSequentialWeight is the inflation weight Sequential callers
	// conventionally start from.
	DefaultSequentialWeight = 1.25
	// DefaultSequentialWeight2 is the conventional inadmissible-lane tolerance.
	DefaultSequentialWeight2 = 2.0
)

// Mode names the configuration a search runs in.
type Mode string

const (
	ModeAStar      Mode = "astar"
	ModeWeighted   Mode = "weighted"
	ModeUniform    Mode = "uniform"
	ModeSequential Mode = "sequential"
)

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAStar, ModeWeighted, ModeUniform, ModeSequential:
		return m, nil
	case "default", "a*":
		return ModeAStar, nil
	case "uniform-cost", "dijkstra":
		return ModeUniform, nil
	case "multi", "mha":
		return ModeSequential, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, s)
}

// Observer receives one call per Search, after it returns.
// res is nil whenever err is non-nil.
type Observer interface {
	ObserveSearch(mode Mode, res *Result, err error, elapsed time.Duration)
}

// Options configures Search.
//
// Weight         – inflation applied to h in f = g + Weight·h. Must be ≥ 0.
// Weight2        – tolerance of non-anchor lanes relative to the anchor. ≥ 1.
// Heuristics     – one lane per entry; index 0 is the anchor.
// MaxExpansions  – 0 means unlimited.
// Logger         – receives Debug records at start and finish.
// Observer       – optional metrics hook.
type Options struct {
	Weight        float64
	Weight2       float64
	Heuristics    []heuristic.Kind
	MaxExpansions int
	Logger        *slog.Logger
	Observer      Observer
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the optimal A* configuration:
// Weight 1, Weight2 1, a single Pythagorean lane, no expansion cap and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Weight:     1,
		Weight2:    1,
		Heuristics: []heuristic.Kind{heuristic.Pythagorean},
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithWeight sets the inflation weight.
func WithWeight(w float64) Option {
	return func(o *Options) { o.Weight = w }
}

// WithWeight2 sets the non-anchor lane tolerance.
func WithWeight2(w2 float64) Option {
	return func(o *Options) { o.Weight2 = w2 }
}

// WithHeuristics sets the lanes. The first entry is the anchor.
func WithHeuristics(hs ...heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristics = append([]heuristic.Kind(nil), hs...)
	}
}

// WithMaxExpansions caps the number of expansions across all lanes.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithLogger routes diagnostics to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs a hook that is told about every search outcome.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// Mode infers the configuration name from the options.
func (o Options) Mode() Mode {
	switch {
	case len(o.Heuristics) > 1:
		return ModeSequential
	case len(o.Heuristics) == 1 && o.Heuristics[0] == heuristic.Uniform && o.Weight == 0:
		return ModeUniform
	case o.Weight == 1:
		return ModeAStar
	default:
		return ModeWeighted
	}
}

// Result is a successful search outcome.
//
// Path        – start → goal inclusive.
// Cost        – g(goal) in the lane that finished; equals grid.PathCost(Path).
// Lane        – index of the finishing lane (0 = anchor).
// Heuristic   – that lane's heuristic.
// Expansions  – number of cells expanded across all lanes.
// F, G, H     – the finishing lane's score tables, for diagnostics.
type Result struct {
	Path       []grid.Coord
	Cost       float64
	Lane       int
	Heuristic  heuristic.Kind
	Expansions int
	F, G, H    ScoreMap
}

// ScoreMap is a read-only Width×Height table of per-cell scores.
// Cells never reached hold +Inf in F and G.
type ScoreMap struct {
	width, height int
	values        []float64
}

// Width returns the number of columns.
func (m ScoreMap) Width() int { return m.width }

// Height returns the number of rows.
func (m ScoreMap) Height() int { return m.height }

// At returns the score of c, or +Inf outside the table.
func (m ScoreMap) At(c grid.Coord) float64 {
	if c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return inf
	}
	return m.values[c.Y*m.width+c.X]
}

// Rows copies the table into rows indexed [y][x].
func (m ScoreMap) Rows() [][]float64 {
	out := make([][]float64, m.height)
	for y := range out {
		out[y] = append([]float64(nil), m.values[y*m.width:(y+1)*m.width]...)
	}
	return out
}
