package mhastar

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// ctxCheckInterval is how many pops pass between context checks.
const ctxCheckInterval = 1024

// Default runs optimal A*: weight 1 with the Pythagorean heuristic.
func Default(ctx context.Context, g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	return Search(ctx, g, start, goal, opts...)
}

// Weighted runs single-lane weighted A* with heuristic h and inflation w.
func Weighted(ctx context.Context, g *grid.Grid, start, goal grid.Coord, w float64, h heuristic.Kind, opts ...Option) (*Result, error) {
	return Search(ctx, g, start, goal, append([]Option{WithWeight(w), WithHeuristics(h)}, opts...)...)
}

// Uniform runs uniform-cost search: weight 0 with the zero heuristic.
func Uniform(ctx context.Context, g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	return Search(ctx, g, start, goal, append([]Option{WithWeight(0), WithHeuristics(heuristic.Uniform)}, opts...)...)
}

// Sequential runs multi-heuristic A* with inflation w and lane tolerance w2.
// hs[0] is the anchor; an empty hs selects heuristic.All().
func Sequential(ctx context.Context, g *grid.Grid, start, goal grid.Coord, w, w2 float64, hs []heuristic.Kind, opts ...Option) (*Result, error) {
	if len(hs) == 0 {
		hs = heuristic.All()
	}
	return Search(ctx, g, start, goal, append([]Option{WithWeight(w), WithWeight2(w2), WithHeuristics(hs...)}, opts...)...)
}

// Search computes a path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. At least one heuristic, all of them defined (ErrNoHeuristics, ErrUnknownHeuristic).
//  3. Weight finite and ≥ 0 (ErrBadWeight); Weight2 finite and ≥ 1 (ErrBadWeight2).
//  4. MaxExpansions ≥ 0 (ErrBadMaxExpansions).
//  5. start and goal inside g (ErrOutOfBounds).
//  6. start ≠ goal and neither blocked (ErrDegenerateInput).
//
// Returns ErrNoPath when the goal is unreachable, ErrExpansionLimit when the
// cap is hit, or ctx.Err() wrapped when ctx ends first.
func Search(ctx context.Context, g *grid.Grid, start, goal grid.Coord, opts ...Option) (res *Result, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Observer != nil {
		began := time.Now()
		defer func() {
			cfg.Observer.ObserveSearch(cfg.Mode(), res, err, time.Since(began))
		}()
	}

	if err = validate(g, start, goal, cfg); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("mhastar: search not started: %w", err)
	}

	r := newRunner(g, start, goal, cfg)
	cfg.Logger.Debug("mhastar: search started",
		slog.String("mode", string(cfg.Mode())),
		slog.Int("lanes", len(r.lanes)),
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Float64("weight", cfg.Weight),
		slog.Float64("weight2", cfg.Weight2),
	)

	res, err = r.run(ctx)
	if err != nil {
		cfg.Logger.Debug("mhastar: search failed",
			slog.Int("expansions", r.expansions),
			slog.Any("error", err),
		)
		return nil, err
	}

	cfg.Logger.Debug("mhastar: search finished",
		slog.Int("expansions", res.Expansions),
		slog.Float64("cost", res.Cost),
		slog.Int("lane", res.Lane),
		slog.Int("length", len(res.Path)),
	)
	return res, nil
}

func validate(g *grid.Grid, start, goal grid.Coord, cfg Options) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(cfg.Heuristics) == 0 {
		return ErrNoHeuristics
	}
	for i, k := range cfg.Heuristics {
		if !k.Valid() {
			return fmt.Errorf("%w: lane %d has %v", ErrUnknownHeuristic, i, k)
		}
	}
	if math.IsNaN(cfg.Weight) || math.IsInf(cfg.Weight, 0) || cfg.Weight < 0 {
		return fmt.Errorf("%w: got %v", ErrBadWeight, cfg.Weight)
	}
	if math.IsNaN(cfg.Weight2) || math.IsInf(cfg.Weight2, 0) || cfg.Weight2 < 1 {
		return fmt.Errorf("%w: got %v", ErrBadWeight2, cfg.Weight2)
	}
	if cfg.MaxExpansions < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxExpansions, cfg.MaxExpansions)
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrOutOfBounds, start, g.Width, g.Height)
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("%w: goal %v outside %dx%d grid", ErrOutOfBounds, goal, g.Width, g.Height)
	}
	if start == goal {
		return fmt.Errorf("%w: start equals goal %v", ErrDegenerateInput, start)
	}
	if g.At(start).Blocked() {
		return fmt.Errorf("%w: start %v is blocked", ErrDegenerateInput, start)
	}
	if g.At(goal).Blocked() {
		return fmt.Errorf("%w: goal %v is blocked", ErrDegenerateInput, goal)
	}
	return nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g          *grid.Grid
	cfg        Options
	start      grid.Coord
	goal       grid.Coord
	goalIdx    int
	lanes      []*lane
	expansions int
	pops       int
	buf        []grid.Coord
}

func newRunner(g *grid.Grid, start, goal grid.Coord, cfg Options) *runner {
	r := &runner{
		g:       g,
		cfg:     cfg,
		start:   start,
		goal:    goal,
		goalIdx: g.Index(goal),
		lanes:   make([]*lane, len(cfg.Heuristics)),
		buf:     make([]grid.Coord, 0, 8),
	}
	for i, k := range cfg.Heuristics {
		r.lanes[i] = newLane(g, k, cfg.Weight, start, goal)
	}
	return r
}

// anchorLive reports whether the anchor still has a finite key to pop.
func (r *runner) anchorLive() bool {
	return r.lanes[0].open.Len() > 0 && r.lanes[0].minKey() < inf
}

// choose returns lane k when its minimum key is within Weight2 of the
// anchor's, and the anchor otherwise.
func (r *runner) choose(k int) int {
	lk := r.lanes[k]
	if lk.open.Len() > 0 && lk.minKey() <= r.cfg.Weight2*r.lanes[0].minKey() {
		return k
	}
	return 0
}

// run is the main loop. Each round visits lanes 1..N−1; a single-lane
// search expands the anchor every round.
func (r *runner) run(ctx context.Context) (*Result, error) {
	n := len(r.lanes)
	for r.anchorLive() {
		if n == 1 {
			if res, err := r.step(ctx, 0); res != nil || err != nil {
				return res, err
			}
			continue
		}
		for k := 1; k < n; k++ {
			if !r.anchorLive() {
				break
			}
			if res, err := r.step(ctx, r.choose(k)); res != nil || err != nil {
				return res, err
			}
		}
	}
	return nil, ErrNoPath
}

// step pops the minimum entry of lane i, runs the goal check and otherwise
// expands the popped cell. A non-nil Result ends the search.
func (r *runner) step(ctx context.Context, i int) (*Result, error) {
	r.pops++
	if r.pops%ctxCheckInterval == 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mhastar: search interrupted after %d expansions: %w", r.expansions, err)
		}
	}

	l := r.lanes[i]
	top := l.pop()

	if l.settled(r.goalIdx, top.f) {
		return r.result(i), nil
	}
	if l.closed[top.idx] {
		return nil, nil
	}

	if r.cfg.MaxExpansions > 0 && r.expansions >= r.cfg.MaxExpansions {
		return nil, fmt.Errorf("%w: %d", ErrExpansionLimit, r.cfg.MaxExpansions)
	}
	r.expansions++
	r.buf = l.expand(r.g, top, r.cfg.Weight, r.buf)

	return nil, nil
}

func (r *runner) result(i int) *Result {
	l := r.lanes[i]
	f, g, h := l.scores(r.g)
	return &Result{
		Path:       reconstruct(r.g, l, r.goal),
		Cost:       l.g[r.goalIdx],
		Lane:       i,
		Heuristic:  l.kind,
		Expansions: r.expansions,
		F:          f,
		G:          g,
		H:          h,
	}
}
