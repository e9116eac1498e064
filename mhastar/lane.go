package mhastar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

var inf = math.Inf(1)

// lane is the bookkeeping of one heuristic: score tables, parent links, the
// open queue and the closed set. All tables are row-major over the grid.
type lane struct {
	kind   heuristic.Kind
	g      []float64
	h      []float64
	f      []float64
	parent []int // -1 for none
	closed []bool
	open   *openQueue
}

// newLane allocates a lane, precomputes h for every cell and queues start
// with g = 0, f = weight·h(start).
func newLane(gr *grid.Grid, kind heuristic.Kind, weight float64, start, goal grid.Coord) *lane {
	n := gr.Size()
	l := &lane{
		kind:   kind,
		g:      make([]float64, n),
		h:      heuristic.Precompute(kind, gr.Height, gr.Width, start, goal),
		f:      make([]float64, n),
		parent: make([]int, n),
		closed: make([]bool, n),
		open:   newOpenQueue(n),
	}
	for i := 0; i < n; i++ {
		l.g[i] = inf
		l.f[i] = inf
		l.parent[i] = -1
	}

	si := gr.Index(start)
	l.g[si] = 0
	l.f[si] = weight * l.h[si]
	heap.Push(l.open, queueItem{f: l.f[si], c: start, idx: si})

	return l
}

// minKey returns the lane's smallest queued f-score, +Inf when empty.
func (l *lane) minKey() float64 { return l.open.minKey() }

// pop removes and returns the minimum entry. The caller checks Len first.
func (l *lane) pop() queueItem {
	return heap.Pop(l.open).(queueItem)
}

// settled reports whether the goal is provably settled against key:
// g(goal) is finite and ≤ key.
func (l *lane) settled(goalIdx int, key float64) bool {
	gg := l.g[goalIdx]
	return gg < inf && gg <= key
}

// expand closes s and relaxes each in-bounds neighbour. buf is scratch space
// for the neighbour list and is returned for reuse.
func (l *lane) expand(gr *grid.Grid, s queueItem, weight float64, buf []grid.Coord) []grid.Coord {
	l.closed[s.idx] = true
	gs := l.g[s.idx]

	buf = gr.Neighbors(s.c, buf[:0])
	for _, n := range buf {
		ni := gr.Index(n)
		if l.closed[ni] {
			continue
		}
		cand := gs + grid.EdgeCost(gr, s.c, n)
		if !(cand < l.g[ni]) {
			continue
		}
		l.parent[ni] = s.idx
		l.g[ni] = cand
		l.f[ni] = cand + weight*l.h[ni]
		l.push(ni, n)
	}
	return buf
}

// push queues cell idx at its current f-score, or re-keys the existing
// entry when the cell is already queued.
func (l *lane) push(idx int, c grid.Coord) {
	if l.open.contains(idx) {
		slot := l.open.pos[idx]
		l.open.items[slot].f = l.f[idx]
		heap.Fix(l.open, slot)
		return
	}
	heap.Push(l.open, queueItem{f: l.f[idx], c: c, idx: idx})
}

// scores wraps the lane tables as ScoreMaps.
func (l *lane) scores(gr *grid.Grid) (f, g, h ScoreMap) {
	wrap := func(v []float64) ScoreMap {
		return ScoreMap{width: gr.Width, height: gr.Height, values: v}
	}
	return wrap(l.f), wrap(l.g), wrap(l.h)
}
