// Package dijkstra implements Dijkstra's shortest-path algorithm on terrain grids.
//
// Notes on implementation choices:
//
//   - Distances and predecessors are row-major slices indexed by grid.Index.
//   - Blocked cells are never entered: grid.EdgeCost returns +Inf for them.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra computes shortest distances from Options.Source to every cell of g.
//
// Returns:
//
//   - dist: row-major distances (+Inf if unreachable or beyond MaxDistance).
//   - prev: row-major predecessor indices if ReturnPath=true (nil otherwise);
//     -1 marks the source and unreachable cells.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must lie inside g (ErrSourceOutside).
//
// A blocked source yields a field where only the source itself is reachable.
func Dijkstra(g *grid.Grid, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutside, cfg.Source, g.Width, g.Height)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, g.Size()),
		prev:    make([]int, g.Size()),
		visited: make([]bool, g.Size()),
		pq:      make(nodePQ, 0, g.Size()),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// ShortestPath returns one cheapest path from → to (inclusive) and its cost.
func ShortestPath(g *grid.Grid, from, to grid.Coord) ([]grid.Coord, float64, error) {
	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	if !g.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: target %v outside grid", ErrNoPath, to)
	}
	ti := g.Index(to)
	if math.IsInf(dist[ti], 1) {
		return nil, 0, fmt.Errorf("%w: %v → %v", ErrNoPath, from, to)
	}

	var path []grid.Coord
	for at := ti; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[ti], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid // read-only
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf, every predecessor to -1 and pushes the source.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its
// neighbours, until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	var buf []grid.Coord
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		buf = r.relax(item.idx, buf)
	}

	// Cells discovered but beyond the cap were never settled.
	if !math.IsInf(r.options.MaxDistance, 1) {
		for i, d := range r.dist {
			if d > r.options.MaxDistance {
				r.dist[i] = math.Inf(1)
				r.prev[i] = -1
			}
		}
	}
}

// relax attempts to improve every neighbour of cell u.
func (r *runner) relax(u int, buf []grid.Coord) []grid.Coord {
	uc := r.g.Coordinate(u)
	buf = r.g.Neighbors(uc, buf[:0])
	for _, vc := range buf {
		v := r.g.Index(vc)
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + grid.EdgeCost(r.g, uc, vc)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates when distances are equal.
		if !(newDist < r.dist[v]) {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
	return buf
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending and then by
// cell index so that equal distances pop deterministically.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
