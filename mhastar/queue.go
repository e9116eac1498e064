package mhastar

import "github.com/katalvlaran/gridpath/grid"

// queueItem is one open-list entry: a cell with its f-score.
type queueItem struct {
	f   float64
	c   grid.Coord
	idx int // row-major cell index
}

// openQueue is a min-heap of queueItems ordered by f ascending, ties broken
// by coordinate (x, then y). pos[idx] is the heap slot of cell idx, or -1
// when the cell is not queued, which makes membership an O(1) lookup and
// lets an improved cell be re-keyed in place with heap.Fix.
type openQueue struct {
	items []queueItem
	pos   []int
}

func newOpenQueue(cells int) *openQueue {
	pos := make([]int, cells)
	for i := range pos {
		pos[i] = -1
	}
	return &openQueue{pos: pos}
}

// Len returns the number of items in the heap.
func (q *openQueue) Len() int { return len(q.items) }

// Less defines the ordering: smaller f first, then smaller coordinate.
func (q *openQueue) Less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.c.Less(b.c)
}

// Swap swaps two elements and keeps pos in sync.
func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i].idx] = i
	q.pos[q.items[j].idx] = j
}

// Push is called by heap.Push; x must be a queueItem.
func (q *openQueue) Push(x any) {
	it := x.(queueItem)
	q.pos[it.idx] = len(q.items)
	q.items = append(q.items, it)
}

// Pop is called by heap.Pop and removes the last element.
func (q *openQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	q.pos[it.idx] = -1
	return it
}

// contains reports whether cell idx currently has an entry.
func (q *openQueue) contains(idx int) bool { return q.pos[idx] >= 0 }

// minKey returns the smallest f-score, or +Inf when empty.
func (q *openQueue) minKey() float64 {
	if len(q.items) == 0 {
		return inf
	}
	return q.items[0].f
}
