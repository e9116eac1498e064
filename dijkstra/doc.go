// Package dijkstra computes exact cost-to-reach fields over a terrain grid
// with Dijkstra's algorithm, using the same edge cost model as the
// heuristic searches in gridpath.
//
// Overview:
//
//   - Dijkstra expands cells in order of increasing distance from a single
//     source and returns the distance of every cell (+Inf if unreachable).
//   - It is independent of the mhastar engine: no heuristics, no lanes and a
//     lazy decrease-key heap. That makes it a reference oracle for checking
//     the cost bounds of A*, weighted A* and multi-heuristic search.
//   - ShortestPath wraps Dijkstra for a single source/target pair.
//
// Key features:
//
//   - Functional options: Source (required), WithReturnPath, WithMaxDistance.
//   - ReturnPath: if enabled, returns a row-major predecessor table so any
//     path can be rebuilt.
//   - MaxDistance: stops exploring beyond a distance, saving work on large maps.
//
// Performance and complexity (V = W×H cells, E ≤ 8V moves):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst case in the heap under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       Source was not given.
//   - ErrNilGrid:        g is nil.
//   - ErrSourceOutside:  Source lies outside the grid.
//   - ErrNoPath:         ShortestPath target is unreachable.
//   - ErrBadMaxDistance: via panic, for a negative or NaN MaxDistance.
//
// Thread safety:
//
//   - Grids are immutable, so concurrent calls on the same grid are safe.
package dijkstra
