// Package mhastar implements multi-heuristic (sequential) A* search on
// eight-connected terrain grids, together with the plain A*, weighted A* and
// uniform-cost configurations it specialises into.
//
// Overview:
//
//   - One search lane is created per configured heuristic. Each lane owns its
//     own g/h/f tables, parent links, open queue and closed set.
//   - Lane 0 is the anchor. Its heuristic should be admissible and consistent;
//     the remaining lanes may use any estimator.
//   - Each round visits lanes 1..N−1 in order. Lane k expands when its
//     minimum key is within weight2 times the anchor's minimum key; otherwise
//     the anchor expands in its place. With a single lane the anchor always
//     expands.
//   - A lane terminates the search as soon as its g(goal) is finite and no
//     larger than the key it just popped.
//
// Configurations:
//
//	Default     weight 1, Pythagorean, one lane            (optimal A*)
//	Weighted    weight w, caller's heuristic, one lane     (≤ w × optimal)
//	Uniform     weight 0, Uniform heuristic, one lane      (Dijkstra)
//	Sequential  weight w, weight2 w2, N lanes              (≤ w × w2 × optimal)
//
// All four call Search with functional options (WithWeight, WithWeight2,
// WithHeuristics, WithLogger, WithObserver, WithMaxExpansions).
//
// Queue order:
//
//   - Ascending f = g + weight·h, ties broken by coordinate (x, then y).
//   - A cell already in a lane's queue is re-keyed in place when its g
//     improves, so every queued key matches the lane's f table.
//   - A cell is expanded at most once per lane and closed cells are never
//     relaxed again.
//
// Complexity (per lane, V = W×H cells):
//
//   - Time:  O(V log V) for queue work plus O(V) heuristic precomputation.
//   - Space: O(V) for the score tables, parents and queue.
//
// Errors:
//
//   - ErrInvalidConfiguration and its refinements (ErrNilGrid,
//     ErrNoHeuristics, ErrUnknownHeuristic, ErrBadWeight, ErrBadWeight2,
//     ErrBadMaxExpansions, ErrOutOfBounds, ErrDegenerateInput) are returned
//     before any lane is allocated.
//   - ErrNoPath: the anchor lane ran out of finite keys; the goal is
//     unreachable.
//   - ErrExpansionLimit: WithMaxExpansions was exceeded.
//   - Context cancellation is checked every 1024 pops and returned wrapped.
//
// Thread safety:
//
//   - A call never shares lane state with another call, so concurrent
//     searches over the same *grid.Grid are safe.
package mhastar
