// Package grid models the 2-D terrain that the search engines walk over.
//
// What:
//
//   - Coord is an (X, Y) cell address; X indexes the column, Y the row.
//   - Cell is one of five terrain states: Unblocked, Blocked, HardToTraverse,
//     HighwayUnblocked and HighwayHard.
//   - Grid is an immutable rows×cols snapshot of cells, addressed row-major
//     as cells[y][x], with eight-directional adjacency.
//   - EdgeCost prices a move between two adjacent cells.
//   - ConnectedComponents / Connected label the regions reachable through
//     unblocked cells.
//   - Decode reads the plain-text map layout (start, goal, hard-region
//     centres, then one row of cell codes per line).
//
// Cell codes:
//
//	0 blocked       1 unblocked       2 hard to traverse
//	a highway       b highway, hard to traverse
//
// Edge cost:
//
//   - +Inf if either endpoint is blocked.
//   - Each endpoint contributes a factor of 1, or √2 on a diagonal move.
//   - A non-diagonal move between two highway cells divides both factors by 4.
//   - A hard-to-traverse endpoint doubles its own factor.
//   - The cost is the mean of the two factors, so it is symmetric.
//
// Complexity:
//
//   - New / ParseRows:    O(W×H) time and memory (deep copy).
//   - EdgeCost, At:       O(1).
//   - ConnectedComponents: O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a cell code outside {0,1,2,a,b}.
//   - ErrMalformedMap: a map file whose header or endpoints cannot be read.
//
// A Grid is never mutated after construction and may be shared by any number
// of concurrent searches.
package grid
