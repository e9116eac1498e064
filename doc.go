// Package gridpath finds paths across weighted terrain grids with
// multi-heuristic A*.
//
// 🚀 What is gridpath?
//
//	A small routing toolkit for eight-connected maps where every cell is
//	blocked, regular, hard to traverse, or part of a highway:
//		• Terrain model: cell codes, map files, edge costs, components
//		• Heuristics: pythagorean, manhattan, axis-max, manhattan-hex,
//		  start-delta and uniform
//		• Search: optimal, weighted, uniform-cost and sequential
//		  multi-heuristic A* with a bounded-suboptimality anchor
//		• Reference: Dijkstra cost fields for verification
//		• Surfaces: GeoJSON export, HCL search profiles, an HTTP API with
//		  Prometheus metrics, and the gridpath CLI
//
// ✨ Guarantees
//
//   - Deterministic – equal f-scores are broken by coordinate
//   - Bounded – with a consistent anchor, sequential mode returns a path
//     no worse than weight·weight2 times the optimum
//   - Cancellable – every search honours its context.Context
//
// Packages:
//
//	grid/         Coord, Cell, Grid, map decoding, EdgeCost, components
//	heuristic/    the closed set of distance estimators
//	mhastar/      the search engine (Default, Weighted, Uniform, Sequential)
//	dijkstra/     exact cost fields and shortest paths
//	config/       HCL search profiles
//	pathexport/   GeoJSON rendering of results
//	metrics/      Prometheus collectors for searches
//	server/       HTTP JSON API
//	cmd/gridpath/ command-line interface
//
// Quick example:
//
//	g := grid.MustParseRows(
//		"11011",
//		"11111",
//	)
//	res, err := mhastar.Sequential(ctx, g, grid.C(0, 0), grid.C(4, 0),
//		mhastar.DefaultSequentialWeight, mhastar.DefaultSequentialWeight2, nil)
//
//	go get github.com/katalvlaran/gridpath
package gridpath
