// Package footpath is a small walking-navigation toolkit: a generic directed
// weighted graph, Dijkstra's single-source shortest paths on top of it, and
// the glue that turns a campus map into routes between buildings.
//
// What is inside?
//
//	core/      — Graph[V, W]: vertices, directed weighted edges, adjacency grid dump
//	frontier/  — binary-heap priority frontier with a pluggable tie-break
//	dijkstra/  — ShortestPaths, Result tables, path reconstruction
//	builder/   — deterministic graph fixtures (path, cycle, star, grid, complete, random)
//	geo/       — great-circle distance in miles
//	campus/    — YAML map loader, footway graph, building lookup, Navigator
//	console/   — interactive building-to-building session
//	cmd/footpath — CLI: navigate, route, dump, stats
//
// Quick ASCII example:
//
//	1 →(7) 2 →(10) 4
//	1 →(9) 3 →(2)  4
//
//	dijkstra.ShortestPaths(g, 1) settles 1, 2, 3, 4 with distances
//	0, 7, 9, 11; PathTo(4) is [1 3 4].
//
// Weights must be non-negative for the results to be meaningful. Build
// graphs with core.WithNonNegativeWeights() to have AddEdge enforce it.
//
//	go install github.com/katalvlaran/footpath/cmd/footpath@latest
package footpath
