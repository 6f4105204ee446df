// Package dijkstra provides Dijkstra's shortest-path algorithm on core.Graph
// together with path reconstruction from its predecessor table.
//
// Overview:
//
//   - ShortestPaths computes, from one source, the minimal total weight to every
//     vertex, a predecessor usable to rebuild one minimal path, and the order in
//     which vertices were settled.
//   - It relies on frontier.Frontier (a binary min-heap) with lazy invalidation:
//     no decrease-key, stale entries are discarded on pop.
//   - PathTo / Reconstruct turn the predecessor table into a forward path and
//     report ErrUnreachable rather than walking off the chain.
//
// Determinism:
//
//   - The default frontier ordering is (distance asc, vertex id asc), so the
//     settle order and every predecessor are reproducible run to run.
//   - WithComparator swaps the tie-break policy without touching the engine.
//
// Degenerate inputs:
//
//   - Source not in the graph: every vertex unreachable, empty settle order, no error.
//   - Vertex with no incoming path: Distance(v) reports false, Cost(v) is +Inf.
//   - +Inf or NaN float weights: the edge is skipped, as if absent.
//   - Self-loops never improve a vertex's own distance under non-negative weights.
//
// Negative weights:
//
//   - They are NOT detected. The settle invariant (a popped vertex is final)
//     only holds for non-negative weights; with negative edges the returned
//     distances and paths are silently wrong. Build the graph with
//     core.WithNonNegativeWeights() to reject such edges at insertion time.
//
// API reference:
//
//	func ShortestPaths[V cmp.Ordered, W core.Weight](
//	    g *core.Graph[V, W],
//	    source V,
//	    opts ...Option,
//	) (*Result[V, W], error)
//
//	func Reconstruct[V comparable](prev Predecessors[V], source, target V) ([]V, error)
//
// Thread safety:
//
//   - Each query owns its tables and frontier; concurrent queries on one graph
//     are safe as long as nobody mutates the graph meanwhile.
package dijkstra
