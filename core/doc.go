// Package core provides a generic, in-memory directed weighted graph with a
// deliberately small API surface.
//
// The Graph G = (V,E) is a two-level associative structure:
//
//	vertices[from].out[to] = weight
//
// Each vertex owns its outgoing adjacency, so "the edges of G" are simply the
// union of every vertex's out-map. There is at most one edge per ordered pair;
// re-adding a pair overwrites its weight without changing NumEdges.
//
// Why use core.Graph?
//
//   - Generic ids: any cmp.Ordered type (int64 map nodes, strings, ...).
//   - Generic weights: any integer or float kind via the Weight constraint.
//   - Deterministic iteration: Vertices(), Neighbors(), OutEdges() and Dump()
//     all follow the ids' natural ascending order.
//   - Explicit failure: AddVertex/AddEdge/Weight report absence through
//     sentinel errors, never panics.
//
// Configuration Options (GraphOption):
//
//	– WithNonNegativeWeights()
//	    AddEdge rejects negative and NaN weights with ErrNegativeWeight.
//	    Without it every weight is stored as given; shortest-path results on
//	    graphs with negative weights are silently wrong.
//
// Lifecycle and concurrency:
//
//	Build the graph once (AddVertex, AddEdge), then share it read-only.
//	There is no internal locking and no removal API. Concurrent reads are safe;
//	any mutation concurrent with a read is a data race.
//
// Complexity summary:
//
//	AddVertex        O(log V) search + O(V) index shift
//	AddEdge          O(1) overwrite, O(out-degree) new pair
//	HasVertex/HasEdge/Weight  O(1)
//	Neighbors/OutEdges        O(out-degree)
//	Vertices         O(V)
//	Dump             O(V²)
//
// Dump renders the sparse structure as a dense grid for debugging; see its
// doc comment for the exact format.
package core
