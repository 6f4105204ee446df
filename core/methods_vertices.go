// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns ids in ascending natural order.
//
// AI-Hints (file):
//   - Vertices() is a stable enumeration surface; rely on it for reproducible outputs.
//   - There is no RemoveVertex: graphs only grow.
package core

import "slices"

// AddVertex inserts v with an empty outgoing adjacency.
//
// Implementation:
//   - Stage 1: Reject a duplicate id (ErrVertexExists); the graph is untouched.
//   - Stage 2: Register the adjacency bucket and insert v into the sorted id index.
//
// Returns:
//   - error: nil on success; ErrVertexExists if v is already present.
//
// Complexity:
//   - Time O(log V) search + O(V) shift of the id index, Space O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) error {
	pos, found := slices.BinarySearch(g.ids, v)
	if found {
		return ErrVertexExists
	}

	g.vertices[v] = &adjacency[V, W]{out: make(map[V]W)}
	g.ids = slices.Insert(g.ids, pos, v)

	return nil
}

// HasVertex reports whether v is a vertex of the graph. O(1).
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.vertices[v]

	return ok
}

// Vertices returns a snapshot of all vertex ids in ascending order.
// The returned slice is owned by the caller.
//
// Complexity: O(V) time and space.
func (g *Graph[V, W]) Vertices() []V {
	return slices.Clone(g.ids)
}
