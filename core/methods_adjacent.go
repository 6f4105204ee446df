// File: methods_adjacent.go
// Role: Adjacency queries.
//
// Determinism:
//   - Neighbors() and OutEdges() emit destinations in ascending order.
package core

import (
	"iter"
	"slices"
)

// Neighbors returns the vertices reachable from v along exactly one edge,
// in ascending order. An unknown v yields an empty (nil) slice, not an error.
//
// Complexity: O(out-degree(v)).
func (g *Graph[V, W]) Neighbors(v V) []V {
	src, ok := g.vertices[v]
	if !ok {
		return nil
	}

	return slices.Clone(src.order)
}

// OutDegree returns the number of outgoing edges of v (0 for an unknown v).
func (g *Graph[V, W]) OutDegree(v V) int {
	src, ok := g.vertices[v]
	if !ok {
		return 0
	}

	return len(src.order)
}

// OutEdges returns an iterator over the outgoing edges of v as
// (destination, weight) pairs in ascending destination order. It is the
// allocation-free counterpart of Neighbors+Weight used by the shortest-path
// engine. An unknown v yields nothing.
//
// Complexity: O(out-degree(v)) for a full iteration.
func (g *Graph[V, W]) OutEdges(v V) iter.Seq2[V, W] {
	return func(yield func(V, W) bool) {
		src, ok := g.vertices[v]
		if !ok {
			return
		}
		for _, to := range src.order {
			if !yield(to, src.out[to]) {
				return
			}
		}
	}
}
