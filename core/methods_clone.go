// File: methods_clone.go
// Role: Deep copy of a graph instance.
package core

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the Graph: options, vertices, edges and
// ordering indexes. Mutating the clone never affects the receiver.
//
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := &Graph[V, W]{
		opts:     g.opts,
		vertices: make(map[V]*adjacency[V, W], len(g.vertices)),
		ids:      slices.Clone(g.ids),
		numEdges: g.numEdges,
	}
	for id, adj := range g.vertices {
		clone.vertices[id] = &adjacency[V, W]{
			out:   maps.Clone(adj.out),
			order: slices.Clone(adj.order),
		}
	}

	return clone
}
