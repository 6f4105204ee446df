// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight.
//
// Contract:
//   - At most one edge per ordered pair (from,to). Re-adding overwrites the
//     weight and leaves NumEdges unchanged.
//   - Self-loops are structurally accepted.
//   - Any weight is accepted unless the graph was built WithNonNegativeWeights.
//
// AI-HINT (file):
//   - AddEdge never auto-creates endpoints; add vertices first.
package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts or overwrites the directed edge from→to with weight w.
//
// Steps:
//  1. Validate the weight when the graph enforces non-negative weights.
//  2. Resolve both endpoints (ErrVertexNotFound if either is missing).
//  3. If the pair is new, insert the destination into the sorted order and
//     increment the edge count; otherwise just overwrite the weight.
//
// The call either fully succeeds or leaves the graph untouched.
//
// Complexity: O(1) expected for an overwrite, O(out-degree) for a new pair.
func (g *Graph[V, W]) AddEdge(from, to V, w W) error {
	if g.opts.nonNegative && (w < 0 || w != w) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}

	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: from=%v", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return fmt.Errorf("%w: to=%v", ErrVertexNotFound, to)
	}

	if _, exists := src.out[to]; !exists {
		pos, _ := slices.BinarySearch(src.order, to)
		src.order = slices.Insert(src.order, pos, to)
		g.numEdges++
	}
	src.out[to] = w

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	src, ok := g.vertices[from]
	if !ok {
		return false
	}
	_, ok = src.out[to]

	return ok
}

// Weight returns the weight stored on the directed edge from→to.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent.
//   - ErrEdgeNotFound if both exist but no edge joins them in this direction.
//
// Complexity: O(1).
func (g *Graph[V, W]) Weight(from, to V) (W, error) {
	var zero W
	src, ok := g.vertices[from]
	if !ok {
		return zero, fmt.Errorf("%w: from=%v", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return zero, fmt.Errorf("%w: to=%v", ErrVertexNotFound, to)
	}
	w, ok := src.out[to]
	if !ok {
		return zero, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return w, nil
}
