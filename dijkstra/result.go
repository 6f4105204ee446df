package dijkstra

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/footpath/core"
)

// Result holds the tables of one ShortestPaths query. It is created fresh
// per query and never shared with another one.
//
// Unreachable vertices (and vertices unknown to the graph) have no distance
// entry and no predecessor; the source has distance 0 and no predecessor.
// "No predecessor" is explicit (ok == false), so every id, zero included,
// is a legitimate vertex.
type Result[V cmp.Ordered, W core.Weight] struct {
	source V
	dist   map[V]W // finite distances only
	prev   map[V]V // predecessor on the current best path
	order  []V     // settle order, non-decreasing in distance
}

// Source returns the vertex the query started from.
func (r *Result[V, W]) Source() V { return r.source }

// Distance returns the shortest distance from the source to v and true, or
// the zero value and false when v is unreachable (+∞).
func (r *Result[V, W]) Distance(v V) (W, bool) {
	d, ok := r.dist[v]

	return d, ok
}

// Cost returns the distance to v as a float64, math.Inf(1) when unreachable.
func (r *Result[V, W]) Cost(v V) float64 {
	d, ok := r.dist[v]
	if !ok {
		return math.Inf(1)
	}

	return float64(d)
}

// Reachable reports whether v has a finite distance from the source.
func (r *Result[V, W]) Reachable(v V) bool {
	_, ok := r.dist[v]

	return ok
}

// Predecessor returns the vertex preceding v on its best path. ok is false
// for the source and for unreachable vertices.
func (r *Result[V, W]) Predecessor(v V) (V, bool) {
	p, ok := r.prev[v]

	return p, ok
}

// Order returns a copy of the settle order: each reached vertex exactly
// once, in the order its distance became final.
func (r *Result[V, W]) Order() []V { return slices.Clone(r.order) }

// Distances returns a copy of the finite distance table.
func (r *Result[V, W]) Distances() map[V]W { return maps.Clone(r.dist) }

// Predecessors returns a copy of the predecessor table.
func (r *Result[V, W]) Predecessors() PredecessorMap[V] { return maps.Clone(r.prev) }

// PathTo returns the vertices of one shortest path from the source to
// target, both included. It guards the reconstruction: an unreachable target
// yields ErrUnreachable instead of a walk off the predecessor chain.
//
// Complexity: O(path length).
func (r *Result[V, W]) PathTo(target V) ([]V, error) {
	if !r.Reachable(target) {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, target, r.source)
	}

	return Reconstruct[V](r, r.source, target)
}
