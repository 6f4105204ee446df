// SPDX-License-Identifier: MIT
// Package core defines the central Graph type: a generic container of
// uniquely identified vertices, each owning its outgoing weighted adjacency.
//
// This file declares the Weight constraint, Graph, GraphOption, the
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexExists    - AddVertex was called with an id already present.
//	ErrVertexNotFound  - an operation referenced a non-existent vertex.
//	ErrEdgeNotFound    - the requested directed edge does not exist.
//	ErrNegativeWeight  - a negative/NaN weight on a graph built WithNonNegativeWeights.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates AddVertex was given an id that is already registered.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates the requested directed edge does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative (or NaN) weight was offered to a
	// graph constructed with WithNonNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Weight is the set of numeric kinds an edge weight may have.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	nonNegative bool
}

// WithNonNegativeWeights makes AddEdge reject negative and NaN weights with
// ErrNegativeWeight. Shortest-path results are only defined for such graphs,
// so callers feeding Dijkstra from untrusted data should enable it.
func WithNonNegativeWeights() GraphOption {
	return func(o *graphOptions) { o.nonNegative = true }
}

// adjacency is the outgoing edge set owned by one vertex.
//
// out maps destination → weight; order keeps the destinations ascending so
// Neighbors is a copy rather than a sort.
type adjacency[V cmp.Ordered, W Weight] struct {
	out   map[V]W
	order []V
}

// Graph is a directed, weighted graph over totally ordered vertex ids.
//
// Every vertex owns its outgoing adjacency (destination → weight) and at
// most one edge exists per ordered pair. Invariant: numEdges always equals
// the sum of len(out) over all vertices.
//
// Graph has no internal locking. It is meant to be built once and then
// shared read-only by any number of queries; mutation during a query is
// undefined behavior.
type Graph[V cmp.Ordered, W Weight] struct {
	opts graphOptions

	vertices map[V]*adjacency[V, W] // vertex id → outgoing adjacency
	ids      []V                    // all vertex ids, ascending
	numEdges int
}

// NewGraph creates an empty Graph with the given options applied in order.
// Complexity: O(len(opts)).
func NewGraph[V cmp.Ordered, W Weight](opts ...GraphOption) *Graph[V, W] {
	g := &Graph[V, W]{
		vertices: make(map[V]*adjacency[V, W]),
	}
	for _, opt := range opts {
		opt(&g.opts)
	}

	return g
}

// NonNegative reports whether the graph was built WithNonNegativeWeights.
func (g *Graph[V, W]) NonNegative() bool { return g.opts.nonNegative }

// NumVertices returns the number of vertices in the graph. O(1).
func (g *Graph[V, W]) NumVertices() int { return len(g.ids) }

// NumEdges returns the number of directed edges in the graph. O(1).
func (g *Graph[V, W]) NumEdges() int { return g.numEdges }
