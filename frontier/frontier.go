// SPDX-License-Identifier: MIT
//
// Package frontier implements the min-ordered working set of
// (vertex, tentative distance) candidates consumed by the shortest-path engine.
//
// The frontier never deduplicates: pushing a better distance for a vertex
// leaves the older entry in place. Callers discard stale entries on pop
// ("lazy decrease-key"), which keeps the structure a plain binary heap.
//
// Ordering is pluggable through Comparator; ByDistanceThenVertex is the
// default and gives a reproducible pop order for equal distances.
package frontier

import (
	"cmp"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/footpath/core"
)

// Entry is one candidate in the frontier.
//
// Inf marks a +infinity priority; Dist is meaningless when Inf is set.
type Entry[V cmp.Ordered, W core.Weight] struct {
	Vertex V
	Dist   W
	Inf    bool
}

// Comparator orders two entries: negative if a pops before b, positive if
// after, zero if equivalent.
type Comparator[V cmp.Ordered, W core.Weight] func(a, b Entry[V, W]) int

// compareDist orders finite distances ascending with every infinite entry last.
func compareDist[V cmp.Ordered, W core.Weight](a, b Entry[V, W]) int {
	switch {
	case a.Inf && b.Inf:
		return 0
	case a.Inf:
		return 1
	case b.Inf:
		return -1
	}

	return cmp.Compare(a.Dist, b.Dist)
}

// ByDistanceThenVertex orders by distance ascending (infinite last), then by
// vertex id ascending.
func ByDistanceThenVertex[V cmp.Ordered, W core.Weight](a, b Entry[V, W]) int {
	if c := compareDist(a, b); c != 0 {
		return c
	}

	return cmp.Compare(a.Vertex, b.Vertex)
}

// ByDistanceThenVertexDesc orders by distance ascending (infinite last), then
// by vertex id descending.
func ByDistanceThenVertexDesc[V cmp.Ordered, W core.Weight](a, b Entry[V, W]) int {
	if c := compareDist(a, b); c != 0 {
		return c
	}

	return cmp.Compare(b.Vertex, a.Vertex)
}

// Frontier is a binary min-heap of entries under a Comparator.
// It is not safe for concurrent use; each query owns its own Frontier.
type Frontier[V cmp.Ordered, W core.Weight] struct {
	heap *binaryheap.Heap
}

// New returns an empty frontier ordered by c. A nil c selects
// ByDistanceThenVertex.
func New[V cmp.Ordered, W core.Weight](c Comparator[V, W]) *Frontier[V, W] {
	if c == nil {
		c = ByDistanceThenVertex[V, W]
	}

	return &Frontier[V, W]{
		heap: binaryheap.NewWith(func(a, b interface{}) int {
			return c(a.(Entry[V, W]), b.(Entry[V, W]))
		}),
	}
}

// Push adds e. Complexity: O(log N).
func (f *Frontier[V, W]) Push(e Entry[V, W]) { f.heap.Push(e) }

// PushInf adds v with a +infinity priority.
func (f *Frontier[V, W]) PushInf(v V) { f.heap.Push(Entry[V, W]{Vertex: v, Inf: true}) }

// Pop removes and returns the minimum entry; ok is false on an empty frontier.
// Complexity: O(log N).
func (f *Frontier[V, W]) Pop() (e Entry[V, W], ok bool) {
	v, ok := f.heap.Pop()
	if !ok {
		return e, false
	}

	return v.(Entry[V, W]), true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier[V, W]) Peek() (e Entry[V, W], ok bool) {
	v, ok := f.heap.Peek()
	if !ok {
		return e, false
	}

	return v.(Entry[V, W]), true
}

// Len returns the number of entries, stale ones included.
func (f *Frontier[V, W]) Len() int { return f.heap.Size() }

// Empty reports whether the frontier holds no entries.
func (f *Frontier[V, W]) Empty() bool { return f.heap.Empty() }
