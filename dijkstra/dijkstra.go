// File: dijkstra.go
// Role: The shortest-path engine (runner, main loop, relaxation).
//
// Notes on implementation choices:
//
//   - Every vertex enters the frontier with +∞ priority, then the source with 0.
//   - We use a “lazy” decrease-key strategy: better distances are pushed as new
//     entries and stale ones are skipped when popped.
//   - The first +∞ entry popped ends the search: everything left is unreachable.
//   - Edge weights are NOT validated. Negative weights produce silently wrong
//     distances; build graphs WithNonNegativeWeights to reject them up front.
//   - +∞ and NaN float weights are skipped during relaxation, so such an edge
//     behaves as if it were absent.

package dijkstra

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/footpath/core"
	"github.com/katalvlaran/footpath/frontier"
)

// ShortestPaths computes, for every vertex of g, the minimal total weight of a
// directed path from source, a predecessor on one such path, and the order in
// which vertices were settled.
//
// Returns:
//
//   - res: per-query tables; see Result. A source that is not a vertex of g
//     yields an all-unreachable result with an empty settle order.
//   - err: ErrNilGraph or ErrComparatorType; nil otherwise.
//
// Preconditions (not validated):
//
//   - All edge weights are non-negative. Violations yield wrong distances
//     without any signal.
//   - g is not mutated while the query runs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths[V cmp.Ordered, W core.Weight](g *core.Graph[V, W], source V, opts ...Option) (*Result[V, W], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Resolve the frontier comparator for these type parameters.
	var less frontier.Comparator[V, W]
	if cfg.comparator != nil {
		c, ok := cfg.comparator.(frontier.Comparator[V, W])
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrComparatorType, cfg.comparator)
		}
		less = c
	}

	n := g.NumVertices()
	r := &runner[V, W]{
		g:       g,
		options: cfg,
		res: &Result[V, W]{
			source: source,
			dist:   make(map[V]W, n),
			prev:   make(map[V]V, n),
			order:  make([]V, 0, n),
		},
		settled: make(map[V]bool, n),
		pq:      frontier.New(less),
	}

	// 4) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered, W core.Weight] struct {
	g       *core.Graph[V, W]        // The input graph; read-only within the query.
	options Options                  // Configuration options.
	res     *Result[V, W]            // Tables handed back to the caller.
	settled map[V]bool               // Tracks if a vertex's distance is finalized.
	pq      *frontier.Frontier[V, W] // Lazy min-frontier of (vertex, distance).
}

// init pushes every vertex with +∞ priority, then the source with distance 0.
// A source outside the graph is never pushed, so nothing gets settled.
func (r *runner[V, W]) init() {
	for _, v := range r.g.Vertices() {
		r.pq.PushInf(v)
	}

	src := r.res.source
	if !r.g.HasVertex(src) {
		if r.options.Logger != nil {
			r.options.Logger.Debug("dijkstra: source not in graph", "source", src)
		}
		return
	}

	var zero W
	r.res.dist[src] = zero
	r.pq.Push(frontier.Entry[V, W]{Vertex: src, Dist: zero})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// vertex with the minimum tentative distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The popped entry has +∞ priority (every remaining entry is unreachable).
func (r *runner[V, W]) process() {
	log := r.options.Logger
	for {
		// 1) Pop the smallest entry.
		item, ok := r.pq.Pop()
		if !ok {
			return
		}
		u := item.Vertex

		// 2) Skip stale entries for vertices that are already final.
		if r.settled[u] {
			continue
		}

		// 3) An unreachable minimum means nothing else is reachable either.
		if item.Inf {
			if log != nil {
				log.Debug("dijkstra: frontier exhausted", "pending", r.pq.Len()+1)
			}
			return
		}

		// 4) Finalize u.
		r.settled[u] = true
		r.res.order = append(r.res.order, u)
		if log != nil {
			log.Debug("dijkstra: settled", "vertex", u, "dist", item.Dist)
		}

		// 5) Relax all outgoing edges from u.
		r.relax(u)
	}
}

// relax examines each edge outgoing from u and improves neighbor distances.
// Assumes res.dist[u] is final.
func (r *runner[V, W]) relax(u V) {
	du := r.res.dist[u]
	for v, w := range r.g.OutEdges(u) {
		candidate := du + w

		// +∞ and NaN candidates (float weights) never improve anything.
		if c := float64(candidate); math.IsNaN(c) || c > math.MaxFloat64 {
			continue
		}

		// Strictly better only; equal distances keep the first predecessor.
		if cur, reached := r.res.dist[v]; reached && candidate >= cur {
			continue
		}

		r.res.dist[v] = candidate
		r.res.prev[v] = u
		r.pq.Push(frontier.Entry[V, W]{Vertex: v, Dist: candidate})
		if r.options.Logger != nil {
			r.options.Logger.Debug("dijkstra: relaxed", "from", u, "to", v, "dist", candidate)
		}
	}
}
