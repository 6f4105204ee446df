// File: types.go
// Role: Sentinel errors and functional options for ShortestPaths.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Every vertex is pushed once with +∞ priority, the source once more.
//	   • Each successful relaxation pushes one entry (at most E pushes).
//	   • Each heap operation costs O(log(V+E)), simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor tables and the settle order.
//	   • O(V + E) frontier entries in the worst case (lazy decrease-key).
//
// Options:
//
//	– WithComparator: frontier ordering; default is distance asc, then vertex id asc.
//	– WithLogger:     *slog.Logger receiving Debug-level settle/relax traces.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrComparatorType  if WithComparator was built for other type parameters.
//	– ErrUnreachable     from PathTo/Reconstruct when no path reaches the target.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, int64(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := res.PathTo(4)

package dijkstra

import (
	"cmp"
	"errors"
	"log/slog"

	"github.com/katalvlaran/footpath/core"
	"github.com/katalvlaran/footpath/frontier"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrComparatorType indicates WithComparator received a comparator whose
	// type parameters do not match the graph being searched.
	ErrComparatorType = errors.New("dijkstra: comparator type does not match graph")

	// ErrUnreachable indicates the target has no path from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of ShortestPaths.
type Options struct {
	// comparator holds a frontier.Comparator[V,W]; the engine asserts the
	// concrete type once it knows V and W. nil selects the default.
	comparator any

	// Logger receives Debug-level traces. nil disables tracing.
	Logger *slog.Logger
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithComparator replaces the frontier ordering. Only the tie-break between
// equal distances should differ from the default; an ordering that is not
// distance-first breaks the settle invariant.
func WithComparator[V cmp.Ordered, W core.Weight](c frontier.Comparator[V, W]) Option {
	return func(o *Options) {
		o.comparator = c
	}
}

// WithLogger attaches a structured logger for Debug-level traces.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the options used when none are given:
// default frontier ordering and no logger.
func DefaultOptions() Options {
	return Options{}
}
