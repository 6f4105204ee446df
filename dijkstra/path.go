// File: path.go
// Role: Path reconstruction from a predecessor table.

package dijkstra

import (
	"fmt"
	"slices"
)

// Predecessors is the read side of a predecessor table.
// Predecessor reports the vertex preceding v, or ok == false when v has none.
type Predecessors[V comparable] interface {
	Predecessor(v V) (V, bool)
}

// PredecessorMap adapts a plain map to Predecessors.
type PredecessorMap[V comparable] map[V]V

// Predecessor implements Predecessors.
func (m PredecessorMap[V]) Predecessor(v V) (V, bool) {
	p, ok := m[v]

	return p, ok
}

// Reconstruct walks prev backward from target until it reaches source and
// returns the forward path [source, ..., target]. When target == source the
// result is [source].
//
// Errors:
//   - ErrUnreachable if the chain ends, or loops, before reaching source.
//
// Complexity: O(path length) time and space.
func Reconstruct[V comparable](prev Predecessors[V], source, target V) ([]V, error) {
	path := []V{target}
	if target == source {
		return path, nil
	}

	seen := map[V]struct{}{target: {}}
	for cur := target; ; {
		p, ok := prev.Predecessor(cur)
		if !ok {
			return nil, fmt.Errorf("%w: chain from %v ends at %v", ErrUnreachable, target, cur)
		}
		if _, loop := seen[p]; loop {
			return nil, fmt.Errorf("%w: predecessor cycle at %v", ErrUnreachable, p)
		}
		path = append(path, p)
		if p == source {
			break
		}
		seen[p] = struct{}{}
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}
