// SPDX-License-Identifier: MIT
// Package: footpath/builder
//
// impl_path.go — linear and ring topologies.
//
// Contract:
//   • Path(n):  n ≥ 2; links id(i)–id(i+1) for i in [0, n-2].
//   • Cycle(n): n ≥ 3; Path(n) plus the closing link id(n-1)–id(0).
//   • Vertices are added in index order; existing vertices are reused.
//
// Complexity: O(n log n) time (sorted vertex index), O(n) space.

package builder

import "fmt"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
)

const (
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor emitting a simple chain of n vertices, the shape
// of a single footway with n nodes.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor emitting a ring of n vertices.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *Graph, cfg builderConfig, method string, n int, closed bool) error {
	for i := 0; i < n; i++ {
		if err := ensureVertex(g, method, cfg.idFn(i)); err != nil {
			return err
		}
	}
	for i := 0; i+1 < n; i++ {
		if err := link(g, cfg, method, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
			return err
		}
	}
	if closed {
		return link(g, cfg, method, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}
