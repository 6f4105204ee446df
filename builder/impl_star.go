// SPDX-License-Identifier: MIT
// Package: footpath/builder
//
// impl_star.go — hub-and-spoke topology.
//
// Contract:
//   • Star(n): n ≥ 2; hub is id(0), leaves are id(1)..id(n-1).
//   • Each leaf is linked to the hub (hub→leaf under WithOneWay).
//
// Complexity: O(n log n) time, O(n) space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor emitting one hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		if err := ensureVertex(g, methodStar, hub); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := ensureVertex(g, methodStar, leaf); err != nil {
				return err
			}
			if err := link(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
