// SPDX-License-Identifier: MIT
// Package: footpath/builder
//
// impl_complete.go — complete graph K_n and random sparse graphs.
//
// Contract:
//   • Complete(n): n ≥ 1; links every unordered pair {i,j}, i<j.
//     Under WithOneWay only i→j (i<j) is emitted, yielding a DAG.
//   • RandomSparse(n, p): n ≥ 1, p ∈ [0,1], requires rng.
//     Default: each unordered pair {i,j} is linked with probability p.
//     WithOneWay: each ordered pair (i,j), i≠j, gets i→j with probability p.
//     Pairs are visited in lexicographic index order so a fixed seed yields
//     the same graph every time.
//
// Complexity: O(n² · log n) time, O(n + m) space.

package builder

import "fmt"

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

const (
	minCompleteNodes = 1
	minSparseNodes   = 1
	minProbability   = 0.0
	maxProbability   = 1.0
)

// Complete returns a Constructor emitting K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor emitting an Erdős–Rényi style graph
// G(n, p). The rng from WithSeed/WithRand drives both pair selection and,
// through the WeightFn, the weights.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability || p != p {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.oneWay {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func addVertices(g *Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := ensureVertex(g, method, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}
