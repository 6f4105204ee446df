// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/footpath/core"
)

// Common vertex ids used across core tests.
const (
	V1 int64 = 1
	V2 int64 = 2
	V3 int64 = 3
	V4 int64 = 4
	V5 int64 = 5
	VX int64 = 99 // never added
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight2  = 2.0
	Weight7  = 7.0
	Weight9  = 9.0
	Weight10 = 10.0
	Weight42 = 42.0
)

// newScenarioGraph builds the four-vertex reference graph:
//
//	1 →(7) 2 →(10) 4
//	1 →(9) 3 →(2)  4
func newScenarioGraph(t testing.TB) *core.Graph[int64, float64] {
	t.Helper()
	g := core.NewGraph[int64, float64]()
	for _, v := range []int64{V1, V2, V3, V4} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(V1, V2, Weight7))
	require.NoError(t, g.AddEdge(V1, V3, Weight9))
	require.NoError(t, g.AddEdge(V3, V4, Weight2))
	require.NoError(t, g.AddEdge(V2, V4, Weight10))

	return g
}

// sumOutDegrees recomputes the edge count from per-vertex adjacency sizes.
func sumOutDegrees[V cmp.Ordered, W core.Weight](g *core.Graph[V, W]) int {
	total := 0
	for _, v := range g.Vertices() {
		total += g.OutDegree(v)
	}

	return total
}
