// SPDX-License-Identifier: MIT
//
// File: dump.go
// Role: Diagnostic rendering of a graph as a dense adjacency grid.
// Policy:
//   - Debug surface only: O(V²) time, never call it on production paths.
//   - Output is byte-stable for a fixed graph (golden-testable).

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const (
	dumpRule  = "***************************************************"
	dumpTitle = "********************* GRAPH ***********************"
)

// Dump writes the internal state of g to w for debugging.
//
// Layout:
//
//	***************************************************
//	********************* GRAPH ***********************
//	**Num vertices: 3
//	**Num edges: 2
//
//	**Vertices:
//	  0: A
//	  1: B
//	  2: C
//
//	**Edges:
//	 row 0: F (T,7) F
//	 row 1: F F (T,2)
//	 row 2: F F F
//
// Each row is one source vertex; columns follow the same ascending vertex
// order. A cell is "(T,<weight>) " when the directed edge exists and "F "
// otherwise, so every row ends with a trailing space. Float weights are
// printed with at most 8 significant digits; integer weights in full.
//
// Complexity: O(V²) time, O(1) extra space.
func (g *Graph[V, W]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, dumpRule)
	fmt.Fprintln(bw, dumpTitle)
	fmt.Fprintf(bw, "**Num vertices: %d\n", len(g.ids))
	fmt.Fprintf(bw, "**Num edges: %d\n", g.numEdges)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "**Vertices:")
	for i, id := range g.ids {
		fmt.Fprintf(bw, "  %d: %v\n", i, id)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "**Edges:")
	for row, from := range g.ids {
		fmt.Fprintf(bw, " row %d: ", row)
		out := g.vertices[from].out
		for _, to := range g.ids {
			if wt, ok := out[to]; ok {
				fmt.Fprintf(bw, "(T,%s) ", formatWeight(wt))
			} else {
				bw.WriteString("F ")
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// formatWeight renders floats with 8 significant digits, everything else via %v.
func formatWeight[W Weight](w W) string {
	switch v := any(w).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', 8, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', 8, 64)
	default:
		return fmt.Sprint(w)
	}
}
