// SPDX-License-Identifier: MIT
// Package: footpath/builder
//
// impl_grid.go — rectangular lattice, the classic street-block shape.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, rows·cols ≥ 2.
//   • Cell (r,c) has index r·cols + c and vertex id idFn(index).
//   • 4-neighborhood: each cell links right (r,c+1) and down (r+1,c).
//     Under WithOneWay only those forward arcs are emitted.
//
// Complexity: O(rows·cols · log(rows·cols)) time, O(rows·cols) space.

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	minGridSize = 2
)

// Grid returns a Constructor emitting a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows*cols < minGridSize {
			return fmt.Errorf("%s: rows*cols=%d < %d: %w", methodGrid, rows*cols, minGridSize, ErrTooFewVertices)
		}

		id := func(r, c int) int64 { return cfg.idFn(r*cols + c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := ensureVertex(g, methodGrid, id(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
