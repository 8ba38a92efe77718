// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_grid.go - rows×cols 4-neighborhood lattice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid builds a rows×cols lattice with node r*cols+c. For each cell in
// row-major order the right edge is emitted before the down edge.
// A 1×1 grid has no edges and fails with ErrTooFewVertices.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		var r, c, id int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = r*cols + c
				if c+1 < cols {
					cfg.emit(dst, id, id+1)
				}
				if r+1 < rows {
					cfg.emit(dst, id, id+cols)
				}
			}
		}

		return nil
	}
}
