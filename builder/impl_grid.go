// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// impl_grid.go — Grid(rows, cols).
//
// Vertex numbering is row-major: cell (r, c) is base + r*cols + c + 1.
// For each cell in row-major order the right edge is emitted, then the bottom edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	if rows < minGridDim || cols < minGridDim {
		return invalid(methodGrid, fmt.Errorf("rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices))
	}

	return Constructor{
		name: methodGrid,
		n:    rows * cols,
		emit: func(g *core.Graph, base int, cfg builderConfig) error {
			id := func(r, c int) int { return base + r*cols + c + 1 }
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if c+1 < cols {
						if err := g.AddEdge(id(r, c), id(r, c+1), cfg.weight()); err != nil {
							return err
						}
					}
					if r+1 < rows {
						if err := g.AddEdge(id(r, c), id(r+1, c), cfg.weight()); err != nil {
							return err
						}
					}
				}
			}

			return nil
		},
	}
}
