// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewNodes).
//   - Nodes in row-major order on a lattice, cfg.spacing apart.
//   - For each node in row-major order: edge to its right neighbor, then to
//     the neighbor below.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

const (
	methodGrid   = "Grid"
	minGridNodes = 2
)

// Grid returns a Constructor that builds a rows x cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 || rows*cols < minGridNodes {
			return fmt.Errorf("%s: %dx%d < min=%d nodes: %w", methodGrid, rows, cols, minGridNodes, ErrTooFewNodes)
		}

		pts := make([]core.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, core.Point{X: cfg.origin.X + c*cfg.spacing, Y: cfg.origin.Y + r*cfg.spacing})
			}
		}
		ids := place(g, pts)
		at := func(r, c int) core.NodeID { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
