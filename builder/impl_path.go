// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Nodes laid out left to right, cfg.spacing apart.
//   - Edges (i-1)-i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		pts := make([]core.Point, n)
		for i := range pts {
			pts[i] = core.Point{X: cfg.origin.X + i*cfg.spacing, Y: cfg.origin.Y}
		}
		ids := place(g, pts)

		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
