// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Nodes on a circle, clockwise from twelve o'clock.
//   - Edges i-(i+1) for i=0..n-2, then the closing edge (n-1)-0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		pts, _ := ring(cfg, n)
		ids := place(g, pts)

		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
