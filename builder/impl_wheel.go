// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewNodes): an outer cycle of n-1 nodes plus a hub.
//   - The rim is built by Cycle first, then the hub, then spokes in rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_(n-1) + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewNodes)
		}

		first := g.NextID()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		_, center := ring(cfg, n-1)
		hub := g.AddNode(center).ID
		for rim := first; rim < hub; rim++ {
			if err := link(g, cfg, methodWheel, hub, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
