// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - The hub is added first, so in a fresh graph it is the source.
//   - n-1 leaves on a circle around the hub; spokes hub-leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		leaves, center := ring(cfg, n-1)
		hub := g.AddNode(center).ID
		ids := place(g, leaves)

		for _, leaf := range ids {
			if err := link(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
