// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go and resolved by name in FromShape.
//   - Safety: never panic at construction time; return sentinel errors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathboard/core"
)

// Constructor adds one topology to g using the resolved config. It must add
// its nodes at positions derived from cfg.origin and cfg.spacing.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a new core.Graph, resolves options, and applies every
// constructor in order. Each constructor after the first is laid out to the
// right of everything built so far. Unless WithoutDestination is given, the
// last node added becomes the destination.
//
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		cfg.origin.X = rightEdge(g) + 2*cfg.spacing
	}

	if cfg.destination && g.NodeCount() > 0 {
		last := g.NextID() - 1
		if err := g.SetDestination(last); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shape names accepted by FromShape.
const (
	ShapePath     = "path"
	ShapeCycle    = "cycle"
	ShapeStar     = "star"
	ShapeGrid     = "grid"
	ShapeComplete = "complete"
	ShapeWheel    = "wheel"
)

// Shapes lists the names FromShape understands, in display order.
func Shapes() []string {
	return []string{ShapePath, ShapeCycle, ShapeStar, ShapeGrid, ShapeComplete, ShapeWheel}
}

// FromShape resolves a shape name and a size into a Constructor. For grid,
// size is the side of a size x size lattice; for every other shape it is the
// node count. Names are case-insensitive.
func FromShape(name string, size int) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ShapePath:
		return Path(size), nil
	case ShapeCycle:
		return Cycle(size), nil
	case ShapeStar:
		return Star(size), nil
	case ShapeGrid:
		return Grid(size, size), nil
	case ShapeComplete:
		return Complete(size), nil
	case ShapeWheel:
		return Wheel(size), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, name, strings.Join(Shapes(), ", "))
	}
}
