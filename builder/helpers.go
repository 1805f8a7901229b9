// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathboard/core"
)

// place adds one node per point, in order, and returns their ids.
func place(g *core.Graph, pts []core.Point) []core.NodeID {
	ids := make([]core.NodeID, len(pts))
	for i, p := range pts {
		ids[i] = g.AddNode(p).ID
	}

	return ids
}

// link adds the edge u-v with a weight drawn from cfg.
func link(g *core.Graph, cfg config, method string, u, v core.NodeID) error {
	w := cfg.weightFn(cfg.rng)
	if !g.AddEdge(core.NewEdge(u, v, core.WithWeight(w))) {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d) refused: %w", method, u, v, w, ErrConstructFailed)
	}

	return nil
}

// ring returns n points evenly spaced on a circle whose neighbors are about
// cfg.spacing apart, inside the square starting at cfg.origin. The first
// point sits at twelve o'clock.
func ring(cfg config, n int) (pts []core.Point, center core.Point) {
	r := radius(cfg, n)
	center = core.Point{X: cfg.origin.X + r, Y: cfg.origin.Y + r}
	pts = make([]core.Point, n)
	for i := 0; i < n; i++ {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = core.Point{
			X: center.X + int(math.Round(float64(r)*math.Cos(theta))),
			Y: center.Y + int(math.Round(float64(r)*math.Sin(theta))),
		}
	}

	return pts, center
}

func radius(cfg config, n int) int {
	if n < 3 {
		return cfg.spacing
	}
	// chord length 2r·sin(π/n) ≈ spacing
	r := float64(cfg.spacing) / (2 * math.Sin(math.Pi/float64(n)))
	if r < float64(cfg.spacing) {
		r = float64(cfg.spacing)
	}

	return int(math.Ceil(r))
}

// rightEdge returns the largest X coordinate in g, or 0 for an empty graph.
func rightEdge(g *core.Graph) int {
	max := 0
	for i, n := range g.Nodes() {
		if i == 0 || n.Coord.X > max {
			max = n.Coord.X
		}
	}

	return max
}
