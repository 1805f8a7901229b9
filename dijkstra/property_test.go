// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/core"
)

// TestRun_ShortestPathProperties checks, on seeded random-weight shapes, that
// every path starts at the source, ends at its node, sums to the reported
// distance, and that no edge can relax any distance further.
func TestRun_ShortestPathProperties(t *testing.T) {
	for _, shape := range builder.Shapes() {
		for seed := int64(1); seed <= 5; seed++ {
			cons, err := builder.FromShape(shape, 6)
			require.NoError(t, err)
			g, err := builder.BuildGraph([]builder.Option{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformWeightFn(1, 25)),
			}, cons)
			require.NoError(t, err)

			e := mustEngine(t, g)
			require.NoError(t, e.Run(), "%s/seed=%d", shape, seed)

			src := e.Source()
			d0, ok := e.Distance(src)
			require.True(t, ok)
			assert.Zero(t, d0)

			for _, n := range g.Nodes() {
				dist, ok := e.Distance(n.ID)
				require.True(t, ok, "%s: node %d reachable", shape, n.ID)

				path := e.Path(n.ID)
				require.NotEmpty(t, path)
				assert.Equal(t, src, path[0].ID)
				assert.Equal(t, n.ID, path[len(path)-1].ID)

				var sum int64
				for i := 1; i < len(path); i++ {
					edge, ok := g.Edge(path[i-1].ID, path[i].ID)
					require.True(t, ok, "consecutive path nodes share an edge")
					sum += edge.Weight
				}
				assert.Equal(t, dist, sum, "%s/seed=%d node %d", shape, seed, n.ID)
			}

			for _, edge := range g.Edges() {
				du, _ := e.Distance(edge.One)
				dv, _ := e.Distance(edge.Two)
				assert.LessOrEqual(t, dv, du+edge.Weight)
				assert.LessOrEqual(t, du, dv+edge.Weight)
			}
			assert.True(t, g.Solved())
		}
	}
}

// TestRun_OnGeneratedGrid exercises a larger lattice with unit weights, where
// the distance to every cell is its Manhattan distance from the corner.
func TestRun_OnGeneratedGrid(t *testing.T) {
	const side = 8
	g, err := builder.BuildGraph(nil, builder.Grid(side, side))
	require.NoError(t, err)

	e := mustEngine(t, g)
	require.NoError(t, e.Run())

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := core.NodeID(r*side + c + 1)
			d, ok := e.Distance(id)
			require.True(t, ok)
			assert.Equal(t, int64(r+c), d, "cell (%d,%d)", r, c)
		}
	}

	dd, ok := e.DestinationDistance()
	require.True(t, ok)
	assert.Equal(t, int64(2*(side-1)), dd)
	assert.Len(t, e.DestinationPath(), 2*(side-1)+1)
}
