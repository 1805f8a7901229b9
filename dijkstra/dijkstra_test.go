// SPDX-License-Identifier: MIT
// Package dijkstra_test covers validation order, the documented isolated-node
// quirk, the concrete scenarios of the shortest-path engine, query totality,
// and snapshot/solved interplay with the bound graph.

package dijkstra_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// abc builds A(1)–B(2) weight 1, B–C(3) weight 2, source A, destination C.
func abc(t *testing.T) (*core.Graph, core.Node, core.Node, core.Node) {
	t.Helper()
	g := core.NewGraph()
	a := g.AddNode(core.Point{X: 0, Y: 0})
	b := g.AddNode(core.Point{X: 10, Y: 0})
	c := g.AddNode(core.Point{X: 20, Y: 0})
	require.True(t, g.AddEdge(core.NewEdge(a.ID, b.ID, core.WithWeight(1))))
	require.True(t, g.AddEdge(core.NewEdge(b.ID, c.ID, core.WithWeight(2))))
	require.NoError(t, g.SetDestination(c.ID))

	return g, a, b, c
}

func mustEngine(t *testing.T, g *core.Graph, opts ...dijkstra.Option) *dijkstra.Engine {
	t.Helper()
	e, err := dijkstra.New(g, opts...)
	require.NoError(t, err)

	return e
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	_, err := dijkstra.New(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestValidation_SourceMissingWinsOverDestination(t *testing.T) {
	// Node 1 becomes the source on insertion; deleting it leaves a 3-node,
	// 2-edge graph with neither source nor destination.
	g2 := core.NewGraph()
	g2.AddNode(core.Point{})
	b := g2.AddNode(core.Point{})
	c := g2.AddNode(core.Point{})
	d := g2.AddNode(core.Point{})
	g2.DeleteNode(core.InitialNodeID)
	require.True(t, g2.AddEdge(core.NewEdge(b.ID, c.ID)))
	require.True(t, g2.AddEdge(core.NewEdge(c.ID, d.ID)))

	e := mustEngine(t, g2)
	assert.False(t, e.Safe())
	assert.Equal(t, dijkstra.ReasonSourceMissing, e.Reason())
	assert.Equal(t, "source missing", e.Reason().String())
	assert.ErrorIs(t, e.Evaluate(), dijkstra.ErrSourceMissing)

	err := e.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrIllegalState)
	assert.ErrorIs(t, err, dijkstra.ErrSourceMissing)
	assert.NotErrorIs(t, err, dijkstra.ErrDestinationMissing)

	var se *dijkstra.StateError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, dijkstra.ReasonSourceMissing, se.Reason)

	// No table was touched.
	assert.False(t, e.Solved())
	_, ok := e.Distance(b.ID)
	assert.False(t, ok)
	assert.Empty(t, e.Path(b.ID))
	assert.False(t, g2.Solved())
}

func TestValidation_DestinationMissing(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.Point{})
	b := g.AddNode(core.Point{})
	g.AddEdge(core.NewEdge(a.ID, b.ID))

	e := mustEngine(t, g)
	assert.Equal(t, dijkstra.ReasonDestinationMissing, e.Reason())
	assert.ErrorIs(t, e.Run(), dijkstra.ErrDestinationMissing)
}

func TestValidation_UnreachableNodePresent(t *testing.T) {
	g, _, _, _ := abc(t)
	g.AddNode(core.Point{X: 99, Y: 99}) // D touches no edge

	e := mustEngine(t, g)
	assert.False(t, e.Safe())
	assert.Equal(t, "unreachable node present", e.Reason().String())

	err := e.Run()
	assert.ErrorIs(t, err, dijkstra.ErrIllegalState)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableNode)
	assert.Equal(t, "dijkstra: cannot run: unreachable node present", err.Error())
}

// A single node with no edges is rejected even though source == destination.
// This follows the incidence rule literally and is a known quirk.
func TestValidation_SingleIsolatedNodeQuirk(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.Point{})
	require.NoError(t, g.SetDestination(a.ID))

	e := mustEngine(t, g)
	assert.Equal(t, dijkstra.ReasonUnreachableNode, e.Reason())
	assert.ErrorIs(t, e.Run(), dijkstra.ErrIllegalState)
}

func TestValidation_LoggedOnceByNew(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g, _, _, _ := abc(t)
	g.AddNode(core.Point{X: 99, Y: 99})

	e := mustEngine(t, g, dijkstra.WithLogger(zap.New(obsCore)))
	entries := logs.FilterMessage("graph failed validation").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unreachable node present", entries[0].ContextMap()["reason"])
	assert.Equal(t, e.ID(), entries[0].ContextMap()["session"])

	empty := mustEngine(t, core.NewGraph(), dijkstra.WithLogger(zap.New(obsCore)))
	assert.Equal(t, dijkstra.ReasonSourceMissing, empty.Reason())
	assert.Equal(t, 2, logs.FilterMessage("graph failed validation").Len())

	safe, _, _, _ := abc(t)
	mustEngine(t, safe, dijkstra.WithLogger(zap.New(obsCore)))
	assert.Equal(t, 2, logs.FilterMessage("graph failed validation").Len(), "safe graphs log nothing")
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

func TestRun_ThreeNodeChain(t *testing.T) {
	g, a, b, c := abc(t)
	e := mustEngine(t, g)
	require.True(t, e.Safe())
	require.NoError(t, e.Run())

	d, ok := e.Distance(b.ID)
	require.True(t, ok)
	assert.Equal(t, int64(1), d)

	d, ok = e.DestinationDistance()
	require.True(t, ok)
	assert.Equal(t, int64(3), d)

	assert.Equal(t, []core.Node{a, b, c}, e.DestinationPath())
	assert.Equal(t, []core.Node{a, b}, e.Path(b.ID))
	assert.Equal(t, []core.Node{a}, e.Path(a.ID))

	d, ok = e.Distance(a.ID)
	require.True(t, ok)
	assert.Zero(t, d)

	assert.True(t, e.Solved())
	assert.True(t, g.Solved())
}

func TestRun_PrefersCheaperDetour(t *testing.T) {
	// A-B(1), B-C(2), A-C(5): C is reached through B.
	g := core.NewGraph()
	a := g.AddNode(core.Point{})
	b := g.AddNode(core.Point{})
	c := g.AddNode(core.Point{})
	g.AddEdge(core.NewEdge(a.ID, b.ID, core.WithWeight(1)))
	g.AddEdge(core.NewEdge(b.ID, c.ID, core.WithWeight(2)))
	g.AddEdge(core.NewEdge(a.ID, c.ID, core.WithWeight(5)))
	require.NoError(t, g.SetDestination(c.ID))

	e := mustEngine(t, g)
	require.NoError(t, e.Run())

	if diff := cmp.Diff([]core.NodeID{a.ID, b.ID, c.ID}, core.IDs(e.DestinationPath())); diff != "" {
		t.Errorf("destination path mismatch (-want +got):\n%s", diff)
	}
	d, _ := e.DestinationDistance()
	assert.Equal(t, int64(3), d)
}

func TestRun_EqualCostPathsAreDeterministic(t *testing.T) {
	// Square A-B-D and A-C-D, all weight 1. Neighbors of the source are seeded
	// in edge order, so D is first reached through B.
	build := func() (*core.Graph, []core.NodeID) {
		g := core.NewGraph()
		a := g.AddNode(core.Point{})
		b := g.AddNode(core.Point{})
		c := g.AddNode(core.Point{})
		d := g.AddNode(core.Point{})
		g.AddEdge(core.NewEdge(a.ID, b.ID))
		g.AddEdge(core.NewEdge(a.ID, c.ID))
		g.AddEdge(core.NewEdge(b.ID, d.ID))
		g.AddEdge(core.NewEdge(c.ID, d.ID))
		_ = g.SetDestination(d.ID)
		return g, []core.NodeID{a.ID, b.ID, d.ID}
	}

	for i := 0; i < 20; i++ {
		g, want := build()
		e := mustEngine(t, g)
		require.NoError(t, e.Run())
		require.Equal(t, want, core.IDs(e.DestinationPath()))
	}
}

func TestRun_DisconnectedComponentStaysAbsent(t *testing.T) {
	// Validation only checks incidence: E-F passes although it is cut off.
	g, _, _, _ := abc(t)
	x := g.AddNode(core.Point{})
	y := g.AddNode(core.Point{})
	g.AddEdge(core.NewEdge(x.ID, y.ID, core.WithWeight(4)))

	e := mustEngine(t, g)
	require.True(t, e.Safe())
	require.NoError(t, e.Run())

	_, ok := e.Distance(x.ID)
	assert.False(t, ok)
	assert.Empty(t, e.Path(y.ID))
	assert.NotNil(t, e.Path(y.ID))

	d, ok := e.DestinationDistance()
	require.True(t, ok)
	assert.Equal(t, int64(3), d)
}

// The heaviest legal weight must stay distinguishable from "unreached", also
// when several of them are summed along a path.
func TestRun_MaxWeightEdgesStayReachable(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.Point{X: 0, Y: 0})
	b := g.AddNode(core.Point{X: 10, Y: 0})
	c := g.AddNode(core.Point{X: 20, Y: 0})
	require.True(t, g.AddEdge(core.NewEdge(a.ID, b.ID, core.WithWeight(core.MaxWeight))))
	require.True(t, g.AddEdge(core.NewEdge(b.ID, c.ID, core.WithWeight(core.MaxWeight))))
	require.NoError(t, g.SetDestination(c.ID))

	assert.False(t, g.AddEdge(core.NewEdge(a.ID, c.ID, core.WithWeight(dijkstra.Infinity))),
		"a weight equal to the unreached marker is refused")
	assert.ErrorIs(t, g.SetEdgeWeight(a.ID, b.ID, dijkstra.Infinity), core.ErrBadWeight)

	e := mustEngine(t, g)
	require.NoError(t, e.Run())

	d, ok := e.Distance(b.ID)
	require.True(t, ok)
	assert.Equal(t, core.MaxWeight, d)
	d, ok = e.Distance(c.ID)
	require.True(t, ok)
	assert.Equal(t, 2*core.MaxWeight, d)
	assert.Equal(t, []core.NodeID{a.ID, b.ID, c.ID}, core.IDs(e.Path(c.ID)))
}

func TestRun_SourceEqualsDestination(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.Point{})
	b := g.AddNode(core.Point{})
	g.AddEdge(core.NewEdge(a.ID, b.ID, core.WithWeight(6)))
	require.NoError(t, g.SetDestination(a.ID))

	e := mustEngine(t, g)
	require.NoError(t, e.Run())
	d, ok := e.DestinationDistance()
	require.True(t, ok)
	assert.Zero(t, d)
	assert.Equal(t, []core.Node{a}, e.DestinationPath())
}

func TestRun_NonFirstSource(t *testing.T) {
	g, a, b, c := abc(t)
	require.NoError(t, g.SetSource(c.ID))
	require.NoError(t, g.SetDestination(a.ID))

	e := mustEngine(t, g)
	require.NoError(t, e.Run())
	assert.Equal(t, []core.Node{c, b, a}, e.DestinationPath())
	d, _ := e.Distance(b.ID)
	assert.Equal(t, int64(2), d)
}

func TestRun_IsRepeatable(t *testing.T) {
	g, _, _, c := abc(t)
	e := mustEngine(t, g)
	require.NoError(t, e.Run())
	first := e.Path(c.ID)
	require.NoError(t, e.Run())
	assert.Equal(t, first, e.Path(c.ID))
}

// ------------------------------------------------------------------------
// 3. Queries
// ------------------------------------------------------------------------

func TestQueries_BeforeRun(t *testing.T) {
	g, a, b, _ := abc(t)
	e := mustEngine(t, g)

	_, ok := e.Distance(a.ID)
	assert.False(t, ok)
	_, ok = e.DestinationDistance()
	assert.False(t, ok)

	p := e.Path(b.ID)
	assert.NotNil(t, p, "unsolved path is an empty slice, not nil")
	assert.Empty(t, p)
	assert.Empty(t, e.DestinationPath())
}

func TestQueries_UnknownNode(t *testing.T) {
	g, _, _, _ := abc(t)
	e := mustEngine(t, g)
	require.NoError(t, e.Run())

	_, ok := e.Distance(core.NodeID(99))
	assert.False(t, ok)
	assert.Empty(t, e.Path(core.NodeID(99)))
	assert.Empty(t, e.Neighbors(core.NodeID(99)))
}

func TestQueries_NeighborsInEdgeOrder(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.Point{})
	b := g.AddNode(core.Point{})
	c := g.AddNode(core.Point{})
	g.AddEdge(core.NewEdge(c.ID, a.ID, core.WithWeight(3)))
	g.AddEdge(core.NewEdge(b.ID, c.ID))
	g.AddEdge(core.NewEdge(a.ID, b.ID, core.WithWeight(2)))

	e := mustEngine(t, g)
	assert.Equal(t, []core.Edge{
		core.NewEdge(c.ID, a.ID, core.WithWeight(3)),
		core.NewEdge(a.ID, b.ID, core.WithWeight(2)),
	}, e.Neighbors(a.ID))
}

func TestQueries_Adjacent(t *testing.T) {
	g, a, b, c := abc(t)
	e := mustEngine(t, g)
	edge := core.NewEdge(a.ID, b.ID)

	got, ok := e.Adjacent(&edge, a.ID)
	require.True(t, ok)
	assert.Equal(t, b.ID, got)

	got, ok = e.Adjacent(&edge, b.ID)
	require.True(t, ok)
	assert.Equal(t, a.ID, got)

	_, ok = e.Adjacent(&edge, c.ID)
	assert.False(t, ok, "non-endpoint")
	_, ok = e.Adjacent(nil, a.ID)
	assert.False(t, ok, "nil edge")
	_, ok = e.Adjacent(&edge, core.NoNode)
	assert.False(t, ok, "absent node")
}

// ------------------------------------------------------------------------
// 4. Snapshot and solved flag
// ------------------------------------------------------------------------

func TestSnapshot_LaterEditsNotObserved(t *testing.T) {
	g, a, _, c := abc(t)
	e := mustEngine(t, g)

	// A direct shortcut added after New does not change this session.
	g.AddEdge(core.NewEdge(a.ID, c.ID, core.WithWeight(1)))
	require.NoError(t, e.Run())
	d, _ := e.DestinationDistance()
	assert.Equal(t, int64(3), d)
	assert.False(t, g.Solved(), "stale session must not mark the edited graph solved")

	// A fresh engine sees the new topology.
	fresh := mustEngine(t, g)
	require.NoError(t, fresh.Run())
	d, _ = fresh.DestinationDistance()
	assert.Equal(t, int64(1), d)
	assert.True(t, g.Solved())
}

func TestSnapshot_MutationAfterSolveResetsFlag(t *testing.T) {
	g, _, b, c := abc(t)
	e := mustEngine(t, g)
	require.NoError(t, e.Run())
	require.True(t, g.Solved())

	require.NoError(t, g.SetEdgeWeight(b.ID, c.ID, 10))
	assert.False(t, g.Solved())

	e2 := mustEngine(t, g)
	require.NoError(t, e2.Run())
	d, _ := e2.DestinationDistance()
	assert.Equal(t, int64(11), d)
}

// ------------------------------------------------------------------------
// 5. Options
// ------------------------------------------------------------------------

type fakeRecorder struct {
	outcomes []string
}

func (f *fakeRecorder) ObserveRun(outcome string, _ time.Duration) {
	f.outcomes = append(f.outcomes, outcome)
}

func TestOptions_RecorderAndLogger(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	rec := &fakeRecorder{}

	g, _, _, _ := abc(t)
	e := mustEngine(t, g, dijkstra.WithLogger(zap.New(obsCore)), dijkstra.WithRecorder(rec))
	require.NoError(t, e.Run())

	bad := mustEngine(t, core.NewGraph(), dijkstra.WithLogger(zap.New(obsCore)), dijkstra.WithRecorder(rec))
	require.Error(t, bad.Run())

	assert.Equal(t, []string{dijkstra.OutcomeSolved, dijkstra.OutcomeRejected}, rec.outcomes)
	assert.Equal(t, 1, logs.FilterMessage("run complete").Len())
	assert.Equal(t, 1, logs.FilterMessage("run rejected").Len())
	assert.NotEmpty(t, e.ID())
	assert.NotEqual(t, e.ID(), bad.ID())
}

func TestOptions_OnSettleOrder(t *testing.T) {
	g, a, b, c := abc(t)
	var order []core.NodeID
	var dists []int64
	e := mustEngine(t, g, dijkstra.WithOnSettle(func(id core.NodeID, d int64) {
		order = append(order, id)
		dists = append(dists, d)
	}))
	require.NoError(t, e.Run())

	assert.Equal(t, []core.NodeID{a.ID, b.ID, c.ID}, order)
	assert.Equal(t, []int64{0, 1, 3}, dists)
}
