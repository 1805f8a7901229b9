// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/core"
)

// Engine is a throwaway shortest-path session bound to one graph snapshot.
// It is not safe for concurrent use.
type Engine struct {
	id      string
	options Options

	graph *core.Graph // bound graph; only MarkSolved is called on it
	rev   uint64      // graph revision at snapshot time

	// snapshot
	source      core.NodeID
	destination core.NodeID
	nodes       []core.Node
	index       map[core.NodeID]core.Node
	adjacency   map[core.NodeID][]core.Edge

	reason Reason
	solved bool

	// per-run state
	dist    map[core.NodeID]int64
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	paths   map[core.NodeID][]core.Node
	pq      nodePQ
	seq     uint64
}

// New binds an Engine to a snapshot of g and validates it.
//
// Returns ErrNilGraph if g is nil. A graph that fails validation still yields
// an Engine; Safe reports false and Run refuses to compute.
//
// Complexity: O(V + E) for the snapshot and incidence checks.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	snap := g.Clone()
	e := &Engine{
		id:      uuid.NewString(),
		options: cfg,
		graph:   g,
		rev:     snap.Revision(),
		nodes:   snap.Nodes(),
	}
	e.source, _ = snap.Source()
	e.destination, _ = snap.Destination()

	e.index = make(map[core.NodeID]core.Node, len(e.nodes))
	for _, n := range e.nodes {
		e.index[n.ID] = n
	}
	// Adjacency lists keep the graph's edge insertion order per node.
	e.adjacency = make(map[core.NodeID][]core.Edge, len(e.nodes))
	for _, edge := range snap.Edges() {
		e.adjacency[edge.One] = append(e.adjacency[edge.One], edge)
		e.adjacency[edge.Two] = append(e.adjacency[edge.Two], edge)
	}

	e.reason = e.evaluate()
	e.logValidation()

	return e, nil
}

// ID returns the session identifier used in logs.
func (e *Engine) ID() string { return e.id }

// Evaluate re-checks the snapshot against the validation rules, records the
// outcome, and returns the sentinel error of the first failing rule (nil when
// the graph is safe).
func (e *Engine) Evaluate() error {
	e.reason = e.evaluate()
	e.logValidation()

	return e.reason.Err()
}

func (e *Engine) logValidation() {
	if e.reason == ReasonNone {
		return
	}
	e.options.Logger.Debug("graph failed validation",
		zap.String("session", e.id),
		zap.Stringer("reason", e.reason),
	)
}

func (e *Engine) evaluate() Reason {
	if e.source == core.NoNode {
		return ReasonSourceMissing
	}
	if e.destination == core.NoNode {
		return ReasonDestinationMissing
	}
	// A node with no adjacency entry touches no edge.
	for _, n := range e.nodes {
		if len(e.adjacency[n.ID]) == 0 {
			return ReasonUnreachableNode
		}
	}

	return ReasonNone
}

// Safe reports whether the snapshot passed validation.
func (e *Engine) Safe() bool { return e.reason == ReasonNone }

// Reason returns the failing validation rule, or ReasonNone.
func (e *Engine) Reason() Reason { return e.reason }

// Solved reports whether Run completed on this Engine.
func (e *Engine) Solved() bool { return e.solved }

// Run computes shortest distances and predecessors from the source to every
// node of the snapshot, caches each node's path, and marks the bound graph
// solved if it has not been edited since New.
//
// On an unsafe snapshot Run returns a *StateError and touches no table.
// Running again recomputes from scratch on the same snapshot.
func (e *Engine) Run() error {
	start := time.Now()
	if !e.Safe() {
		err := &StateError{Reason: e.reason}
		e.options.Logger.Debug("run rejected", zap.String("session", e.id), zap.Error(err))
		e.observe(OutcomeRejected, start)

		return err
	}

	e.reset()
	e.seed()
	for e.pq.Len() > 0 {
		item := heap.Pop(&e.pq).(*nodeItem)
		// Stale entry: a shorter distance for this node was already settled.
		if e.visited[item.id] {
			continue
		}
		e.visited[item.id] = true
		e.options.OnSettle(item.id, e.dist[item.id])
		e.relax(item.id)
	}

	for _, n := range e.nodes {
		e.paths[n.ID] = e.walkBack(n.ID)
	}
	e.solved = true
	current := e.graph.MarkSolved(e.rev)

	e.options.Logger.Debug("run complete",
		zap.String("session", e.id),
		zap.Int("nodes", len(e.nodes)),
		zap.Bool("current", current),
		zap.Duration("elapsed", time.Since(start)),
	)
	if !current {
		e.options.Logger.Warn("graph changed during session; result not marked solved",
			zap.String("session", e.id),
		)
	}
	e.observe(OutcomeSolved, start)

	return nil
}

// reset initializes every tentative distance to Infinity and empties the
// predecessor, visited and path tables.
func (e *Engine) reset() {
	n := len(e.nodes)
	e.dist = make(map[core.NodeID]int64, n)
	e.prev = make(map[core.NodeID]core.NodeID, n)
	e.visited = make(map[core.NodeID]bool, n)
	e.paths = make(map[core.NodeID][]core.Node, n)
	e.pq = make(nodePQ, 0, n)
	e.seq = 0
	heap.Init(&e.pq)
	for _, node := range e.nodes {
		e.dist[node.ID] = Infinity
	}
}

// seed settles the source at distance 0 and enqueues its direct neighbors
// with the edge weight as distance, in edge insertion order.
func (e *Engine) seed() {
	src := e.source
	e.dist[src] = 0
	e.visited[src] = true
	e.options.OnSettle(src, 0)

	for _, edge := range e.adjacency[src] {
		adj, ok := edge.Other(src)
		if !ok || edge.Weight >= e.dist[adj] {
			continue
		}
		e.dist[adj] = edge.Weight
		e.prev[adj] = src
		e.push(adj, edge.Weight)
	}
}

// relax improves the tentative distance of every unvisited neighbor of u.
// Assumes dist[u] is final.
func (e *Engine) relax(u core.NodeID) {
	d := e.dist[u]
	for _, edge := range e.adjacency[u] {
		v, ok := edge.Other(u)
		if !ok || e.visited[v] {
			continue
		}
		// Saturate instead of overflowing on absurd weights.
		if edge.Weight > Infinity-d {
			continue
		}
		candidate := d + edge.Weight
		if candidate >= e.dist[v] {
			continue
		}
		e.dist[v] = candidate
		e.prev[v] = u
		e.push(v, candidate)
	}
}

func (e *Engine) push(id core.NodeID, dist int64) {
	e.seq++
	heap.Push(&e.pq, &nodeItem{id: id, dist: dist, seq: e.seq})
}

// walkBack follows predecessors from id to the source and returns the path in
// source-to-id order. Nodes the source never reached get an empty path.
func (e *Engine) walkBack(id core.NodeID) []core.Node {
	if d, ok := e.dist[id]; !ok || d == Infinity {
		return []core.Node{}
	}

	var rev []core.Node
	for cur := id; ; {
		rev = append(rev, e.index[cur])
		if cur == e.source {
			break
		}
		p, ok := e.prev[cur]
		if !ok {
			// Broken chain cannot happen for a finite distance; keep queries total anyway.
			return []core.Node{}
		}
		cur = p
	}

	path := make([]core.Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}

	return path
}

func (e *Engine) observe(outcome string, start time.Time) {
	if e.options.Recorder != nil {
		e.options.Recorder.ObserveRun(outcome, time.Since(start))
	}
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed
// with. seq breaks distance ties in push order.
type nodeItem struct {
	id   core.NodeID
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
