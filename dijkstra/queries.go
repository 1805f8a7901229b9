// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/pathboard/core"

// Distance returns the shortest distance from the source to id. ok is false
// before Run, for ids outside the snapshot, and for nodes the source cannot
// reach.
func (e *Engine) Distance(id core.NodeID) (int64, bool) {
	if !e.solved {
		return 0, false
	}
	d, ok := e.dist[id]
	if !ok || d == Infinity {
		return 0, false
	}

	return d, true
}

// DestinationDistance is Distance(destination).
func (e *Engine) DestinationDistance() (int64, bool) {
	return e.Distance(e.destination)
}

// Path returns the nodes from the source to id, both included. Path(source)
// is [source]. The result is empty, never nil, before Run and for nodes the
// source cannot reach. The returned slice is a copy.
func (e *Engine) Path(id core.NodeID) []core.Node {
	if !e.solved {
		return []core.Node{}
	}
	p, ok := e.paths[id]
	if !ok {
		return []core.Node{}
	}
	out := make([]core.Node, len(p))
	copy(out, p)

	return out
}

// DestinationPath is Path(destination).
func (e *Engine) DestinationPath() []core.Node {
	return e.Path(e.destination)
}

// Neighbors returns the edges incident to id in the graph's edge insertion
// order. It does not require Run.
func (e *Engine) Neighbors(id core.NodeID) []core.Edge {
	edges := e.adjacency[id]
	out := make([]core.Edge, len(edges))
	copy(out, edges)

	return out
}

// Adjacent returns the endpoint of edge opposite to id. ok is false when edge
// is nil, id is core.NoNode, or id is not an endpoint of edge.
func (e *Engine) Adjacent(edge *core.Edge, id core.NodeID) (core.NodeID, bool) {
	if edge == nil {
		return core.NoNode, false
	}

	return edge.Other(id)
}

// Source returns the source of the snapshot (core.NoNode if unset).
func (e *Engine) Source() core.NodeID { return e.source }

// Destination returns the destination of the snapshot (core.NoNode if unset).
func (e *Engine) Destination() core.NodeID { return e.destination }
