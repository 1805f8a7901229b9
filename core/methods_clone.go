// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshotting and clearing graph instances.
//
// Determinism:
//   - Clone preserves node and edge insertion order, the id counter and the revision.
//
// Concurrency:
//   - Clone takes the read lock on the source; the result shares no state with it.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clone returns a deep copy of the graph: nodes, edges, designations, solved
// flag, id counter and revision.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		nextID:      g.nextID,
		rev:         g.rev,
		nodes:       orderedmap.New[NodeID, *Node](g.nodes.Len()),
		edges:       orderedmap.New[edgeKey, *Edge](g.edges.Len()),
		source:      g.source,
		destination: g.destination,
		solved:      g.solved,
	}
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := *pair.Value
		out.nodes.Set(pair.Key, &n)
	}
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		e := *pair.Value
		out.edges.Set(pair.Key, &e)
	}

	return out
}

// Clear empties the graph: id counter back to InitialNodeID, no nodes, no
// edges, no source or destination, not solved. The revision keeps counting so
// engines bound before Clear cannot mark the cleared graph solved.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID = InitialNodeID
	g.nodes = orderedmap.New[NodeID, *Node]()
	g.edges = orderedmap.New[edgeKey, *Edge]()
	g.source = NoNode
	g.destination = NoNode
	g.touch()
}
