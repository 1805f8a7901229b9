// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle, membership and source/destination designation.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Ids are strictly increasing until Clear.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddNode creates a node at p with the next sequential id and inserts it.
// The very first node of the graph (id == InitialNodeID) becomes the source.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(p Point) Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := &Node{ID: g.nextID, Coord: p}
	g.nextID++
	g.nodes.Set(n.ID, n)
	if n.ID == InitialNodeID {
		g.source = n.ID
	}
	g.touch()

	return *n
}

// DeleteNode removes the node and every edge incident to it. If the node was
// the source or destination, that designation is cleared. Deleting an absent
// node is a no-op and reports false.
//
// Complexity: O(E) for the incident-edge sweep.
func (g *Graph) DeleteNode(id NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes.Get(id); !ok {
		return false
	}

	// Collect first; the table must not be mutated while walking it.
	var incident []edgeKey
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Contains(id) {
			incident = append(incident, pair.Key)
		}
	}
	for _, k := range incident {
		g.edges.Delete(k)
	}

	g.nodes.Delete(id)
	if g.source == id {
		g.source = NoNode
	}
	if g.destination == id {
		g.destination = NoNode
	}
	g.touch()

	return true
}

// MoveNode places an existing node at p. Edges, ids and designations are
// unaffected, but the graph counts as edited.
//
// Returns an error wrapping ErrInvalidArgument if id is not a member.
func (g *Graph) MoveNode(id NodeID, p Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes.Get(id)
	if !ok {
		return fmt.Errorf("%w: node %d is not in the graph", ErrInvalidArgument, id)
	}
	n.Coord = p
	g.touch()

	return nil
}

// HasNode reports whether id names a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(id)

	return ok
}

// Node returns a copy of the node named by id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes.Get(id)
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}

	return out
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}

// NextID returns the id the next AddNode will assign.
func (g *Graph) NextID() NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nextID
}

// SetSource designates id as the source. The node must be a member of the
// graph; otherwise an error wrapping ErrInvalidArgument is returned and the
// graph is left untouched.
func (g *Graph) SetSource(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes.Get(id); !ok {
		return fmt.Errorf("%w: source node %d is not in the graph", ErrInvalidArgument, id)
	}
	g.source = id
	g.touch()

	return nil
}

// SetDestination designates id as the destination, with the same membership
// rule as SetSource.
func (g *Graph) SetDestination(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes.Get(id); !ok {
		return fmt.Errorf("%w: destination node %d is not in the graph", ErrInvalidArgument, id)
	}
	g.destination = id
	g.touch()

	return nil
}

// Source returns the designated source; ok is false when none is set.
func (g *Graph) Source() (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.source, g.source != NoNode
}

// Destination returns the designated destination; ok is false when none is set.
func (g *Graph) Destination() (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.destination, g.destination != NoNode
}

// IsNodeReachable reports whether id is an endpoint of at least one edge.
// This is incidence, not connectivity to the source.
// Complexity: O(E)
func (g *Graph) IsNodeReachable(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.incidentLocked(id)
}

func (g *Graph) incidentLocked(id NodeID) bool {
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Contains(id) {
			return true
		}
	}

	return false
}

// IDs extracts the ids of nodes, preserving order.
func IDs(nodes []Node) []NodeID {
	out := make([]NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
