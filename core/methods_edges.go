// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/DeleteEdge/SetEdgeWeight/Edge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges in insertion order; re-weighting keeps an edge's position.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddEdge inserts e unless an equal edge (same endpoints in either order) is
// already present, and reports whether it was inserted.
//
// A zero weight means "unspecified" and is stored as DefaultWeight. Negative
// weights, weights above MaxWeight and self-loops are refused (false). Endpoint membership is not
// checked; callers hand in handles they obtained from this graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) bool {
	if e.One == e.Two || e.Weight < 0 || e.Weight > MaxWeight {
		return false
	}
	if e.Weight == 0 {
		e.Weight = DefaultWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	k := keyOf(e.One, e.Two)
	if _, exists := g.edges.Get(k); exists {
		return false
	}
	g.edges.Set(k, &e)
	g.touch()

	return true
}

// DeleteEdge removes the edge joining one and two, in either order, and
// reports whether one was removed.
func (g *Graph) DeleteEdge(one, two NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges.Delete(keyOf(one, two)); !ok {
		return false
	}
	g.touch()

	return true
}

// SetEdgeWeight re-assigns the weight of the edge joining one and two.
//
// Errors:
//   - ErrBadWeight if w <= 0 or w > MaxWeight.
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph) SetEdgeWeight(one, two NodeID, w int64) error {
	if w <= 0 || w > MaxWeight {
		return fmt.Errorf("%w: got %d", ErrBadWeight, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges.Get(keyOf(one, two))
	if !ok {
		return fmt.Errorf("%w: %d - %d", ErrEdgeNotFound, one, two)
	}
	e.Weight = w
	g.touch()

	return nil
}

// Edge returns a copy of the edge joining one and two.
func (g *Graph) Edge(one, two NodeID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges.Get(keyOf(one, two))
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges.Len())
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Len()
}

// IncidentEdges returns the edges touching id, in insertion order.
// Complexity: O(E)
func (g *Graph) IncidentEdges(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Contains(id) {
			out = append(out, *pair.Value)
		}
	}

	return out
}
