// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for the solved flag, revisions and summary stats.

package core

// Solved reports whether a solver completed on the current revision.
func (g *Graph) Solved() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.solved
}

// Revision returns the mutation counter. It increases on every mutation and
// is never reset, not even by Clear.
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.rev
}

// MarkSolved flags the graph as solved if its revision still equals rev, and
// reports whether it did. A solver passes the revision it snapshotted so a
// result computed on an outdated topology is never advertised as current.
func (g *Graph) MarkSolved(rev uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rev != rev {
		return false
	}
	g.solved = true

	return true
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes       int
	Edges       int
	Source      NodeID // NoNode when unset
	Destination NodeID // NoNode when unset
	Solved      bool
	Revision    uint64
	TotalWeight int64
}

// Stats returns a consistent snapshot of the graph's counters.
// Complexity: O(E) for TotalWeight.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Nodes:       g.nodes.Len(),
		Edges:       g.edges.Len(),
		Source:      g.source,
		Destination: g.destination,
		Solved:      g.solved,
		Revision:    g.rev,
	}
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		s.TotalWeight += pair.Value.Weight
	}

	return s
}
