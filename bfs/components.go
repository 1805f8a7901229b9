// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/pathboard/core"

// Components partitions g into connected components. Components are ordered
// by their first node in insertion order; each lists its nodes in BFS order
// from that node. A nil graph has no components.
func Components(g *core.Graph) [][]core.NodeID {
	if g == nil {
		return nil
	}
	seen := make(map[core.NodeID]bool, g.NodeCount())
	var out [][]core.NodeID
	for _, n := range g.Nodes() {
		if seen[n.ID] {
			continue
		}
		res, err := BFS(g, n.ID)
		if err != nil {
			// node vanished under a concurrent delete
			continue
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, res.Order)
	}

	return out
}

// Disconnected lists, in insertion order, the nodes that have no path to
// from. If from is not in g every node is listed.
func Disconnected(g *core.Graph, from core.NodeID) []core.NodeID {
	if g == nil {
		return nil
	}
	var reached *Result
	if g.HasNode(from) {
		reached, _ = BFS(g, from)
	}

	out := []core.NodeID{}
	for _, n := range g.Nodes() {
		if reached == nil || !reached.Reached(n.ID) {
			out = append(out, n.ID)
		}
	}

	return out
}
