// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Edges are undirected; weights are ignored.
//   - Result carries Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - OnVisit hook may abort the walk with an error.
//   - WithFilterNeighbor skips individual edges; WithMaxDepth bounds the walk.
//   - Components and Disconnected answer connectivity questions that the
//     shortest-path engine's validation does not: a graph can validate while
//     a whole component stays out of reach of the source.
//
// Determinism
//
//	Neighbors are expanded in the graph's edge insertion order, so the visit
//	sequence is fully reproducible.
//
// Complexity
//
//	O(V + E) time, O(V) extra memory.
//
// Cancellation
//
//	The context is checked once per dequeued node. On cancellation BFS
//	returns the partial result together with ctx.Err().
package bfs
