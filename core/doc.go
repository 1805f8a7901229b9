// SPDX-License-Identifier: MIT

// Package core defines the Graph model edited by hand and solved by the
// dijkstra package: Node, Edge and Graph, plus the identity, source,
// destination and "solved" bookkeeping that ties an editor to a solver.
//
// Identity:
//
//	Nodes are identified by an integer NodeID handed out by the Graph at
//	insertion time, starting at InitialNodeID and strictly increasing for the
//	lifetime of the Graph. Ids are never reused; only Clear resets the counter.
//	Two nodes placed at the same coordinate are still two nodes.
//
// Storage:
//
//	The Graph is an arena: nodes live in an insertion-ordered table keyed by
//	NodeID, and edges refer to their endpoints by NodeID only. Edges are kept
//	in insertion order as well; that order is observable through Edges() and
//	drives the neighbor scan of the shortest-path engine.
//
// Solved flag and revisions:
//
//	Every mutation bumps Revision() and clears Solved(). A solver marks the
//	graph solved through MarkSolved(rev), which only succeeds if nothing
//	changed since the solver took its snapshot.
//
// Concurrency:
//
//	A single sync.RWMutex guards the Graph so a renderer may read while an
//	editor mutates. Algorithms work on a Clone and never hold the lock while
//	computing.
//
// Errors:
//
//	ErrInvalidArgument - source/destination outside the node set.
//	ErrEdgeNotFound    - edge lookup by endpoints failed.
//	ErrBadWeight       - non-positive weight on re-assignment.
package core
