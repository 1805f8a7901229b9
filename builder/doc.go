// SPDX-License-Identifier: MIT

// Package builder generates ready-made topologies on a core.Graph so a
// session can start from something more interesting than an empty board.
//
// Every constructor places its nodes on the plane (a line, a circle, a
// lattice) and joins them with edges whose weights come from a WeightFn.
// BuildGraph composes constructors left to right; each one is laid out to the
// right of the previous one so components never overlap.
//
// Determinism:
//
//	Same constructors, same options and same seed produce the same node ids,
//	coordinates, edge order and weights.
//
// Designations:
//
//	The first node added becomes the source (core rule). BuildGraph makes the
//	last node added the destination unless WithoutDestination is given.
//
// Errors:
//
//	ErrTooFewNodes      - size parameter below the constructor's minimum.
//	ErrConstructFailed  - nil constructor or an edge the graph refused.
//	ErrUnknownShape     - FromShape got a name it does not know.
package builder
