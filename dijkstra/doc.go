// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// that was built by hand, and answers distance and path queries for display.
//
// Session model:
//
//   - New binds an Engine to a snapshot of the graph taken at construction
//     time; later edits to the graph are not observed by that Engine.
//   - New validates the snapshot immediately. The outcome is available via
//     Safe() and Reason().
//   - Run computes distances and predecessors from the graph's source and
//     caches the path of every node. On success it marks the bound graph
//     solved, but only if the graph was not edited since the snapshot.
//
// Validation rules, in order, first failure wins:
//
//  1. the source is set              (ReasonSourceMissing)
//  2. the destination is set         (ReasonDestinationMissing)
//  3. every node touches some edge   (ReasonUnreachableNode)
//
// Rule 3 is incidence, not connectivity. A graph holding a single node with
// no edges is rejected even when source == destination, and a graph made of
// two separate components passes; nodes outside the source's component keep
// no distance and an empty path after Run.
//
// Algorithm:
//
//   - The source gets distance 0 and is settled first; its direct neighbors
//     are seeded in edge insertion order before the main loop.
//   - A min-heap ordered by (distance, insertion sequence) drives the loop.
//     Improvements re-insert the node and stale entries are skipped when
//     popped ("lazy decrease-key").
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrNilGraph       from New when the graph is nil.
//   - *StateError       from Run on an unsafe graph; it matches
//     ErrIllegalState and the sentinel of its Reason under errors.Is.
//
// Queries never fail: on an Engine that has not run, distances are absent
// and paths are empty slices.
package dijkstra
