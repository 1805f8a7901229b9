// Package pathboard is a small workbench for undirected weighted graphs laid
// out on a plane: place nodes, join them, pick a source and a destination,
// and ask for shortest paths.
//
// What is in the box
//
//	• core      – the graph: insertion-ordered nodes and edges, source and
//	              destination, and a revision-checked solved flag
//	• dijkstra  – a shortest-path session bound to a snapshot of a graph:
//	              validation, one Run, then total queries
//	• bfs       – hop-count traversal and connected components
//	• builder   – seeded generators for paths, cycles, stars, grids,
//	              complete graphs and wheels
//	• cmd/pathboard – CLI with a full-screen editor, script replay and demos
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
// With edges added as 1-2, 1-3, 2-4, 3-4, unit weights, source 1 and
// destination 4, Run yields distance 2 and the path 1 → 2 → 4: equal-cost
// ties go to the edge added first.
//
//	go install github.com/katalvlaran/pathboard/cmd/pathboard@latest
package pathboard
