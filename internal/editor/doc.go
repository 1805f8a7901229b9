// SPDX-License-Identifier: MIT

// Package editor implements the pathboard command language: one line of text
// per edit or query against a single core.Graph and the most recent
// shortest-path session over it.
//
// Commands
//
//	node X Y          add a node at (X, Y) unless it overlaps another
//	move N X Y        place node N at (X, Y)
//	edge A B [W]      join A and B, weight W (default 1)
//	unlink A B        remove the edge A - B
//	weight A B W      re-weight the edge A - B
//	source N          designate the source (not the destination)
//	dest N            designate the destination (not the source)
//	delete N          remove a node and its edges
//	clear             remove everything and restart ids at 1
//	run               validate and solve from the source
//	dist N            shortest distance to N (after run)
//	path N            shortest path to N (after run)
//	neighbors N       edges touching N
//	nodes | edges     list the graph
//	status            counts, designations and the solved flag
//	check             explain why run would refuse, and what it cannot reach
//	help              this list
//
// Text after '#' is a comment. A failing command never ends a session.
package editor
