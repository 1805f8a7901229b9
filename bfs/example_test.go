// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathboard/bfs"
	"github.com/katalvlaran/pathboard/builder"
)

// ExampleBFS demonstrates hop layering on a 3x3 grid.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println("hops to 9:", res.Depth[9])
	// Output:
	// [1 2 4 3 5 7 6 8 9]
	// hops to 9: 4
}

// ExampleDisconnected shows why a graph can validate and still leave nodes
// without a shortest path: the second shape is an island.
func ExampleDisconnected() {
	g, _ := builder.BuildGraph(nil, builder.Path(2), builder.Path(2))
	fmt.Println(bfs.Components(g))
	fmt.Println(bfs.Disconnected(g, 1))
	// Output:
	// [[1 2] [3 4]]
	// [3 4]
}
