// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Point, Graph declarations, sentinel errors and NewGraph.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a node handle that is not a member of the graph
	// was passed where membership is required (SetSource, SetDestination).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrEdgeNotFound indicates no edge joins the requested endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight outside 1..MaxWeight was supplied.
	ErrBadWeight = errors.New("core: edge weight out of range")
)

// NodeID is the stable handle of a Node inside its Graph.
type NodeID int

const (
	// NoNode is the zero handle; it never names a node.
	NoNode NodeID = 0

	// InitialNodeID is the id given to the first node of a fresh or cleared Graph.
	InitialNodeID NodeID = 1

	// DefaultWeight is used for edges created without an explicit weight.
	DefaultWeight int64 = 1

	// MaxWeight is the largest accepted edge weight. Path sums over any graph
	// that fits in memory stay far below math.MaxInt64, which callers use as
	// the unreached distance.
	MaxWeight int64 = math.MaxInt32
)

// Point is a plane coordinate. The core only stores it; layout and overlap
// rules belong to whoever draws the graph.
type Point struct {
	X, Y int
}

// Node is a vertex of the graph.
type Node struct {
	// ID is assigned by Graph.AddNode and is unique for the graph's lifetime.
	ID NodeID

	// Coord is where the node was placed.
	Coord Point
}

// String implements fmt.Stringer.
func (n Node) String() string { return fmt.Sprintf("Node %d", n.ID) }

// Edge is an undirected, weighted connection between two nodes.
type Edge struct {
	One    NodeID
	Two    NodeID
	Weight int64
}

// EdgeOption configures an Edge built by NewEdge.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight.
func WithWeight(w int64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// NewEdge returns an edge joining one and two with DefaultWeight unless
// overridden by options.
func NewEdge(one, two NodeID, opts ...EdgeOption) Edge {
	e := Edge{One: one, Two: two, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// Equal reports whether e and o join the same pair of nodes, in either order.
// Weights are not compared.
func (e Edge) Equal(o Edge) bool {
	return (e.One == o.One && e.Two == o.Two) || (e.One == o.Two && e.Two == o.One)
}

// Contains reports whether id is one of the edge's endpoints.
func (e Edge) Contains(id NodeID) bool {
	return id != NoNode && (e.One == id || e.Two == id)
}

// Other returns the endpoint opposite to id. ok is false when id is not an
// endpoint of e.
func (e Edge) Other(id NodeID) (other NodeID, ok bool) {
	switch {
	case id == NoNode:
		return NoNode, false
	case e.One == id:
		return e.Two, true
	case e.Two == id:
		return e.One, true
	default:
		return NoNode, false
	}
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	return fmt.Sprintf("Edge ~ %d - %d", e.One, e.Two)
}

// edgeKey is the order-insensitive identity of an edge.
type edgeKey struct {
	lo, hi NodeID
}

func keyOf(one, two NodeID) edgeKey {
	if one > two {
		one, two = two, one
	}

	return edgeKey{lo: one, hi: two}
}

// Graph is the mutable container edited by hand and read by solvers and
// renderers.
//
// nodes and edges are insertion-ordered tables; mu guards every field.
type Graph struct {
	mu sync.RWMutex

	nextID NodeID // id handed to the next AddNode
	rev    uint64 // bumped by every mutation

	nodes *orderedmap.OrderedMap[NodeID, *Node]
	edges *orderedmap.OrderedMap[edgeKey, *Edge]

	source      NodeID
	destination NodeID
	solved      bool
}

// NewGraph returns an empty graph whose next node id is InitialNodeID.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nextID: InitialNodeID,
		nodes:  orderedmap.New[NodeID, *Node](),
		edges:  orderedmap.New[edgeKey, *Edge](),
	}
}

// touch records a mutation. Caller holds mu for writing.
func (g *Graph) touch() {
	g.rev++
	g.solved = false
}
