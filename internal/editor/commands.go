// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathboard/bfs"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

type command struct {
	name    string
	usage   string
	minArgs int
	maxArgs int
	run     func(s *Session, args []string) (string, error)
}

// commands lists every command in help order.
var commands []command

func init() {
	commands = []command{
		{"node", "node X Y", 2, 2, (*Session).addNode},
		{"move", "move N X Y", 3, 3, (*Session).moveNode},
		{"edge", "edge A B [W]", 2, 3, (*Session).addEdge},
		{"unlink", "unlink A B", 2, 2, (*Session).unlink},
		{"weight", "weight A B W", 3, 3, (*Session).reweight},
		{"source", "source N", 1, 1, (*Session).setSource},
		{"dest", "dest N", 1, 1, (*Session).setDestination},
		{"delete", "delete N", 1, 1, (*Session).deleteNode},
		{"clear", "clear", 0, 0, (*Session).clear},
		{"run", "run", 0, 0, (*Session).run},
		{"dist", "dist N", 1, 1, (*Session).distance},
		{"path", "path N", 1, 1, (*Session).path},
		{"neighbors", "neighbors N", 1, 1, (*Session).neighbors},
		{"nodes", "nodes", 0, 0, (*Session).listNodes},
		{"edges", "edges", 0, 0, (*Session).listEdges},
		{"status", "status", 0, 0, (*Session).status},
		{"check", "check", 0, 0, (*Session).check},
		{"help", "help", 0, 0, (*Session).help},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

// Usage returns one usage line per command.
func Usage() []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		out[i] = c.usage
	}

	return out
}

func parseInt(arg, what string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrUsage, what, arg)
	}

	return v, nil
}

// parseWeight accepts an explicit edge weight in 1..core.MaxWeight.
func parseWeight(arg string) (int64, error) {
	w, err := parseInt(arg, "W")
	if err != nil {
		return 0, err
	}
	if w <= 0 || w > core.MaxWeight {
		return 0, fmt.Errorf("%w: %w: W must be in 1..%d, got %d", ErrUsage, core.ErrBadWeight, core.MaxWeight, w)
	}

	return w, nil
}

func parsePoint(xArg, yArg string) (core.Point, error) {
	x, err := parseInt(xArg, "X")
	if err != nil {
		return core.Point{}, err
	}
	y, err := parseInt(yArg, "Y")
	if err != nil {
		return core.Point{}, err
	}

	return core.Point{X: int(x), Y: int(y)}, nil
}

func parseID(arg string) (core.NodeID, error) {
	v, err := parseInt(arg, "node id")
	if err != nil {
		return core.NoNode, err
	}

	return core.NodeID(v), nil
}

func parseIDs(args []string) ([]core.NodeID, error) {
	ids := make([]core.NodeID, len(args))
	for i, a := range args {
		id, err := parseID(a)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}

// existing parses a node id and checks it is in the graph.
func (s *Session) existing(arg string) (core.Node, error) {
	id, err := parseID(arg)
	if err != nil {
		return core.Node{}, err
	}
	n, ok := s.graph.Node(id)
	if !ok {
		return core.Node{}, fmt.Errorf("%w: no node %d", ErrRejected, id)
	}

	return n, nil
}

func describeNode(n core.Node) string {
	return fmt.Sprintf("%s (%d, %d)", n, n.Coord.X, n.Coord.Y)
}

func describeEdge(e core.Edge) string {
	return fmt.Sprintf("%s w=%d", e, e.Weight)
}

func describePath(nodes []core.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.FormatInt(int64(n.ID), 10)
	}

	return strings.Join(parts, " -> ")
}

// overlapping returns the first node other than self that sits on p or whose
// disc would overlap one drawn at p. Touching discs are allowed.
func (s *Session) overlapping(p core.Point, self core.NodeID) (core.NodeID, bool) {
	reach := 2 * int64(s.radius)
	for _, n := range s.graph.Nodes() {
		if n.ID == self {
			continue
		}
		dx, dy := int64(n.Coord.X)-int64(p.X), int64(n.Coord.Y)-int64(p.Y)
		if d2 := dx*dx + dy*dy; d2 == 0 || d2 < reach*reach {
			return n.ID, true
		}
	}

	return core.NoNode, false
}

func (s *Session) addNode(args []string) (string, error) {
	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return "", err
	}
	if id, ok := s.overlapping(p, core.NoNode); ok {
		return "", fmt.Errorf("%w: (%d, %d) overlaps Node %d", ErrRejected, p.X, p.Y, id)
	}
	n := s.graph.AddNode(p)

	return "added " + describeNode(n), nil
}

func (s *Session) moveNode(args []string) (string, error) {
	n, err := s.existing(args[0])
	if err != nil {
		return "", err
	}
	p, err := parsePoint(args[1], args[2])
	if err != nil {
		return "", err
	}
	if id, ok := s.overlapping(p, n.ID); ok {
		return "", fmt.Errorf("%w: (%d, %d) overlaps Node %d", ErrRejected, p.X, p.Y, id)
	}
	if err := s.graph.MoveNode(n.ID, p); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRejected, err)
	}
	n.Coord = p

	return "moved " + describeNode(n), nil
}

func (s *Session) addEdge(args []string) (string, error) {
	a, err := s.existing(args[0])
	if err != nil {
		return "", err
	}
	b, err := s.existing(args[1])
	if err != nil {
		return "", err
	}
	w := core.DefaultWeight
	if len(args) == 3 {
		if w, err = parseWeight(args[2]); err != nil {
			return "", err
		}
	}
	if !s.graph.AddEdge(core.NewEdge(a.ID, b.ID, core.WithWeight(w))) {
		return "", fmt.Errorf("%w: edge %d - %d refused (duplicate or self-loop)", ErrRejected, a.ID, b.ID)
	}
	e, _ := s.graph.Edge(a.ID, b.ID)

	return "added " + describeEdge(e), nil
}

func (s *Session) unlink(args []string) (string, error) {
	ids, err := parseIDs(args)
	if err != nil {
		return "", err
	}
	e, ok := s.graph.Edge(ids[0], ids[1])
	if !ok || !s.graph.DeleteEdge(ids[0], ids[1]) {
		return "", fmt.Errorf("%w: no edge %d - %d", ErrRejected, ids[0], ids[1])
	}

	return "removed " + e.String(), nil
}

func (s *Session) reweight(args []string) (string, error) {
	ids, err := parseIDs(args[:2])
	if err != nil {
		return "", err
	}
	w, err := parseWeight(args[2])
	if err != nil {
		return "", err
	}
	if err := s.graph.SetEdgeWeight(ids[0], ids[1], w); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRejected, err)
	}
	e, _ := s.graph.Edge(ids[0], ids[1])

	return describeEdge(e), nil
}

func (s *Session) setSource(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	if dst, ok := s.graph.Destination(); ok && dst == id {
		return "", fmt.Errorf("%w: Node %d is the destination and can't be the source", ErrRejected, id)
	}
	if err := s.graph.SetSource(id); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRejected, err)
	}

	return fmt.Sprintf("source: Node %d", id), nil
}

func (s *Session) setDestination(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	if src, ok := s.graph.Source(); ok && src == id {
		return "", fmt.Errorf("%w: Node %d is the source and can't be the destination", ErrRejected, id)
	}
	if err := s.graph.SetDestination(id); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRejected, err)
	}

	return fmt.Sprintf("destination: Node %d", id), nil
}

func (s *Session) deleteNode(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	if !s.graph.DeleteNode(id) {
		return "", fmt.Errorf("%w: no node %d", ErrRejected, id)
	}

	return fmt.Sprintf("deleted Node %d", id), nil
}

func (s *Session) clear(_ []string) (string, error) {
	s.graph.Clear()
	s.engine = nil

	return "cleared", nil
}

func (s *Session) run(_ []string) (string, error) {
	e, err := dijkstra.New(s.graph, dijkstra.WithLogger(s.log), dijkstra.WithRecorder(s.rec))
	if err != nil {
		return "", err
	}
	s.engine = e
	if err := e.Run(); err != nil {
		return "", err
	}

	d, ok := e.DestinationDistance()
	if !ok {
		return fmt.Sprintf("solved %d nodes; destination unreachable", s.graph.NodeCount()), nil
	}

	return fmt.Sprintf("solved: distance %d via %s", d, describePath(e.DestinationPath())), nil
}

// solved returns the engine whose results still describe the graph.
func (s *Session) solved() (*dijkstra.Engine, error) {
	if s.engine == nil || !s.engine.Solved() || !s.graph.Solved() {
		return nil, fmt.Errorf("%w: graph not solved (use run)", ErrRejected)
	}

	return s.engine, nil
}

func (s *Session) distance(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	e, err := s.solved()
	if err != nil {
		return "", err
	}
	d, ok := e.Distance(id)
	if !ok {
		return fmt.Sprintf("Node %d: unreachable", id), nil
	}

	return fmt.Sprintf("Node %d: %d", id, d), nil
}

func (s *Session) path(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	e, err := s.solved()
	if err != nil {
		return "", err
	}
	p := e.Path(id)
	if len(p) == 0 {
		return fmt.Sprintf("Node %d: no path", id), nil
	}

	return describePath(p), nil
}

func (s *Session) neighbors(args []string) (string, error) {
	n, err := s.existing(args[0])
	if err != nil {
		return "", err
	}
	var lines []string
	for _, e := range s.graph.IncidentEdges(n.ID) {
		other, _ := e.Other(n.ID)
		lines = append(lines, fmt.Sprintf("Node %d w=%d", other, e.Weight))
	}
	if len(lines) == 0 {
		return fmt.Sprintf("%s has no edges", n), nil
	}

	return strings.Join(lines, "\n"), nil
}

func (s *Session) listNodes(_ []string) (string, error) {
	src, _ := s.graph.Source()
	dst, _ := s.graph.Destination()
	var lines []string
	for _, n := range s.graph.Nodes() {
		line := describeNode(n)
		if n.ID == src {
			line += " [source]"
		}
		if n.ID == dst {
			line += " [dest]"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "no nodes", nil
	}

	return strings.Join(lines, "\n"), nil
}

func (s *Session) listEdges(_ []string) (string, error) {
	var lines []string
	for _, e := range s.graph.Edges() {
		lines = append(lines, describeEdge(e))
	}
	if len(lines) == 0 {
		return "no edges", nil
	}

	return strings.Join(lines, "\n"), nil
}

func designation(id core.NodeID) string {
	if id == core.NoNode {
		return "-"
	}

	return strconv.FormatInt(int64(id), 10)
}

func (s *Session) status(_ []string) (string, error) {
	st := s.graph.Stats()

	return fmt.Sprintf("nodes=%d edges=%d source=%s dest=%s solved=%t revision=%d total_weight=%d",
		st.Nodes, st.Edges, designation(st.Source), designation(st.Destination), st.Solved, st.Revision, st.TotalWeight), nil
}

func (s *Session) check(_ []string) (string, error) {
	e, err := dijkstra.New(s.graph, dijkstra.WithLogger(s.log))
	if err != nil {
		return "", err
	}
	if !e.Safe() {
		return "not runnable: " + e.Reason().String(), nil
	}

	lost := bfs.Disconnected(s.graph, e.Source())
	if len(lost) == 0 {
		return "runnable; every node is connected to the source", nil
	}
	parts := make([]string, len(lost))
	for i, id := range lost {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}

	return fmt.Sprintf("runnable; %d components; no path from source to: %s",
		len(bfs.Components(s.graph)), strings.Join(parts, " ")), nil
}

func (s *Session) help(_ []string) (string, error) {
	return strings.Join(Usage(), "\n"), nil
}
