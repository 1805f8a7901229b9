// SPDX-License-Identifier: MIT

package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// Command results reported to a Recorder.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	unknownMetric = "unknown"
)

// Recorder observes engine runs, commands and graph size.
type Recorder interface {
	dijkstra.Recorder
	ObserveCommand(command, result string)
	ObserveGraph(nodes, edges int)
}

// Options configures a Session.
type Options struct {
	Logger   *zap.Logger
	Recorder Recorder
	Graph    *core.Graph

	// NodeRadius is the drawn node radius; see WithNodeRadius.
	NodeRadius int
}

// Option represents a functional option for configuring a Session.
type Option func(*Options)

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder registers a Recorder for commands and engine runs.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// WithGraph edits g instead of a fresh graph.
func WithGraph(g *core.Graph) Option {
	return func(o *Options) {
		if g != nil {
			o.Graph = g
		}
	}
}

// WithNodeRadius refuses to place a node closer than 2*r to another one. The
// default 0 only refuses an occupied coordinate. Negative values are ignored.
func WithNodeRadius(r int) Option {
	return func(o *Options) {
		if r >= 0 {
			o.NodeRadius = r
		}
	}
}

// Session is one editing session. It is not safe for concurrent use; the
// graph it edits is.
type Session struct {
	graph  *core.Graph
	engine *dijkstra.Engine
	log    *zap.Logger
	rec    Recorder
	radius int
}

// NewSession returns a session over an empty graph unless WithGraph is given.
func NewSession(opts ...Option) *Session {
	o := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Graph == nil {
		o.Graph = core.NewGraph()
	}

	return &Session{graph: o.Graph, log: o.Logger, rec: o.Recorder, radius: o.NodeRadius}
}

// Graph returns the edited graph.
func (s *Session) Graph() *core.Graph { return s.graph }

// Engine returns the engine created by the last run, or nil.
func (s *Session) Engine() *dijkstra.Engine { return s.engine }

// Execute runs one command line and returns its output. Blank lines and
// comments yield ("", nil).
func (s *Session) Execute(line string) (string, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, fields[0])
		s.record(unknownMetric, err)

		return "", err
	}

	var (
		out string
		err error
	)
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		err = fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	} else {
		out, err = cmd.run(s, args)
	}
	s.record(cmd.name, err)

	return out, err
}

// Replay executes every line of r, writing each command's output to w.
// It stops at the first failure unless keepGoing is set, in which case all
// failures are returned joined. Errors carry their 1-based line number.
func (s *Session) Replay(r io.Reader, w io.Writer, keepGoing bool) error {
	sc := bufio.NewScanner(r)
	var errs []error
	for n := 1; sc.Scan(); n++ {
		out, err := s.Execute(sc.Text())
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", n, err)
			if !keepGoing {
				return err
			}
			errs = append(errs, err)
		}
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Session) record(name string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
		s.log.Warn("command failed", zap.String("command", name), zap.Error(err))
	} else {
		s.log.Debug("command", zap.String("command", name), zap.Uint64("revision", s.graph.Revision()))
	}
	if s.rec != nil {
		s.rec.ObserveCommand(name, result)
		s.rec.ObserveGraph(s.graph.NodeCount(), s.graph.EdgeCount())
	}
}
