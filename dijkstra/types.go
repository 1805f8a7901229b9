// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/core"
)

// Infinity is the tentative distance of a node no path has reached yet.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrIllegalState indicates Run was called on a graph that failed validation.
	ErrIllegalState = errors.New("dijkstra: graph failed validation")

	// ErrSourceMissing indicates the graph has no source.
	ErrSourceMissing = errors.New("dijkstra: source missing")

	// ErrDestinationMissing indicates the graph has no destination.
	ErrDestinationMissing = errors.New("dijkstra: destination missing")

	// ErrUnreachableNode indicates some node is not incident to any edge.
	ErrUnreachableNode = errors.New("dijkstra: unreachable node present")
)

// Reason names the validation rule a graph failed.
type Reason int

const (
	// ReasonNone means the graph passed validation.
	ReasonNone Reason = iota
	// ReasonSourceMissing means no source is designated.
	ReasonSourceMissing
	// ReasonDestinationMissing means no destination is designated.
	ReasonDestinationMissing
	// ReasonUnreachableNode means a node touches no edge.
	ReasonUnreachableNode
)

// String returns the human-readable reason shown to users.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonSourceMissing:
		return "source missing"
	case ReasonDestinationMissing:
		return "destination missing"
	case ReasonUnreachableNode:
		return "unreachable node present"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for r, or nil for ReasonNone.
func (r Reason) Err() error {
	switch r {
	case ReasonSourceMissing:
		return ErrSourceMissing
	case ReasonDestinationMissing:
		return ErrDestinationMissing
	case ReasonUnreachableNode:
		return ErrUnreachableNode
	default:
		return nil
	}
}

// StateError is returned by Run when the bound graph failed validation.
type StateError struct {
	Reason Reason
}

// Error implements error.
func (e *StateError) Error() string {
	return "dijkstra: cannot run: " + e.Reason.String()
}

// Is matches ErrIllegalState and the sentinel of the failing rule.
func (e *StateError) Is(target error) bool {
	return target == ErrIllegalState || (target != nil && target == e.Reason.Err())
}

// Run outcomes reported to a Recorder.
const (
	OutcomeSolved   = "solved"
	OutcomeRejected = "rejected"
)

// Recorder receives one observation per Run call.
type Recorder interface {
	ObserveRun(outcome string, elapsed time.Duration)
}

// Options configures an Engine.
type Options struct {
	// Logger is never nil once DefaultOptions has been applied.
	Logger *zap.Logger

	// Recorder, if set, observes every Run.
	Recorder Recorder

	// OnSettle is called once per settled node, in settle order.
	OnSettle func(core.NodeID, int64)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the logger used for validation and run diagnostics.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder registers a Recorder notified after every Run.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// WithOnSettle registers a hook invoked when a node's distance becomes final.
// The source is reported first with distance 0.
func WithOnSettle(fn func(id core.NodeID, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns options with a no-op logger, no recorder and a
// no-op settle hook.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		OnSettle: func(core.NodeID, int64) {},
	}
}
