// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the constructor name
// and parameters with %w.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is smaller
// than the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not proceed: a nil
// constructor was supplied or the graph refused an edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape indicates FromShape was given an unsupported shape name.
var ErrUnknownShape = errors.New("builder: unknown shape")
