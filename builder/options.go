// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (nil RNG,
//     nil weight function, non-positive spacing). Constructors never panic.
//   - Later options override earlier ones.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathboard/core"
)

// Deterministic defaults.
const (
	defaultSpacing = 60 // distance between neighboring nodes on the plane
)

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	rng         *rand.Rand
	weightFn    WeightFn
	origin      core.Point
	spacing     int
	destination bool
}

// Option customizes graph construction.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		weightFn:    DefaultWeightFn,
		spacing:     defaultSpacing,
		destination: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithOrigin sets the top-left corner of the first constructor's layout.
func WithOrigin(p core.Point) Option {
	return func(c *config) { c.origin = p }
}

// WithSpacing sets the distance between neighboring nodes. Panics if d <= 0.
func WithSpacing(d int) Option {
	if d <= 0 {
		panic("builder: WithSpacing requires d > 0")
	}

	return func(c *config) { c.spacing = d }
}

// WithoutDestination leaves the destination unset after construction.
func WithoutDestination() Option {
	return func(c *config) { c.destination = false }
}
