// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/onestroke/graph"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node identifier generator: index -> graph.Node.
// Panics on nil.
func WithIDScheme(fn func(int) graph.Node) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithOffset shifts every local index by k before the ID scheme applies.
// Use it to compose disjoint pieces. Panics on k < 0.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithOffset(k<0)")
	}
	return func(c *builderConfig) {
		c.offset = k
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDoubled emits every edge twice (tree-doubling), so each node has even
// degree and a connected result always admits a closed one-stroke drawing.
func WithDoubled() BuilderOption {
	return func(c *builderConfig) {
		c.doubled = true
	}
}
