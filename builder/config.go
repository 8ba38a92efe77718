// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn    = identity + offset (0)
//   • rng     = nil (pure/deterministic unless seeded)
//   • doubled = false

package builder

import (
	"math/rand"

	"github.com/katalvlaran/onestroke/graph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Node identifier strategy: local index -> graph.Node.
	idFn func(int) graph.Node
	// Added to every local index before idFn.
	offset int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Emit each edge twice.
	doubled bool
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    identityID,
		offset:  0,
		rng:     nil,
		doubled: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// identityID maps local index i to node i.
func identityID(i int) graph.Node {
	return graph.Node(i)
}

// node resolves local index i to its node identifier.
func (c builderConfig) node(i int) graph.Node {
	return c.idFn(c.offset + i)
}

// emit appends the edge (u,v), twice when doubled.
func (c builderConfig) emit(dst *[]graph.Edge, u, v int) {
	e := graph.Edge{A: c.node(u), B: c.node(v)}
	*dst = append(*dst, e)
	if c.doubled {
		*dst = append(*dst, e)
	}
}
