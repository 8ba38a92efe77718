// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// api.go - public entry points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

// Constructor appends a deterministic set of edges to dst using the
// resolved builderConfig. Constructors validate parameters before emitting
// anything and return sentinel errors.
type Constructor func(dst *[]graph.Edge, cfg builderConfig) error

// Build resolves bopts and applies all constructors in order, returning the
// combined edge list. The first constructor error is wrapped and returned.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func Build(bopts []BuilderOption, cons ...Constructor) ([]graph.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var out []graph.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&out, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return out, nil
}

// BuildGraph is Build followed by graph.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	edges, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges)
}
