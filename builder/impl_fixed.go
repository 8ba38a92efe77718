// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_fixed.go - fixed puzzle shapes and chord overlays.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

const methodChords = "Chords"

// envelopeEdges is the classic "house" puzzle: square 0-1-2-3 with both
// diagonals and a roof apex 4 over 3 and 2. Nodes 0 and 1 have odd degree.
var envelopeEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{0, 2}, {1, 3},
	{3, 4}, {4, 2},
}

// octahedronEdges: poles 0 and 5 joined to the equator 1-2-3-4.
// Every node has degree 4.
var octahedronEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {2, 3}, {3, 4}, {4, 1},
	{5, 1}, {5, 2}, {5, 3}, {5, 4},
}

// Envelope builds the 5-node, 8-edge "house" drawing.
func Envelope() Constructor {
	return fixed(envelopeEdges)
}

// Octahedron builds the 6-node, 12-edge octahedron graph.
func Octahedron() Constructor {
	return fixed(octahedronEdges)
}

func fixed(pairs [][2]int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		for _, p := range pairs {
			cfg.emit(dst, p[0], p[1])
		}

		return nil
	}
}

// Chords emits the given local index pairs verbatim, in order. Compose it
// after another constructor to overlay extra strokes on shared nodes.
// An odd number of values fails with ErrConstructFailed.
func Chords(pairs ...int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if len(pairs)%2 != 0 {
			return fmt.Errorf("%s: odd number of indices (%d): %w", methodChords, len(pairs), ErrConstructFailed)
		}
		for i := 0; i < len(pairs); i += 2 {
			cfg.emit(dst, pairs[i], pairs[i+1])
		}

		return nil
	}
}
