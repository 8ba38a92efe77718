// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_basic.go - Path, Cycle, Star, Wheel, Complete.
//
// Emission order is fixed per constructor and documented below; it decides
// the tie-break order of the trail search.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelRim      = 3
	minCompleteNodes = 2
)

// Path builds P_n: edges i-(i+1) for i = 0..n-2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			cfg.emit(dst, i, i+1)
		}

		return nil
	}
}

// Cycle builds C_n: edges i-(i+1)%n for i = 0..n-1.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.emit(dst, i, (i+1)%n)
		}

		return nil
	}
}

// Star builds a hub 0 with leaves 1..n-1: edges 0-i.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			cfg.emit(dst, 0, i)
		}

		return nil
	}
}

// Wheel builds a rim C_rim on 0..rim-1 followed by spokes from hub rim to
// every rim node. Total rim+1 nodes and 2·rim edges.
// Complexity: O(rim).
func Wheel(rim int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if rim < minWheelRim {
			return fmt.Errorf("%s: rim=%d < min=%d: %w", methodWheel, rim, minWheelRim, ErrTooFewVertices)
		}
		for i := 0; i < rim; i++ {
			cfg.emit(dst, i, (i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			cfg.emit(dst, rim, i)
		}

		return nil
	}
}

// Complete builds K_n with pairs {i,j}, i<j, in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.emit(dst, i, j)
			}
		}

		return nil
	}
}
