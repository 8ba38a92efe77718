// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_random_sparse.go - Erdős–Rényi-like sampling.
//
// Determinism: pairs are tried for i asc, j>i asc; one rng draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each pair {i,j} of n nodes with probability p.
// Requires WithSeed or WithRand. The result may be empty or disconnected.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(dst *[]graph.Edge, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					cfg.emit(dst, i, j)
				}
			}
		}

		return nil
	}
}
