// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an exhausted strategy.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape is returned by Shape for an unregistered shape name.
var ErrUnknownShape = errors.New("builder: unknown shape")
