// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// Package builder emits deterministic edge lists for well-known drawings
// (paths, cycles, stars, wheels, complete graphs, grids, the "envelope"
// puzzle, the octahedron, random sparse graphs) so that tests, benchmarks,
// the CLI and the HTTP API can feed the trail search with reproducible
// input.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...) resolves options once and runs
//     constructors in order, appending to a single edge list.
//   - Node identifiers come from cfg.idFn (identity plus WithOffset by
//     default), so constructors composed with the same options share nodes
//     and may overlay each other (e.g., Cycle + Chords).
//   - WithDoubled emits every edge twice, making every degree even.
//   - Determinism: same options, seed and constructor order give the same
//     edge list in the same order.
//   - Constructors return sentinel errors; option constructors panic on
//     meaningless input.
//
// Complexity of each constructor is documented at its declaration.
package builder
