// Package graph normalizes a caller-supplied edge list into an immutable
// undirected multigraph with dense integer node indices.
//
// What:
//
//   - Build(edges): remaps arbitrary (possibly sparse) Node identifiers to
//     dense indices 0..N-1 in first-appearance order and records, for every
//     dense node, the incident edges in the order they were supplied.
//   - Parallel edges between the same pair of nodes are distinct entries;
//     each keeps its own edge index so it can be consumed independently.
//   - Self-loops are accepted and appear once in their node's incidence list.
//   - Degree, OddNodes, Connected, HasEulerTrail, HasEulerCircuit offer the
//     classical feasibility tests for a one-stroke drawing.
//
// Why:
//   - Trail search needs O(1) lookup of a node's incident edges and a
//     per-edge "used" marker indexed by position, not by endpoint pair.
//   - Results must still be reported in the caller's identifiers.
//
// Complexity:
//
//   - Build:     Time O(E), Memory O(V+E)
//   - Connected: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrInvalidGraph   the edge list is empty (nothing to traverse)
//   - ErrNodeNotFound   a lookup referenced an unknown identifier
//
// A Graph is never mutated after Build, so it may be shared by concurrent
// readers without locking.
package graph
