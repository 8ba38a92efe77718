// Package solver orchestrates trail searches over every starting edge of a
// drawing and exposes the single-invocation boundary function.
//
// OneLine(edges, start, max) is the boundary contract: decode the edge
// string, search from one starting edge, encode the trails ("" for none).
//
// Solver.Solve(ctx, edges) runs the search once per starting edge in index
// order, each invocation capped at the global maximum. It de-duplicates
// trails by node sequence (first occurrence wins), stops once the global
// maximum is reached and truncates to it. An out-of-range start is skipped,
// never fatal. With Workers > 1 invocations run in parallel and are merged
// in start order, so the output equals the sequential output.
//
// Cancellation and the optional Timeout are honored between invocations
// only; a running search always completes. On interruption the trails
// gathered from a contiguous prefix of starting edges are returned along
// with an error wrapping the context error.
package solver
