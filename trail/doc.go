// Package trail enumerates one-stroke drawings of a graph: orderings of all
// edges that form a single continuous path, each edge used exactly once.
//
// What:
//
//   - Search(g, start, max, opts...): depth-first backtracking rooted at the
//     starting edge. Candidate edges at the frontier are tried in the order
//     they were supplied to graph.Build, so results are reproducible.
//     A branch whose frontier has no unused incident edge while edges remain
//     is a dead end and is abandoned without recording anything.
//     So is a branch whose unused edges fail the parity test: a trail from
//     the frontier needs them to have no odd-degree node, or exactly two
//     with the frontier one of them. The odd count is kept incrementally,
//     so the test costs O(1) per step.
//     The search stops as soon as max trails are recorded.
//   - Verify(g, t): checks that t uses every edge of g exactly once.
//   - Any(g): one trail in linear time (Hierholzer), no enumeration.
//
// Options:
//
//   - WithOrientation(o)  start at endpoint A (Forward, default), B (Reverse)
//     or both in turn (Both).
//   - WithPrune(p)        PruneDeadEnd (default) or PruneReachability, which
//     also abandons a branch when the unused edges reachable from the
//     frontier are fewer than those remaining. Results are identical; only
//     the amount of work differs.
//   - WithStats(s)        collects counters about the explored search tree.
//
// State:
//
//	One used-marker buffer, one parity buffer and one path buffer are
//	allocated per call and restored on backtrack; nothing is shared between
//	calls, so independent searches on the same *graph.Graph may run
//	concurrently.
//
// Complexity:
//
//   - Time:   O(E!) worst case; recursion depth is bounded by E.
//   - Memory: O(V+E) per call plus the recorded trails.
//
// Errors:
//
//   - ErrGraphNil      g is nil
//   - ErrInvalidStart  start is outside [0, EdgeCount)
//   - ErrNoTrail       Any on a graph without an Euler trail
//
// An empty result with a nil error is the normal outcome for a starting edge
// that cannot reach a full trail.
package trail
