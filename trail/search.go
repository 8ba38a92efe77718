package trail

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

// searcher owns the mutable state of one Search call.
type searcher struct {
	g         *graph.Graph // read-only input
	opts      Options
	max       int     // stop after this many trails
	used      []bool  // per-edge used marker
	remaining int     // unused edge count
	odd       []bool  // per-node parity of the unused degree
	oddCount  int     // nodes with odd unused degree
	path      []int   // dense node path, cap E+1
	out       []Trail // recorded trails
	stats     *Stats

	// reachability scratch, reused across calls to reachable
	stamp     int
	nodeStamp []int
	edgeStamp []int
	stack     []int
}

// Search enumerates up to max trails of g whose first step is the edge with
// index start. Trails are returned in discovery order, which is fully
// determined by the edge order given to graph.Build.
//
// max <= 0 yields an empty result without searching. A start outside
// [0, g.EdgeCount()) fails with ErrInvalidStart. A start from which no full
// trail exists yields an empty result and a nil error.
func Search(g *graph.Graph, start, max int, opts ...Option) ([]Trail, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Nothing requested: no search performed
	if max <= 0 {
		return nil, nil
	}

	// 3. Validate starting edge
	if start < 0 || start >= g.EdgeCount() {
		return nil, fmt.Errorf("trail: Search(start=%d, edges=%d): %w", start, g.EdgeCount(), ErrInvalidStart)
	}

	// 4. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	s := newSearcher(g, max, o)

	// 5. Root the search at the chosen endpoint(s) of the starting edge
	a, b := g.Ends(start)
	switch o.Orientation {
	case Forward:
		s.root(start, a, b)
	case Reverse:
		s.root(start, b, a)
	case Both:
		if !s.root(start, a, b) && a != b {
			s.root(start, b, a)
		}
	}

	return s.out, nil
}

func newSearcher(g *graph.Graph, max int, o Options) *searcher {
	s := &searcher{
		g:         g,
		opts:      o,
		max:       max,
		used:      make([]bool, g.EdgeCount()),
		remaining: g.EdgeCount(),
		path:      make([]int, 0, g.EdgeCount()+1),
		odd:       make([]bool, g.NodeCount()),
		stats:     o.Stats,
	}
	for d := range s.odd {
		if g.Degree(d)%2 == 1 {
			s.odd[d] = true
			s.oddCount++
		}
	}
	if s.stats == nil {
		s.stats = &Stats{}
	}
	if o.Prune == PruneReachability {
		s.nodeStamp = make([]int, g.NodeCount())
		s.edgeStamp = make([]int, g.EdgeCount())
		s.stack = make([]int, 0, g.NodeCount())
	}

	return s
}

// root consumes the starting edge from -> to and explores from to.
// It reports whether the search must stop.
func (s *searcher) root(edge, from, to int) bool {
	s.take(edge)
	s.path = append(s.path[:0], from, to)
	s.stats.Steps++

	stop := s.extend(to)

	s.release(edge)
	s.path = s.path[:0]

	return stop
}

// take marks edge used and updates the unused-degree parities.
func (s *searcher) take(edge int) {
	s.used[edge] = true
	s.remaining--
	a, b := s.g.Ends(edge)
	s.flip(a)
	s.flip(b)
}

// release undoes take.
func (s *searcher) release(edge int) {
	s.used[edge] = false
	s.remaining++
	a, b := s.g.Ends(edge)
	s.flip(a)
	s.flip(b)
}

// flip toggles the parity of d. A self-loop flips its node twice.
func (s *searcher) flip(d int) {
	s.odd[d] = !s.odd[d]
	if s.odd[d] {
		s.oddCount++
	} else {
		s.oddCount--
	}
}

// parityOK reports whether the unused edges can still form a trail starting
// at v: no odd node (a circuit through v) or exactly two with v among them.
func (s *searcher) parityOK(v int) bool {
	return s.oddCount == 0 || (s.oddCount == 2 && s.odd[v])
}

// extend tries every unused edge at frontier v in incidence order and
// restores used/path/remaining after each branch. It reports whether max
// trails have been recorded.
func (s *searcher) extend(v int) bool {
	// Base case: every edge used, the path is a complete trail.
	if s.remaining == 0 {
		s.record()
		return len(s.out) >= s.max
	}

	if !s.parityOK(v) {
		s.stats.Pruned++
		return false
	}
	if s.opts.Prune == PruneReachability && !s.reachable(v) {
		s.stats.Pruned++
		return false
	}

	advanced := false
	var inc graph.Incidence
	for _, inc = range s.g.Incident(v) {
		if s.used[inc.Edge] {
			continue
		}
		advanced = true

		s.take(inc.Edge)
		s.path = append(s.path, inc.To)
		s.stats.Steps++

		stop := s.extend(inc.To)

		s.path = s.path[:len(s.path)-1]
		s.release(inc.Edge)

		if stop {
			return true
		}
	}
	if !advanced {
		s.stats.DeadEnds++
	}

	return false
}

// record copies the current path into caller identifiers.
func (s *searcher) record() {
	t := make(Trail, len(s.path))
	for i, d := range s.path {
		t[i] = s.g.Node(d)
	}
	s.out = append(s.out, t)
	s.stats.Found++
}

// reachable reports whether all unused edges can be reached from v through
// unused edges. Iterative DFS with generation stamps, so the scratch
// buffers are never cleared.
func (s *searcher) reachable(v int) bool {
	s.stamp++
	s.stack = append(s.stack[:0], v)
	s.nodeStamp[v] = s.stamp
	count := 0

	var u int
	var inc graph.Incidence
	for len(s.stack) > 0 {
		u = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		for _, inc = range s.g.Incident(u) {
			if s.used[inc.Edge] {
				continue
			}
			if s.edgeStamp[inc.Edge] != s.stamp {
				s.edgeStamp[inc.Edge] = s.stamp
				count++
			}
			if s.nodeStamp[inc.To] != s.stamp {
				s.nodeStamp[inc.To] = s.stamp
				s.stack = append(s.stack, inc.To)
			}
		}
	}

	return count == s.remaining
}
