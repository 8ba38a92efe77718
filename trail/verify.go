package trail

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

// Verify checks that t is a trail of g using every edge exactly once:
// len(t) == EdgeCount+1 and the multiset of consecutive pairs equals the
// multiset of edges, in either traversal direction.
// Complexity: O(E·d) where d is the maximum degree.
func Verify(g *graph.Graph, t Trail) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(t) != g.EdgeCount()+1 {
		return fmt.Errorf("trail: length %d, want %d: %w", len(t), g.EdgeCount()+1, ErrInvalidTrail)
	}

	used := make([]bool, g.EdgeCount())
	var (
		i, from, to int
		err         error
		inc         graph.Incidence
		matched     bool
	)
	for i = 0; i+1 < len(t); i++ {
		if from, err = g.Index(t[i]); err != nil {
			return fmt.Errorf("trail: step %d: %w: %w", i, ErrInvalidTrail, err)
		}
		if to, err = g.Index(t[i+1]); err != nil {
			return fmt.Errorf("trail: step %d: %w: %w", i, ErrInvalidTrail, err)
		}

		// Parallel edges are interchangeable, so the first unused match is fine.
		matched = false
		for _, inc = range g.Incident(from) {
			if inc.To == to && !used[inc.Edge] {
				used[inc.Edge] = true
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("trail: step %d (%d-%d) has no unused edge: %w", i, t[i], t[i+1], ErrInvalidTrail)
		}
	}

	return nil
}
