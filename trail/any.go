package trail

import "github.com/katalvlaran/onestroke/graph"

// Any returns one Euler trail of g without enumerating, using Hierholzer's
// algorithm. The trail starts at the first odd-degree node in dense order,
// or at dense node 0 when every degree is even (a circuit).
//
// Errors: ErrGraphNil, ErrNoTrail when g is disconnected or has more than
// two odd-degree nodes.
// Complexity: O(V + E).
func Any(g *graph.Graph) (Trail, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasEulerTrail() {
		return nil, ErrNoTrail
	}

	start := 0
	for d := 0; d < g.NodeCount(); d++ {
		if g.Degree(d)%2 == 1 {
			start = d
			break
		}
	}

	used := make([]bool, g.EdgeCount())
	cursor := make([]int, g.NodeCount()) // next incidence to inspect per node
	stack := []int{start}
	circuit := make([]int, 0, g.EdgeCount()+1)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		inc := g.Incident(u)
		for cursor[u] < len(inc) && used[inc[cursor[u]].Edge] {
			cursor[u]++
		}
		if cursor[u] == len(inc) {
			// no unused edge left: u is final on this branch
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		in := inc[cursor[u]]
		used[in.Edge] = true
		stack = append(stack, in.To)
	}

	// circuit was emitted back to front
	out := make(Trail, len(circuit))
	for i, d := range circuit {
		out[len(circuit)-1-i] = g.Node(d)
	}

	return out, nil
}
