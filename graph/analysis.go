package graph

// OddNodes returns the caller identifiers of all odd-degree nodes in dense
// order. An undirected graph always has an even number of them.
func (g *Graph) OddNodes() []Node {
	var odd []Node
	for d, deg := range g.degree {
		if deg%2 == 1 {
			odd = append(odd, g.nodes[d])
		}
	}

	return odd
}

// Connected reports whether every edge lies in a single connected component.
// Every node of a Graph touches at least one edge, so this is plain node
// connectivity. Iterative DFS from dense node 0.
// Complexity: O(V+E) time, O(V) memory.
func (g *Graph) Connected() bool {
	seen := make([]bool, len(g.nodes))
	stack := make([]int, 0, len(g.nodes))
	stack = append(stack, 0)
	seen[0] = true
	reached := 1

	var v int
	var inc Incidence
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, inc = range g.incident[v] {
			if !seen[inc.To] {
				seen[inc.To] = true
				reached++
				stack = append(stack, inc.To)
			}
		}
	}

	return reached == len(g.nodes)
}

// HasEulerTrail reports whether some trail uses every edge exactly once:
// the graph is connected and has zero or two odd-degree nodes.
func (g *Graph) HasEulerTrail() bool {
	odd := len(g.OddNodes())

	return (odd == 0 || odd == 2) && g.Connected()
}

// HasEulerCircuit reports whether a closed trail uses every edge exactly once.
func (g *Graph) HasEulerCircuit() bool {
	return len(g.OddNodes()) == 0 && g.Connected()
}
