package graph

import "fmt"

// Graph is an immutable undirected multigraph built from an edge list.
//
// Dense indices are assigned in first-appearance order while scanning the
// edges (A before B). incident[v] lists the edges touching v in the order
// they were supplied, which fixes the tie-break order used by trail search.
type Graph struct {
	edges    []Edge       // caller order, caller identifiers
	ends     [][2]int     // dense endpoints per edge
	nodes    []Node       // dense -> caller identifier
	index    map[Node]int // caller identifier -> dense
	incident [][]Incidence
	degree   []int
}

// Build normalizes edges into a Graph.
// Returns ErrInvalidGraph if edges is empty. The input slice is copied.
// Complexity: O(E) time, O(V+E) memory.
func Build(edges []Edge) (*Graph, error) {
	// 1. Reject an empty drawing: nothing to traverse.
	if len(edges) == 0 {
		return nil, ErrInvalidGraph
	}

	g := &Graph{
		edges: append([]Edge(nil), edges...),
		ends:  make([][2]int, len(edges)),
		index: make(map[Node]int, len(edges)+1),
	}

	// 2. Assign dense indices in first-appearance order.
	var i int
	var e Edge
	for i, e = range g.edges {
		g.ends[i] = [2]int{g.intern(e.A), g.intern(e.B)}
	}

	// 3. Fill incidence lists in edge order. A self-loop is listed once
	//    but still contributes two to the degree.
	g.incident = make([][]Incidence, len(g.nodes))
	g.degree = make([]int, len(g.nodes))
	var a, b int
	for i = range g.ends {
		a, b = g.ends[i][0], g.ends[i][1]
		g.incident[a] = append(g.incident[a], Incidence{Edge: i, To: b})
		g.degree[a]++
		g.degree[b]++
		if a != b {
			g.incident[b] = append(g.incident[b], Incidence{Edge: i, To: a})
		}
	}

	return g, nil
}

// intern returns the dense index of n, assigning the next one if unseen.
func (g *Graph) intern(n Node) int {
	if d, ok := g.index[n]; ok {
		return d
	}
	d := len(g.nodes)
	g.index[n] = d
	g.nodes = append(g.nodes, n)

	return d
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, parallel edges counted separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the i-th edge in caller order.
// It panics if i is out of range, like a slice index.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge list in caller order.
func (g *Graph) Edges() []Edge { return append([]Edge(nil), g.edges...) }

// Ends returns the dense endpoints of the i-th edge.
func (g *Graph) Ends(i int) (a, b int) { return g.ends[i][0], g.ends[i][1] }

// Node returns the caller identifier for dense index d.
func (g *Graph) Node(d int) Node { return g.nodes[d] }

// Nodes returns all caller identifiers ordered by dense index.
func (g *Graph) Nodes() []Node { return append([]Node(nil), g.nodes...) }

// Index returns the dense index of n.
func (g *Graph) Index(n Node) (int, error) {
	d, ok := g.index[n]
	if !ok {
		return 0, fmt.Errorf("graph: Index(%d): %w", n, ErrNodeNotFound)
	}

	return d, nil
}

// Incident returns the incidence list of dense node d in edge order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Incident(d int) []Incidence { return g.incident[d] }

// Degree returns the degree of dense node d; a self-loop counts twice.
func (g *Graph) Degree(d int) int { return g.degree[d] }
