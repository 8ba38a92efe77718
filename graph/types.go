package graph

import "errors"

var (
	// ErrInvalidGraph is returned by Build when the edge list is empty.
	ErrInvalidGraph = errors.New("graph: no edges to traverse")

	// ErrNodeNotFound indicates a lookup by a Node that does not occur in
	// any edge of the graph.
	ErrNodeNotFound = errors.New("graph: node not found")
)

// Node is a caller-assigned node identifier. Identifiers need not be
// contiguous or non-negative; Build remaps them to dense indices.
type Node int

// Edge is an unordered pair of node identifiers. A and B keep the order
// the caller supplied so that traversal direction stays reproducible.
type Edge struct {
	A Node
	B Node
}

// Loop reports whether the edge starts and ends at the same node.
func (e Edge) Loop() bool { return e.A == e.B }

// Other returns the endpoint opposite to n. For a self-loop it returns n.
func (e Edge) Other(n Node) Node {
	if n == e.A {
		return e.B
	}

	return e.A
}

// Incidence ties a dense node to one of its edges.
type Incidence struct {
	// Edge is the index of the edge in the input edge list.
	Edge int

	// To is the dense index of the endpoint reached by traversing Edge.
	To int
}
