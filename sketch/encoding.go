package sketch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

// Encoding is a numbered snapshot of a sketch. Node i of Edges is IDs[i].
type Encoding struct {
	Edges string   `json:"edges"`
	IDs   []string `json:"ids"`
}

// Path is a trail expressed in node identifiers.
type Path []string

// String renders the path as "a -> b -> c".
func (p Path) String() string { return strings.Join(p, " -> ") }

// Summary is the presentation of one solution.
type Summary struct {
	Steps int    `json:"steps"`
	Path  string `json:"path"`
}

// Summarize returns the number of nodes visited and the arrow text of p.
func (p Path) Summarize() Summary {
	return Summary{Steps: len(p), Path: p.String()}
}

// Encode validates the sketch and numbers its nodes in insertion order.
func (s *Sketch) Encode() (Encoding, error) {
	if err := s.Validate(); err != nil {
		return Encoding{}, err
	}

	num := make(map[string]graph.Node, len(s.order))
	for i, id := range s.order {
		num[id] = graph.Node(i)
	}
	edges := make([]graph.Edge, len(s.lines))
	for i, l := range s.lines {
		edges[i] = graph.Edge{A: num[l.From], B: num[l.To]}
	}

	return Encoding{Edges: codec.FormatEdges(edges), IDs: append([]string(nil), s.order...)}, nil
}

// Decode maps integer trails back to node identifiers.
func (e Encoding) Decode(trails []trail.Trail) ([]Path, error) {
	out := make([]Path, len(trails))
	for i, t := range trails {
		p := make(Path, len(t))
		for j, n := range t {
			if n < 0 || int(n) >= len(e.IDs) {
				return nil, fmt.Errorf("sketch: Decode: node %d: %w", n, ErrUnknownNode)
			}
			p[j] = e.IDs[n]
		}
		out[i] = p
	}

	return out, nil
}

// DecodeString parses a "n0,n1/m0,m1" trail list and decodes it.
// The empty string yields no paths.
func (e Encoding) DecodeString(s string) ([]Path, error) {
	trails, err := codec.ParseTrails(s)
	if err != nil {
		return nil, err
	}

	return e.Decode(trails)
}
