package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

// ErrSyntax wraps every parse failure; the underlying participle or strconv
// error is kept in the chain.
var ErrSyntax = errors.New("codec: syntax error")

const (
	edgeSep = "/"
	nodeSep = ","
)

// ParseEdges decodes "a,b/c,d/..." into an edge list in input order.
// An empty string yields a nil list and no error.
func ParseEdges(s string) ([]graph.Edge, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	ast, err := parseEdgeList.ParseString("edges", s)
	if err != nil {
		return nil, fmt.Errorf("codec: ParseEdges: %w: %w", ErrSyntax, err)
	}

	out := make([]graph.Edge, len(ast.Edges))
	var a, b int
	for i, p := range ast.Edges {
		if a, err = strconv.Atoi(p.From); err != nil {
			return nil, fmt.Errorf("codec: ParseEdges: edge %d: %w: %w", i, ErrSyntax, err)
		}
		if b, err = strconv.Atoi(p.To); err != nil {
			return nil, fmt.Errorf("codec: ParseEdges: edge %d: %w: %w", i, ErrSyntax, err)
		}
		out[i] = graph.Edge{A: graph.Node(a), B: graph.Node(b)}
	}

	return out, nil
}

// FormatEdges encodes edges as "a,b/c,d/...".
func FormatEdges(edges []graph.Edge) string {
	var sb strings.Builder
	for i, e := range edges {
		if i > 0 {
			sb.WriteString(edgeSep)
		}
		sb.WriteString(strconv.Itoa(int(e.A)))
		sb.WriteString(nodeSep)
		sb.WriteString(strconv.Itoa(int(e.B)))
	}

	return sb.String()
}

// ParseTrails decodes "n0,n1,.../m0,m1,..." into trails.
// An empty string (zero solutions) yields a nil list and no error.
func ParseTrails(s string) ([]trail.Trail, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	ast, err := parseTrailList.ParseString("trails", s)
	if err != nil {
		return nil, fmt.Errorf("codec: ParseTrails: %w: %w", ErrSyntax, err)
	}

	out := make([]trail.Trail, len(ast.Trails))
	var n int
	for i, run := range ast.Trails {
		t := make(trail.Trail, len(run.Nodes))
		for j, raw := range run.Nodes {
			if n, err = strconv.Atoi(raw); err != nil {
				return nil, fmt.Errorf("codec: ParseTrails: trail %d: %w: %w", i, ErrSyntax, err)
			}
			t[j] = graph.Node(n)
		}
		out[i] = t
	}

	return out, nil
}

// FormatTrail encodes one trail as "n0,n1,...".
func FormatTrail(t trail.Trail) string {
	var sb strings.Builder
	writeTrail(&sb, t)

	return sb.String()
}

// FormatTrails encodes trails joined by "/"; no trails gives "".
func FormatTrails(ts []trail.Trail) string {
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(edgeSep)
		}
		writeTrail(&sb, t)
	}

	return sb.String()
}

func writeTrail(sb *strings.Builder, t trail.Trail) {
	for i, n := range t {
		if i > 0 {
			sb.WriteString(nodeSep)
		}
		sb.WriteString(strconv.Itoa(int(n)))
	}
}
