package solver

import (
	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

// OneLine searches edgeStr ("a,b/c,d/...") from the starting edge start and
// returns up to max trails encoded as "n0,n1,.../m0,m1,...". No trail gives
// "" and a nil error.
//
// Errors: codec.ErrSyntax, graph.ErrInvalidGraph, trail.ErrInvalidStart.
func OneLine(edgeStr string, start, max int, opts ...trail.Option) (string, error) {
	edges, err := codec.ParseEdges(edgeStr)
	if err != nil {
		return "", err
	}
	g, err := graph.Build(edges)
	if err != nil {
		return "", err
	}
	res, err := trail.Search(g, start, max, opts...)
	if err != nil {
		return "", err
	}

	return codec.FormatTrails(res), nil
}
