package main

import (
	"errors"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
)

var errNoInput = errors.New("give an edge list argument or --shape, not both")

// shapeFlags selects a builder fixture instead of an edge list argument.
type shapeFlags struct {
	shape   string
	doubled bool
	offset  int
}

func (sf shapeFlags) options() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if sf.doubled {
		opts = append(opts, builder.WithDoubled())
	}
	if sf.offset > 0 {
		opts = append(opts, builder.WithOffset(sf.offset))
	}

	return opts
}

// edges resolves the drawing from either args[0] or the shape flags.
func (sf shapeFlags) edges(args []string) ([]graph.Edge, error) {
	switch {
	case sf.shape != "" && len(args) == 0:
		cons, err := builder.Shape(sf.shape)
		if err != nil {
			return nil, err
		}
		return builder.Build(sf.options(), cons)
	case sf.shape == "" && len(args) == 1:
		return codec.ParseEdges(args[0])
	default:
		return nil, errNoInput
	}
}
