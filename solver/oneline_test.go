package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/solver"
	"github.com/katalvlaran/onestroke/trail"
)

const envelopeEdges = "0,1/1,2/2,3/3,0/0,2/1,3/3,4/4,2"

func TestOneLine(t *testing.T) {
	tests := []struct {
		name  string
		edges string
		start int
		max   int
		want  string
	}{
		{"triangle", "0,1/1,2/2,0", 0, 10, "0,1,2,0"},
		{"disconnected", "0,1/2,3", 0, 10, ""},
		{"single edge", "0,1", 0, 1, "0,1"},
		{"envelope first three", envelopeEdges, 0, 3,
			"0,1,2,3,0,2,4,3,1/0,1,2,3,4,2,0,3,1/0,1,2,0,3,2,4,3,1"},
		{"dead start", envelopeEdges, 2, 10, ""},
		{"zero max", "0,1/1,2/2,0", 0, 0, ""},
		{"parallel edges keep duplicates", "0,1/0,1/0,1", 0, 5, "0,1,0,1/0,1,0,1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := solver.OneLine(tc.edges, tc.start, tc.max)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOneLine_Orientation(t *testing.T) {
	got, err := solver.OneLine("0,1/1,2/2,0", 0, 10, trail.WithOrientation(trail.Both))
	require.NoError(t, err)
	assert.Equal(t, "0,1,2,0/1,0,2,1", got)

	got, err = solver.OneLine("0,0/0,1", 1, 10, trail.WithOrientation(trail.Reverse))
	require.NoError(t, err)
	assert.Equal(t, "1,0,0", got)
}

func TestOneLine_Errors(t *testing.T) {
	_, err := solver.OneLine("", 0, 1)
	assert.ErrorIs(t, err, graph.ErrInvalidGraph)

	_, err = solver.OneLine("0,1/", 0, 1)
	assert.ErrorIs(t, err, codec.ErrSyntax)

	_, err = solver.OneLine("0,1/1,2", 2, 1)
	assert.ErrorIs(t, err, trail.ErrInvalidStart)
}
