package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

func TestAny_Valid(t *testing.T) {
	fixtures := map[string]*graph.Graph{
		"single edge": mustGraph(t, 0, 1),
		"triangle":    mustGraph(t, 0, 1, 1, 2, 2, 0),
		"envelope":    envelope(t),
		"parallel":    mustGraph(t, 0, 1, 0, 1, 0, 1),
		"self loops":  mustGraph(t, 0, 0, 0, 1, 1, 1, 1, 2),
		"sparse ids":  mustGraph(t, 100, -7, -7, 42),
	}
	doubled := map[string]builder.Constructor{
		"octahedron doubled": builder.Octahedron(),
		"wheel doubled":      builder.Wheel(4),
		"cycle doubled":      builder.Cycle(7),
	}
	for name, cons := range doubled {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDoubled()}, cons)
		require.NoError(t, err)
		fixtures[name] = g
	}

	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			tr, err := trail.Any(g)
			require.NoError(t, err)
			assert.NoError(t, trail.Verify(g, tr))
		})
	}
}

func TestAny_StartsAtOddNode(t *testing.T) {
	tr, err := trail.Any(envelope(t))
	require.NoError(t, err)
	assert.Equal(t, graph.Node(0), tr[0])
	assert.Equal(t, graph.Node(1), tr[len(tr)-1])
}

func TestAny_NoTrail(t *testing.T) {
	_, err := trail.Any(mustGraph(t, 0, 1, 2, 3))
	assert.ErrorIs(t, err, trail.ErrNoTrail)

	k4, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	_, err = trail.Any(k4)
	assert.ErrorIs(t, err, trail.ErrNoTrail)

	_, err = trail.Any(nil)
	assert.ErrorIs(t, err, trail.ErrGraphNil)
}
