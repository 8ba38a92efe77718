package sketch_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/sketch"
	"github.com/katalvlaran/onestroke/solver"
	"github.com/katalvlaran/onestroke/trail"
)

// triangle returns a sketch with three nodes joined in a cycle.
func triangle(t *testing.T) (*sketch.Sketch, [3]string) {
	t.Helper()
	s := sketch.New()
	var ids [3]string
	for i := range ids {
		ids[i] = s.AddNode(float64(i*10), 0)
	}
	require.NoError(t, s.AddLine(ids[0], ids[1]))
	require.NoError(t, s.AddLine(ids[1], ids[2]))
	require.NoError(t, s.AddLine(ids[2], ids[0]))

	return s, ids
}

func TestAddNode_UUIDs(t *testing.T) {
	s := sketch.New()
	a, b := s.AddNode(1, 2), s.AddNode(3, 4)
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)

	p, ok := s.Node(a)
	require.True(t, ok)
	assert.Equal(t, sketch.Point{X: 1, Y: 2}, p)
	assert.Equal(t, []string{a, b}, s.NodeIDs())
}

func TestPutNode(t *testing.T) {
	s := sketch.New()
	id := uuid.NewString()
	require.NoError(t, s.PutNode(id, 5, 5))
	require.NoError(t, s.PutNode(id, 6, 7))
	assert.Len(t, s.NodeIDs(), 1)
	p, _ := s.Node(id)
	assert.Equal(t, sketch.Point{X: 6, Y: 7}, p)

	assert.ErrorIs(t, s.PutNode("node-1", 0, 0), sketch.ErrBadID)
}

func TestAddLine_Rejects(t *testing.T) {
	s, ids := triangle(t)

	assert.ErrorIs(t, s.AddLine(ids[0], ids[0]), sketch.ErrSelfLine)
	assert.ErrorIs(t, s.AddLine(ids[0], ids[1]), sketch.ErrDuplicateLine)
	assert.ErrorIs(t, s.AddLine(ids[1], ids[0]), sketch.ErrDuplicateLine)
	assert.ErrorIs(t, s.AddLine(ids[0], uuid.NewString()), sketch.ErrUnknownNode)
	assert.Len(t, s.Lines(), 3)
}

func TestRemoveNode(t *testing.T) {
	s, ids := triangle(t)
	require.NoError(t, s.RemoveNode(ids[1]))

	assert.Equal(t, []string{ids[0], ids[2]}, s.NodeIDs())
	assert.Equal(t, []sketch.Line{{From: ids[2], To: ids[0]}}, s.Lines())
	assert.ErrorIs(t, s.RemoveNode(ids[1]), sketch.ErrUnknownNode)
}

func TestValidate(t *testing.T) {
	s := sketch.New()
	assert.ErrorIs(t, s.Validate(), sketch.ErrNoLines)

	s, ids := triangle(t)
	assert.NoError(t, s.Validate())

	s.Clear()
	assert.Empty(t, s.NodeIDs())
	assert.ErrorIs(t, s.Validate(), sketch.ErrNoLines)
	_, ok := s.Node(ids[0])
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	s, ids := triangle(t)
	enc, err := s.Encode()
	require.NoError(t, err)
	assert.Equal(t, "0,1/1,2/2,0", enc.Edges)
	assert.Equal(t, ids[:], enc.IDs)

	_, err = sketch.New().Encode()
	assert.ErrorIs(t, err, sketch.ErrNoLines)
}

func TestEncode_AfterRemovalRenumbers(t *testing.T) {
	s := sketch.New()
	a, b, c := s.AddNode(0, 0), s.AddNode(1, 0), s.AddNode(2, 0)
	require.NoError(t, s.AddLine(a, b))
	require.NoError(t, s.AddLine(c, b))
	require.NoError(t, s.RemoveNode(a))
	d := s.AddNode(3, 0)
	require.NoError(t, s.AddLine(b, d))

	enc, err := s.Encode()
	require.NoError(t, err)
	assert.Equal(t, "1,0/0,2", enc.Edges)
	assert.Equal(t, []string{b, c, d}, enc.IDs)
}

func TestDecode_RoundTripThroughSolver(t *testing.T) {
	s, ids := triangle(t)
	enc, err := s.Encode()
	require.NoError(t, err)

	out, err := solver.OneLine(enc.Edges, 0, 10)
	require.NoError(t, err)
	paths, err := enc.DecodeString(out)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	assert.Equal(t, sketch.Path{ids[0], ids[1], ids[2], ids[0]}, paths[0])
	sum := paths[0].Summarize()
	assert.Equal(t, 4, sum.Steps)
	assert.Equal(t, ids[0]+" -> "+ids[1]+" -> "+ids[2]+" -> "+ids[0], sum.Path)
}

func TestDecode_Errors(t *testing.T) {
	enc := sketch.Encoding{Edges: "0,1", IDs: []string{"a", "b"}}

	paths, err := enc.DecodeString("")
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = enc.Decode([]trail.Trail{{0, 2}})
	assert.ErrorIs(t, err, sketch.ErrUnknownNode)

	_, err = enc.DecodeString("0,")
	assert.ErrorIs(t, err, codec.ErrSyntax)
}
