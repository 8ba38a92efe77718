package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

func TestParseEdges(t *testing.T) {
	edges, err := codec.ParseEdges("0,1/1,2/2,0")
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 0}}, edges)

	edges, err = codec.ParseEdges(" 10 , 3 / 3,3 ")
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{A: 10, B: 3}, {A: 3, B: 3}}, edges)

	edges, err = codec.ParseEdges("")
	assert.NoError(t, err)
	assert.Nil(t, edges)

	edges, err = codec.ParseEdges("   ")
	assert.NoError(t, err)
	assert.Nil(t, edges)
}

func TestParseEdges_Syntax(t *testing.T) {
	for _, in := range []string{
		"0",
		"0,",
		"0,1/",
		"0,1//1,2",
		"0;1",
		"-1,2",
		"a,b",
		"0,1,2",
		"1.5,2",
		"99999999999999999999999,1",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := codec.ParseEdges(in)
			assert.ErrorIs(t, err, codec.ErrSyntax)
		})
	}
}

func TestEdges_RoundTrip(t *testing.T) {
	for _, s := range []string{"0,1", "0,1/1,2/2,0", "5,5/5,12/12,0"} {
		edges, err := codec.ParseEdges(s)
		require.NoError(t, err)
		assert.Equal(t, s, codec.FormatEdges(edges))
	}
	assert.Equal(t, "", codec.FormatEdges(nil))
}

func TestTrails_RoundTrip(t *testing.T) {
	in := []trail.Trail{{0, 1, 2, 0}, {1, 0}, {7}}
	s := codec.FormatTrails(in)
	assert.Equal(t, "0,1,2,0/1,0/7", s)

	out, err := codec.ParseTrails(s)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	for _, canon := range []string{"0,1", "0,1,2,0/1,2,0,1"} {
		ts, err := codec.ParseTrails(canon)
		require.NoError(t, err)
		assert.Equal(t, canon, codec.FormatTrails(ts))
	}
}

func TestTrails_Empty(t *testing.T) {
	assert.Equal(t, "", codec.FormatTrails(nil))
	assert.Equal(t, "", codec.FormatTrails([]trail.Trail{}))

	ts, err := codec.ParseTrails("")
	assert.NoError(t, err)
	assert.Empty(t, ts)
}

func TestParseTrails_Syntax(t *testing.T) {
	for _, in := range []string{"0,", "/0,1", "0,1/", "x"} {
		_, err := codec.ParseTrails(in)
		assert.ErrorIs(t, err, codec.ErrSyntax, in)
	}
}

func TestFormatTrail(t *testing.T) {
	assert.Equal(t, "3,2,1", codec.FormatTrail(trail.Trail{3, 2, 1}))
	assert.Equal(t, "", codec.FormatTrail(nil))
}
