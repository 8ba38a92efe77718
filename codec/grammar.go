package codec

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// boundaryLexer tokenizes the boundary encoding. The lowercase rule is elided.
var boundaryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Int", `[0-9]+`},
	{"Punct", `[,/]`},
	{"whitespace", `[ \t\r\n]+`},
})

type edgeList struct {
	Edges []*edgePair `@@ ( "/" @@ )*`
}

type edgePair struct {
	From string `@Int ","`
	To   string `@Int`
}

type trailList struct {
	Trails []*nodeRun `@@ ( "/" @@ )*`
}

type nodeRun struct {
	Nodes []string `@Int ( "," @Int )*`
}

var (
	parseEdgeList  = participle.MustBuild[edgeList](participle.Lexer(boundaryLexer))
	parseTrailList = participle.MustBuild[trailList](participle.Lexer(boundaryLexer))
)
