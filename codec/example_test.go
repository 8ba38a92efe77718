package codec_test

import (
	"fmt"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

// Example decodes an edge list, searches from the first edge and encodes
// the trails back into the boundary format.
func Example() {
	edges, err := codec.ParseEdges("0,1/1,2/2,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := graph.Build(edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := trail.Search(g, 0, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%q\n", codec.FormatTrails(res))

	// Output:
	// "0,1,2,0"
}
