package sketch_test

import (
	"fmt"

	"github.com/katalvlaran/onestroke/sketch"
	"github.com/katalvlaran/onestroke/trail"
)

func ExampleEncoding_Decode() {
	enc := sketch.Encoding{Edges: "0,1/1,2", IDs: []string{"left", "top", "right"}}
	paths, err := enc.Decode([]trail.Trail{{0, 1, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%+v\n", paths[0].Summarize())
	// Output: {Steps:3 Path:left -> top -> right}
}
