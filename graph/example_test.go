package graph_test

import (
	"fmt"

	"github.com/katalvlaran/onestroke/graph"
)

// ExampleBuild shows how sparse caller identifiers are remapped to dense
// indices while incident edges keep their input order.
func ExampleBuild() {
	g, err := graph.Build([]graph.Edge{{A: 10, B: 20}, {A: 20, B: 30}, {A: 30, B: 10}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for d := 0; d < g.NodeCount(); d++ {
		fmt.Printf("%d -> node %d, degree %d\n", d, g.Node(d), g.Degree(d))
	}
	fmt.Println("euler circuit:", g.HasEulerCircuit())

	// Output:
	// 0 -> node 10, degree 2
	// 1 -> node 20, degree 2
	// 2 -> node 30, degree 2
	// euler circuit: true
}
