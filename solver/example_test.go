package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/solver"
)

func ExampleOneLine() {
	out, err := solver.OneLine("0,1/1,2/2,0", 0, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%q\n", out)
	// Output: "0,1,2,0"
}

func ExampleSolver_Solve() {
	s, err := solver.New(solver.WithMaxSolutions(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := s.SolveString(context.Background(), "0,1/1,2/2,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(codec.FormatTrails(res.Trails), res.StartsTried, res.Complete)
	// Output: 0,1,2,0/1,2,0,1/2,0,1,2 3 true
}
