package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

func newShapeCmd() *cobra.Command {
	var sf shapeFlags

	cmd := &cobra.Command{
		Use:   "shape NAME",
		Short: "Print the edge list of a named figure",
		Long: "Print the edge list of a named figure and whether it can be drawn in one stroke.\n" +
			"Known names: " + strings.Join(builder.ShapeNames(), ", ") + ".",
		Example: `  onestroke shape grid:2,3
  onestroke shape cycle:4 --doubled`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.shape = args[0]
			edges, err := sf.edges(nil)
			if err != nil {
				return err
			}
			g, err := graph.Build(edges)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, codec.FormatEdges(edges))
			fmt.Fprintf(w, "nodes %d, edges %d, odd nodes %v, connected %t\n",
				g.NodeCount(), g.EdgeCount(), g.OddNodes(), g.Connected())
			switch {
			case g.HasEulerCircuit():
				fmt.Fprintln(w, "one stroke: yes, ends where it starts")
			case g.HasEulerTrail():
				fmt.Fprintln(w, "one stroke: yes, between the odd nodes")
			default:
				fmt.Fprintln(w, "one stroke: no")
				return nil
			}

			t, err := trail.Any(g)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "example:", codec.FormatTrail(t))

			return nil
		},
	}

	cmd.Flags().BoolVar(&sf.doubled, "doubled", false, "draw every edge twice")
	cmd.Flags().IntVar(&sf.offset, "offset", 0, "shift node numbers")

	return cmd
}
