package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/internal/config"
	"github.com/katalvlaran/onestroke/solver"
	"github.com/katalvlaran/onestroke/trail"
)

func newLineCmd(a *app) *cobra.Command {
	var (
		start int
		max   int
	)

	cmd := &cobra.Command{
		Use:   "line EDGES",
		Short: "Search from one starting edge and print the encoded trails",
		Long: `Search trails whose first stroke is edge --start of EDGES and print them as
"n0,n1,.../m0,m1,...". An empty line means no trail exists.`,
		Example: `  onestroke line 0,1/1,2/2,0 --start 0 --max 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max") {
				max = a.cfg.MaxSolutions
			}
			or, err := config.ParseOrientation(a.cfg.Orientation)
			if err != nil {
				return err
			}
			pr, err := config.ParsePrune(a.cfg.Prune)
			if err != nil {
				return err
			}

			out, err := solver.OneLine(args[0], start, max, trail.WithOrientation(or), trail.WithPrune(pr))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "index of the starting edge")
	cmd.Flags().IntVar(&max, "max", 10, "maximum number of trails")

	return cmd
}
