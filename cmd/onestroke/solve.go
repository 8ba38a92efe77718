package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/internal/config"
	"github.com/katalvlaran/onestroke/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		sf     shapeFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "solve [EDGES]",
		Short: "Enumerate trails over every starting edge",
		Long: `Enumerate distinct one-stroke trails of a drawing, trying every edge as the
first stroke. EDGES is a list like "0,1/1,2/2,0"; alternatively --shape
builds a named figure such as envelope, cycle:5 or grid:3,4.`,
		Example: `  onestroke solve 0,1/1,2/2,0
  onestroke solve --shape envelope --max 100 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := sf.edges(args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.SolverOptions(a.log, nil)
			if err != nil {
				return err
			}
			s, err := solver.New(opts...)
			if err != nil {
				return err
			}

			res, err := s.Solve(context.Background(), edges)
			if res == nil {
				return err
			}
			if err != nil {
				if !errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				a.log.Warn("time budget exhausted, printing partial result", zap.Error(err))
			}

			return writeResult(cmd.OutOrStdout(), output, newResultDoc(codec.FormatEdges(edges), res))
		},
	}

	f := cmd.Flags()
	f.Int("max", 10, "maximum number of distinct trails")
	f.Int("workers", 1, "starting edges searched concurrently")
	f.Duration("timeout", 0, "time budget for the whole solve, 0 for none")
	f.String("orientation", "forward", "first endpoint: forward, reverse or both")
	f.String("prune", "dead-end", "pruning policy: dead-end or reachability")
	f.Bool("precheck", true, "skip the search when no trail can exist")
	for key, name := range map[string]string{
		config.KeyMaxSolutions: "max",
		config.KeyWorkers:      "workers",
		config.KeyTimeout:      "timeout",
		config.KeyOrientation:  "orientation",
		config.KeyPrune:        "prune",
		config.KeyPrecheck:     "precheck",
	} {
		_ = a.v.BindPFlag(key, f.Lookup(name))
	}

	f.StringVar(&sf.shape, "shape", "", "build a named figure instead of reading EDGES")
	f.BoolVar(&sf.doubled, "doubled", false, "draw every edge of --shape twice")
	f.IntVar(&sf.offset, "offset", 0, "shift node numbers of --shape")
	f.StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")

	return cmd
}
