package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/internal/config"
	"github.com/katalvlaran/onestroke/internal/metrics"
	"github.com/katalvlaran/onestroke/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := metrics.NewCollector("onestroke")
			opts, err := a.cfg.SolverOptions(a.log, m)
			if err != nil {
				return err
			}
			srv, err := server.New(a.log, m, a.cfg.Server.MaxLimit, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, a.cfg.Server.Addr, a.cfg.Server.ReadTimeout)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = a.v.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}
