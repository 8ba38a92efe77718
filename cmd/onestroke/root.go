package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/onestroke/internal/config"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "onestroke",
		Short:         "Find every way to draw a figure in one continuous line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(
		newSolveCmd(a),
		newLineCmd(a),
		newShapeCmd(),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// load resolves the configuration and builds the logger.
func (a *app) load() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.cfg, a.log = cfg, log

	return nil
}

// newLogger builds a zap logger writing to stderr.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level

	return zc.Build()
}
