// Package config loads onestroke settings from defaults, an optional YAML
// file and ONESTROKE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/onestroke/solver"
	"github.com/katalvlaran/onestroke/trail"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ONESTROKE"

// Config keys.
const (
	KeyMaxSolutions = "max_solutions"
	KeyWorkers      = "workers"
	KeyTimeout      = "timeout"
	KeyOrientation  = "orientation"
	KeyPrune        = "prune"
	KeyPrecheck     = "precheck"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyServerAddr   = "server.addr"
	KeyServerMax    = "server.max_limit"
	KeyServerRead   = "server.read_timeout"
)

// ErrInvalidConfig wraps validation failures of a loaded Config.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved application configuration.
type Config struct {
	MaxSolutions int           `mapstructure:"max_solutions" validate:"min=1"`
	Workers      int           `mapstructure:"workers" validate:"min=1,max=256"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Orientation  string        `mapstructure:"orientation" validate:"oneof=forward reverse both"`
	Prune        string        `mapstructure:"prune" validate:"oneof=dead-end reachability"`
	Precheck     bool          `mapstructure:"precheck"`
	Log          LogConfig     `mapstructure:"log"`
	Server       ServerConfig  `mapstructure:"server"`
}

// LogConfig selects the zap logger built by the CLI.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string        `mapstructure:"addr" validate:"required"`
	MaxLimit    int           `mapstructure:"max_limit" validate:"min=1"`
	ReadTimeout time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
}

// New returns a viper instance carrying the defaults and bound to the
// environment. Callers may bind command-line flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMaxSolutions, 10)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyOrientation, "forward")
	v.SetDefault(KeyPrune, "dead-end")
	v.SetDefault(KeyPrecheck, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerMax, 1000)
	v.SetDefault(KeyServerRead, 10*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file (if not empty) into v, then decodes and validates the
// result. A named file that cannot be read is an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// Default is Load over New with no file.
func Default() (*Config, error) {
	return Load(New(), "")
}

// SolverOptions translates the search settings into solver options.
func (c *Config) SolverOptions(log *zap.Logger, rec solver.Recorder) ([]solver.Option, error) {
	or, err := ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	pr, err := ParsePrune(c.Prune)
	if err != nil {
		return nil, err
	}

	return []solver.Option{
		solver.WithMaxSolutions(c.MaxSolutions),
		solver.WithWorkers(c.Workers),
		solver.WithTimeout(c.Timeout),
		solver.WithOrientation(or),
		solver.WithPrune(pr),
		solver.WithPrecheck(c.Precheck),
		solver.WithLogger(log),
		solver.WithRecorder(rec),
	}, nil
}

// ParseOrientation maps "forward", "reverse" or "both" to trail.Orientation.
func ParseOrientation(s string) (trail.Orientation, error) {
	for _, o := range []trail.Orientation{trail.Forward, trail.Reverse, trail.Both} {
		if strings.EqualFold(s, o.String()) {
			return o, nil
		}
	}

	return 0, fmt.Errorf("%w: orientation %q", ErrInvalidConfig, s)
}

// ParsePrune maps "dead-end" or "reachability" to trail.Prune.
func ParsePrune(s string) (trail.Prune, error) {
	for _, p := range []trail.Prune{trail.PruneDeadEnd, trail.PruneReachability} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: prune %q", ErrInvalidConfig, s)
}
