package solver

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/onestroke/trail"
)

// ErrInvalidOptions wraps validation failures of the resolved Options.
var ErrInvalidOptions = errors.New("solver: invalid options")

// Outcome classifies one search invocation for a Recorder.
type Outcome string

const (
	OutcomeFound        Outcome = "found"
	OutcomeEmpty        Outcome = "empty"
	OutcomeInvalidStart Outcome = "invalid_start"
)

// Recorder receives observations about searches and solves.
// Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveSearch(outcome Outcome, found int, elapsed time.Duration)
	ObserveSolve(trails int, complete bool, elapsed time.Duration)
	// ObserveInfeasible marks a solve settled by the precheck. No search
	// ran, so ObserveSearch is not called for it.
	ObserveInfeasible(elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(Outcome, int, time.Duration) {}
func (nopRecorder) ObserveSolve(int, bool, time.Duration)     {}
func (nopRecorder) ObserveInfeasible(time.Duration)           {}

// Result is the aggregated outcome of Solve.
type Result struct {
	// Trails holds at most MaxSolutions distinct trails in discovery order.
	Trails []trail.Trail
	// StartsTried counts search invocations that ran.
	StartsTried int
	// Complete is false when the solve was interrupted before every
	// starting edge was tried or the cap was reached.
	Complete bool
}

// Options is the resolved configuration of a Solver.
type Options struct {
	MaxSolutions int               `validate:"min=1"`
	Workers      int               `validate:"min=1,max=256"`
	Timeout      time.Duration     `validate:"gte=0"`
	Orientation  trail.Orientation `validate:"gte=0,lte=2"`
	Prune        trail.Prune       `validate:"gte=0,lte=1"`
	Precheck     bool
	Logger       *zap.Logger `validate:"required"`
	Recorder     Recorder
}

// Option configures a Solver.
type Option func(*Options)

// DefaultOptions returns 10 solutions, one worker, no timeout, Forward
// orientation, dead-end pruning, precheck on, a no-op logger and recorder.
func DefaultOptions() Options {
	return Options{
		MaxSolutions: 10,
		Workers:      1,
		Timeout:      0,
		Orientation:  trail.Forward,
		Prune:        trail.PruneDeadEnd,
		Precheck:     true,
		Logger:       zap.NewNop(),
		Recorder:     nopRecorder{},
	}
}

// WithMaxSolutions sets the global cap on returned trails.
func WithMaxSolutions(n int) Option {
	return func(o *Options) { o.MaxSolutions = n }
}

// WithWorkers sets how many starting edges are searched concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTimeout bounds a whole Solve; zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithOrientation selects the starting endpoint policy of each search.
func WithOrientation(or trail.Orientation) Option {
	return func(o *Options) { o.Orientation = or }
}

// WithPrune selects the pruning policy of each search.
func WithPrune(p trail.Prune) Option {
	return func(o *Options) { o.Prune = p }
}

// WithPrecheck toggles the Euler feasibility test run before searching.
// Results are identical either way; infeasible drawings just return sooner.
func WithPrecheck(on bool) Option {
	return func(o *Options) { o.Precheck = on }
}

// WithLogger installs a logger. Nil keeps the current one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder installs a Recorder. Nil keeps the current one.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}
