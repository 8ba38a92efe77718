package trail

import (
	"errors"

	"github.com/katalvlaran/onestroke/graph"
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to Search or Verify.
	ErrGraphNil = errors.New("trail: graph is nil")

	// ErrInvalidStart indicates the starting edge index is out of range.
	ErrInvalidStart = errors.New("trail: start edge out of range")

	// ErrNoTrail is returned by Any when the graph admits no Euler trail.
	ErrNoTrail = errors.New("trail: graph has no euler trail")

	// ErrInvalidTrail is returned by Verify when a trail does not use every
	// edge of the graph exactly once.
	ErrInvalidTrail = errors.New("trail: invalid trail")
)

// Trail is an ordered sequence of EdgeCount+1 node identifiers; consecutive
// nodes are joined by distinct edges.
type Trail []graph.Node

// Orientation selects which endpoint of the starting edge the path begins at.
type Orientation int

const (
	// Forward begins at the starting edge's A endpoint.
	Forward Orientation = iota
	// Reverse begins at the starting edge's B endpoint.
	Reverse
	// Both tries Forward, then Reverse. A self-loop is tried once.
	Both
)

// String returns the lowercase name used in configuration.
func (o Orientation) String() string {
	switch o {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Prune selects how aggressively dead branches are cut.
type Prune int

const (
	// PruneDeadEnd backtracks when the frontier has no unused edge or when
	// the unused edges have an odd-degree pattern no trail from the frontier
	// can match. Both checks apply under every policy.
	PruneDeadEnd Prune = iota
	// PruneReachability additionally backtracks when some unused edge can no
	// longer be reached from the frontier.
	PruneReachability
)

// String returns the lowercase name used in configuration.
func (p Prune) String() string {
	switch p {
	case PruneDeadEnd:
		return "dead-end"
	case PruneReachability:
		return "reachability"
	default:
		return "unknown"
	}
}

// Stats counts events of one or more searches. Counters accumulate; reset
// the struct between calls if per-call numbers are needed.
type Stats struct {
	// Steps is the number of edges tentatively traversed.
	Steps int
	// DeadEnds counts frontiers left with no unused incident edge while
	// edges remained.
	DeadEnds int
	// Pruned counts branches cut by the parity check or by
	// PruneReachability.
	Pruned int
	// Found counts recorded trails.
	Found int
}

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds the resolved configuration of one Search call.
type Options struct {
	Orientation Orientation
	Prune       Prune
	Stats       *Stats
}

// DefaultOptions returns Forward orientation, dead-end pruning and no stats.
func DefaultOptions() Options {
	return Options{
		Orientation: Forward,
		Prune:       PruneDeadEnd,
		Stats:       nil,
	}
}

// WithOrientation sets the starting endpoint policy.
// Panics on an unknown value.
func WithOrientation(o Orientation) Option {
	if o < Forward || o > Both {
		panic("trail: WithOrientation(unknown)")
	}
	return func(opts *Options) {
		opts.Orientation = o
	}
}

// WithPrune sets the pruning policy. Panics on an unknown value.
func WithPrune(p Prune) Option {
	if p < PruneDeadEnd || p > PruneReachability {
		panic("trail: WithPrune(unknown)")
	}
	return func(opts *Options) {
		opts.Prune = p
	}
}

// WithStats installs a counter sink. A nil s disables collection.
func WithStats(s *Stats) Option {
	return func(opts *Options) {
		opts.Stats = s
	}
}
