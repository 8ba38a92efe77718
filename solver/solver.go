package solver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/trail"
)

var validate = validator.New()

// Solver runs trail searches across all starting edges of a drawing.
// A Solver holds no per-solve state and is safe for concurrent use.
type Solver struct {
	opts       Options
	searchOpts []trail.Option
	log        *zap.Logger
}

// New resolves opts over DefaultOptions and validates the result.
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate.Struct(o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return &Solver{
		opts: o,
		searchOpts: []trail.Option{
			trail.WithOrientation(o.Orientation),
			trail.WithPrune(o.Prune),
		},
		log: o.Logger,
	}, nil
}

// Options returns the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// SolveString decodes edgeStr with codec.ParseEdges and calls Solve.
func (s *Solver) SolveString(ctx context.Context, edgeStr string) (*Result, error) {
	edges, err := codec.ParseEdges(edgeStr)
	if err != nil {
		return nil, err
	}

	return s.Solve(ctx, edges)
}

// Solve enumerates up to MaxSolutions distinct trails of the drawing,
// trying starting edges 0..E-1 in order.
//
// Errors: graph.ErrInvalidGraph for an empty drawing; a wrapped
// context.DeadlineExceeded or context.Canceled when interrupted, in which
// case the partial Result is returned as well.
func (s *Solver) Solve(ctx context.Context, edges []graph.Edge) (*Result, error) {
	began := time.Now()

	g, err := graph.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	log := s.log.With(zap.Int("edges", g.EdgeCount()), zap.Int("nodes", g.NodeCount()))
	c := newCollector(s.opts.MaxSolutions)
	res := &Result{}

	if s.opts.Precheck && !g.HasEulerTrail() {
		log.Info("drawing admits no one-stroke trail",
			zap.Int("oddNodes", len(g.OddNodes())),
			zap.Bool("connected", g.Connected()),
		)
		s.opts.Recorder.ObserveInfeasible(time.Since(began))
		res.Complete = true
		s.opts.Recorder.ObserveSolve(0, true, time.Since(began))

		return res, nil
	}

	if s.opts.Workers <= 1 {
		err = s.sequential(ctx, g, c, res)
	} else {
		err = s.parallel(ctx, g, c, res)
	}

	res.Trails = c.trails()
	res.Complete = err == nil
	s.opts.Recorder.ObserveSolve(len(res.Trails), res.Complete, time.Since(began))
	log.Info("solve finished",
		zap.Int("trails", len(res.Trails)),
		zap.Int("startsTried", res.StartsTried),
		zap.Bool("complete", res.Complete),
		zap.Duration("elapsed", time.Since(began)),
	)

	return res, err
}

func (s *Solver) sequential(ctx context.Context, g *graph.Graph, c *collector, res *Result) error {
	for start := 0; start < g.EdgeCount(); start++ {
		if c.full() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return interrupted(start, g.EdgeCount(), err)
		}

		ts, err := s.invoke(g, start)
		if err != nil {
			if errors.Is(err, trail.ErrInvalidStart) {
				continue
			}
			return err
		}
		res.StartsTried++
		c.add(ts)
	}

	return nil
}

// prefixMerger feeds per-start results to the collector strictly in start
// order, so the parallel output equals the sequential one.
type prefixMerger struct {
	mu      sync.Mutex
	c       *collector
	results [][]trail.Trail
	done    []bool
	next    int // first start not yet merged
	stop    context.CancelFunc
}

func (m *prefixMerger) complete(start int, ts []trail.Trail) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results[start] = ts
	m.done[start] = true
	for m.next < len(m.done) && m.done[m.next] {
		full := m.c.add(m.results[m.next])
		m.results[m.next] = nil
		m.next++
		if full {
			m.stop()
			return
		}
	}
}

func (m *prefixMerger) finished() (merged int, full bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.next, m.c.full()
}

func (s *Solver) parallel(ctx context.Context, g *graph.Graph, c *collector, res *Result) error {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	m := &prefixMerger{
		c:       c,
		results: make([][]trail.Trail, g.EdgeCount()),
		done:    make([]bool, g.EdgeCount()),
		stop:    stop,
	}

	var tried atomic.Int64
	eg, egCtx := errgroup.WithContext(runCtx)
	eg.SetLimit(s.opts.Workers)
	for start := 0; start < g.EdgeCount(); start++ {
		start := start
		eg.Go(func() error {
			// Cancelled or capped: leave the remaining starts untried.
			if egCtx.Err() != nil {
				return nil
			}
			ts, err := s.invoke(g, start)
			if err != nil && !errors.Is(err, trail.ErrInvalidStart) {
				return err
			}
			tried.Add(1)
			m.complete(start, ts)

			return nil
		})
	}
	err := eg.Wait()
	res.StartsTried = int(tried.Load())
	if err != nil {
		return err
	}

	merged, full := m.finished()
	if full || merged == g.EdgeCount() {
		return nil
	}
	if err = ctx.Err(); err != nil {
		return interrupted(merged, g.EdgeCount(), err)
	}

	return nil
}

// invoke runs one search and reports it to the logger and recorder.
func (s *Solver) invoke(g *graph.Graph, start int) ([]trail.Trail, error) {
	began := time.Now()
	ts, err := trail.Search(g, start, s.opts.MaxSolutions, s.searchOpts...)
	elapsed := time.Since(began)

	outcome := OutcomeFound
	switch {
	case errors.Is(err, trail.ErrInvalidStart):
		outcome = OutcomeInvalidStart
	case err != nil:
		return nil, err
	case len(ts) == 0:
		outcome = OutcomeEmpty
	}
	s.opts.Recorder.ObserveSearch(outcome, len(ts), elapsed)
	s.log.Debug("search finished",
		zap.Int("start", start),
		zap.String("outcome", string(outcome)),
		zap.Int("found", len(ts)),
		zap.Duration("elapsed", elapsed),
	)

	return ts, err
}

func interrupted(tried, total int, err error) error {
	return fmt.Errorf("solver: interrupted after %d of %d starting edges: %w", tried, total, err)
}
