// Package metrics exposes solver and HTTP activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/onestroke/solver"
)

// Collector holds all Prometheus metrics for the application. It
// implements solver.Recorder.
type Collector struct {
	registry *prometheus.Registry

	// Solver metrics
	Searches       *prometheus.CounterVec
	SearchDuration prometheus.Histogram
	TrailsFound    prometheus.Counter
	Solves         *prometheus.CounterVec
	SolveDuration  prometheus.Histogram
	Infeasible     prometheus.Counter

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

var _ solver.Recorder = (*Collector)(nil)

// NewCollector creates a collector with its own registry, so several
// collectors may coexist in one process.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Trail search invocations by outcome",
			},
			[]string{"outcome"},
		),
		SearchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Duration of a single trail search invocation",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		TrailsFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trails_found_total",
				Help:      "Trails returned by search invocations before de-duplication",
			},
		),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Completed solves, by whether every starting edge was covered",
			},
			[]string{"complete"},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Duration of a whole solve",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Infeasible: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "infeasible_total",
				Help:      "Solves answered by the Euler precheck without searching",
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	c.registry.MustRegister(
		c.Searches,
		c.SearchDuration,
		c.TrailsFound,
		c.Solves,
		c.SolveDuration,
		c.Infeasible,
		c.HTTPRequests,
		c.HTTPDuration,
	)

	return c
}

// ObserveSearch records one search invocation.
func (c *Collector) ObserveSearch(outcome solver.Outcome, found int, elapsed time.Duration) {
	c.Searches.WithLabelValues(string(outcome)).Inc()
	c.SearchDuration.Observe(elapsed.Seconds())
	c.TrailsFound.Add(float64(found))
}

// ObserveSolve records one solve.
func (c *Collector) ObserveSolve(_ int, complete bool, elapsed time.Duration) {
	c.Solves.WithLabelValues(strconv.FormatBool(complete)).Inc()
	c.SolveDuration.Observe(elapsed.Seconds())
}

// ObserveInfeasible records a solve settled by the precheck.
func (c *Collector) ObserveInfeasible(time.Duration) {
	c.Infeasible.Inc()
}

// ObserveRequest records one HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry returns the registry the metrics are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
