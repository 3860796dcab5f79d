// Package metrics exports search run statistics to Prometheus.
//
// A Collector owns its own registry so tests and multiple sessions never
// collide on the global default registry. It implements search.Observer:
//
//	c := metrics.New()
//	run, _ := bfs.New(g, s, e, search.WithObserver(c))
//	http.Handle("/metrics", c.Handler())
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/search"
)

const namespace = "gridpath"

// Collector records one sample per finished run.
type Collector struct {
	reg *prometheus.Registry

	runs       *prometheus.CounterVec
	steps      *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// New returns a Collector registered on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_runs_total",
			Help:      "Total number of finished search runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_steps",
			Help:      "Cells visited per run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1..16384
		}, []string{"algorithm"}),
		pathLength: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_path_length",
			Help:      "Edges on the found path, successful runs only",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time from first step to terminal state, pacing included",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}
}

// ObserveRun implements search.Observer.
func (c *Collector) ObserveRun(res search.Result, final search.State, elapsed time.Duration) {
	c.runs.WithLabelValues(res.Algorithm, final.String()).Inc()
	c.steps.WithLabelValues(res.Algorithm).Observe(float64(res.Steps))
	c.duration.WithLabelValues(res.Algorithm).Observe(elapsed.Seconds())
	if res.Found {
		c.pathLength.WithLabelValues(res.Algorithm).Observe(float64(res.Length()))
	}
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

var _ search.Observer = (*Collector)(nil)
