// Package metrics holds the Prometheus collectors for route planning.
//
// Collectors methods are safe on a nil receiver, so callers can record
// unconditionally and leave metrics off by passing nil.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "cartroute"

// Plan outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeCanceled = "canceled"
)

// Collectors groups the planner metrics.
type Collectors struct {
	// Plans counts plan requests by outcome.
	Plans *prometheus.CounterVec
	// Passes records 2-opt passes per plan.
	Passes prometheus.Histogram
	// Swaps records improving 2-opt swaps per plan.
	Swaps prometheus.Histogram
	// Improvement records total/seed cost ratio per plan (1 = no gain).
	Improvement prometheus.Histogram
	// Duration records plan latency in seconds.
	Duration prometheus.Histogram
	// Stops records the number of stops per plan.
	Stops prometheus.Histogram
}

// New builds collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Plans: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "plans_total", Help: "Route plan requests by outcome."},
			[]string{"outcome"},
		),
		Passes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "two_opt_passes", Help: "2-opt passes per plan.",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12, 16, 32},
		}),
		Swaps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "two_opt_swaps", Help: "Improving 2-opt swaps per plan.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		Improvement: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "improvement_ratio", Help: "Improved tour cost divided by seed tour cost.",
			Buckets: prometheus.LinearBuckets(0.5, 0.05, 11),
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "plan_duration_seconds", Help: "Plan latency in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		Stops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "plan_stops", Help: "Stops per plan.",
			Buckets: prometheus.LinearBuckets(1, 1, 16),
		}),
	}
	if reg != nil {
		reg.MustRegister(c.Plans, c.Passes, c.Swaps, c.Improvement, c.Duration, c.Stops)
	}

	return c
}

// Rejected counts a request that failed validation.
func (c *Collectors) Rejected() {
	if c == nil {
		return
	}
	c.Plans.WithLabelValues(OutcomeRejected).Inc()
}

// Canceled counts a request abandoned because its context ended.
func (c *Collectors) Canceled() {
	if c == nil {
		return
	}
	c.Plans.WithLabelValues(OutcomeCanceled).Inc()
}

// Planned records a completed plan. A zero seed cost records no ratio.
func (c *Collectors) Planned(stops, passes, swaps int, seed, total uint16, took time.Duration) {
	if c == nil {
		return
	}
	c.Plans.WithLabelValues(OutcomeOK).Inc()
	c.Stops.Observe(float64(stops))
	c.Passes.Observe(float64(passes))
	c.Swaps.Observe(float64(swaps))
	c.Duration.Observe(took.Seconds())
	if seed > 0 {
		c.Improvement.Observe(float64(total) / float64(seed))
	}
}

var (
	// Registry is the dedicated process registry.
	Registry = prometheus.NewRegistry()

	defaultOnce sync.Once
	defaults    *Collectors
)

// Default returns the process-wide collectors, registered on Registry
// together with the Go and process collectors.
func Default() *Collectors {
	defaultOnce.Do(func() {
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		defaults = New(Registry)
	})

	return defaults
}

// WriteTextfile dumps every metric in Registry to path in the Prometheus
// text format, for node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
