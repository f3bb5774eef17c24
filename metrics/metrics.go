// SPDX-License-Identifier: MIT
// Package: fairrand/metrics
//
// metrics.go - Prometheus counters fed by generator.Observer callbacks.

// Package metrics exports rejection-loop counters to Prometheus.
//
// A Collector is a generator.Observer; pass it with generator.WithObserver.
// One Collector can serve many generators, each labelled by stream name.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/fairrand/generator"
)

const namespace = "fairrand"

// Collector counts accepted, rejected and exhausted draws.
type Collector struct {
	accepted  *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	exhausted *prometheus.CounterVec
}

var _ generator.Observer = (*Collector)(nil)

// New registers the counters on reg. A nil reg leaves them unregistered,
// which tests use to read values without a registry.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		// Labels: stream
		accepted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_accepted_total",
			Help:      "Candidates accepted into a stream's history",
		}, []string{"stream"}),

		// Labels: stream, pattern. A candidate completing two patterns
		// increments both series.
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_rejected_total",
			Help:      "Candidates rejected, by the pattern they would have completed",
		}, []string{"stream", "pattern"}),

		exhausted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retry_budget_exhausted_total",
			Help:      "Generate calls that ran out of retries",
		}, []string{"stream"}),
	}
}

// Accepted implements generator.Observer.
func (c *Collector) Accepted(stream string) {
	c.accepted.WithLabelValues(stream).Inc()
}

// Rejected implements generator.Observer.
func (c *Collector) Rejected(stream string, patterns []string) {
	for _, p := range patterns {
		c.rejected.WithLabelValues(stream, p).Inc()
	}
}

// Exhausted implements generator.Observer.
func (c *Collector) Exhausted(stream string) {
	c.exhausted.WithLabelValues(stream).Inc()
}

// AcceptedCounter returns the accepted series for stream.
func (c *Collector) AcceptedCounter(stream string) prometheus.Counter {
	return c.accepted.WithLabelValues(stream)
}

// RejectedCounter returns the rejected series for stream and pattern.
func (c *Collector) RejectedCounter(stream, pattern string) prometheus.Counter {
	return c.rejected.WithLabelValues(stream, pattern)
}

// ExhaustedCounter returns the exhausted series for stream.
func (c *Collector) ExhaustedCounter(stream string) prometheus.Counter {
	return c.exhausted.WithLabelValues(stream)
}
