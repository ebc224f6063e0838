// Package metrics provides Prometheus instrumentation for the sync surface.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the delivery layer records through.
type Recorder interface {
	RecordMutation(name, outcome string)
	RecordQuery(name, outcome string)
	RecordDispatchLatency(duration time.Duration)
	RecordImport(imported, skipped int)
	RecordLogin()
}

// Collector implements Recorder over a Prometheus registry.
type Collector struct {
	mutations       *prometheus.CounterVec
	queries         *prometheus.CounterVec
	dispatchLatency prometheus.Histogram
	importedPosts   prometheus.Counter
	skippedPosts    prometheus.Counter
	logins          prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kindling_mutations_total",
			Help: "Mutations dispatched, by mutation name and outcome.",
		}, []string{"mutation", "outcome"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kindling_queries_total",
			Help: "Queries dispatched, by query name and outcome.",
		}, []string{"query", "outcome"}),
		dispatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kindling_dispatch_latency_seconds",
			Help:    "Latency of sync dispatch requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		importedPosts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kindling_imported_posts_total",
			Help: "Posts imported from external platforms.",
		}),
		skippedPosts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kindling_skipped_posts_total",
			Help: "Already-imported posts skipped during import runs.",
		}),
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kindling_logins_total",
			Help: "Completed OAuth sign-ins.",
		}),
	}

	reg.MustRegister(
		c.mutations,
		c.queries,
		c.dispatchLatency,
		c.importedPosts,
		c.skippedPosts,
		c.logins,
	)

	return c
}

// RecordMutation counts one dispatched mutation.
func (c *Collector) RecordMutation(name, outcome string) {
	c.mutations.WithLabelValues(name, outcome).Inc()
}

// RecordQuery counts one dispatched query.
func (c *Collector) RecordQuery(name, outcome string) {
	c.queries.WithLabelValues(name, outcome).Inc()
}

// RecordDispatchLatency observes one sync dispatch round trip.
func (c *Collector) RecordDispatchLatency(duration time.Duration) {
	c.dispatchLatency.Observe(duration.Seconds())
}

// RecordImport counts the outcome of one import run.
func (c *Collector) RecordImport(imported, skipped int) {
	c.importedPosts.Add(float64(imported))
	c.skippedPosts.Add(float64(skipped))
}

// RecordLogin counts one completed sign-in.
func (c *Collector) RecordLogin() {
	c.logins.Inc()
}

// Handler returns the Prometheus scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
