package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"stocktrace/internal/locate"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stocktrace_lookups_total",
			Help: "Total location lookups by outcome",
		},
		[]string{"outcome"},
	)
	sourceFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stocktrace_source_failures_total",
			Help: "Degraded record-source calls by source",
		},
		[]string{"source"},
	)
	lookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stocktrace_lookup_duration_seconds",
			Help:    "End-to-end lookup latency",
			Buckets: prometheus.DefBuckets,
		},
	)
	staleAssets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stocktrace_stale_assets",
			Help: "Assets with no scan activity inside the staleness window",
		},
	)
)

var initOnce sync.Once

// Init registers all collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(lookupsTotal, sourceFailuresTotal, lookupDuration, staleAssets)
	})
}

// RecordLookup counts one finished lookup and its latency.
// Outcome is one of "ok", "empty", "cached", "error".
func RecordLookup(outcome string, elapsed time.Duration) {
	lookupsTotal.WithLabelValues(outcome).Inc()
	lookupDuration.Observe(elapsed.Seconds())
}

// RecordSourceFailures counts each degraded source call of a lookup.
func RecordSourceFailures(failures []locate.SourceFailure) {
	for _, f := range failures {
		sourceFailuresTotal.WithLabelValues(f.Source).Inc()
	}
}

// SetStaleAssets updates the staleness gauge.
func SetStaleAssets(n int64) {
	staleAssets.Set(float64(n))
}
