// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "docsearch"

const (
	OutcomeShortQuery = "short_query"
	OutcomeResults    = "results"
	OutcomeNoResults  = "no_results"
	OutcomeError      = "error"
)

var (
	Queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Search queries by outcome.",
	}, []string{"outcome"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "query_cache_hits_total",
		Help:      "Queries answered from the result cache.",
	})

	FetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_fetch_failures_total",
		Help:      "Content fetches that degraded to empty content.",
	})

	IndexedItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "indexed_items",
		Help:      "Items in the installed index.",
	})

	BuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "index_build_duration_seconds",
		Help:      "Time spent building the index, content fetches included.",
		Buckets:   prometheus.DefBuckets,
	})
)
