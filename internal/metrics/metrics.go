// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package metrics defines the Prometheus collectors of the mixgraph service
// and small helpers to record them. Collectors register with the default
// registry at init and are served by promhttp on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Optimizer Metrics
	OptimizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mixgraph_optimize_duration_seconds",
			Help:    "Duration of playlist optimizations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)

	OptimizeRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixgraph_optimize_runs_total",
			Help: "Total number of playlist optimizations by objective and termination",
		},
		[]string{"objective", "termination"},
	)

	OptimizeNodesExplored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mixgraph_optimize_nodes_explored",
			Help:    "Frontier entries popped per optimization",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9), // 1 .. 65536
		},
	)

	OptimizeFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mixgraph_optimize_fallbacks_total",
			Help: "Total number of optimizations that returned the greedy fallback",
		},
	)

	OptimizeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixgraph_optimize_errors_total",
			Help: "Total number of failed optimizations",
		},
		[]string{"reason"}, // "invalid_input", "constraint", "timeout", "canceled", "internal"
	)

	// Graph Metrics
	GraphBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mixgraph_graph_build_duration_seconds",
			Help:    "Duration of compatibility graph construction in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	GraphNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mixgraph_graph_nodes",
			Help:    "Number of (track, position) nodes per built graph",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixgraph_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mixgraph_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mixgraph_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixgraph_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Cache Metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixgraph_cache_lookups_total",
			Help: "Optimize result cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mixgraph_cache_entries",
			Help: "Current number of cached optimize results",
		},
	)

	// Library Store Metrics
	LibraryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixgraph_library_operations_total",
			Help: "Total number of library store operations",
		},
		[]string{"operation", "status"},
	)

	LibraryOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mixgraph_library_operation_duration_seconds",
			Help:    "Duration of library store operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// Optimization is the subset of an optimize result that is recorded.
type Optimization struct {
	Objective          string
	Termination        string
	Outcome            string
	Fallback           bool
	NodesExplored      int
	GraphNodes         int
	Duration           time.Duration
	GraphBuildDuration time.Duration
}

// RecordOptimization records a completed optimization.
//
//nolint:gocritic // hugeParam: small value type recorded once per request
func RecordOptimization(o Optimization) {
	OptimizeDuration.WithLabelValues(o.Outcome).Observe(o.Duration.Seconds())
	OptimizeRuns.WithLabelValues(o.Objective, o.Termination).Inc()
	OptimizeNodesExplored.Observe(float64(o.NodesExplored))
	if o.Fallback {
		OptimizeFallbacks.Inc()
	}
	RecordGraphBuild(o.GraphNodes, o.GraphBuildDuration)
}

// RecordOptimizeError records a failed optimization.
func RecordOptimizeError(reason string) {
	OptimizeErrors.WithLabelValues(reason).Inc()
}

// RecordGraphBuild records a graph construction.
func RecordGraphBuild(nodes int, duration time.Duration) {
	GraphBuildDuration.Observe(duration.Seconds())
	GraphNodes.Observe(float64(nodes))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
	} else {
		CacheLookups.WithLabelValues("miss").Inc()
	}
}

// SetCacheEntries sets the cache size gauge.
func SetCacheEntries(n int) {
	CacheEntries.Set(float64(n))
}

// RecordLibraryOperation records a library store operation.
func RecordLibraryOperation(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	LibraryOperations.WithLabelValues(operation, status).Inc()
	LibraryOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
