// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results recorded by RecordLookup.
const (
	LookupHit      = "hit"
	LookupNotFound = "not_found"
	LookupMissing  = "missing_parameter"
	LookupError    = "error"
	LookupCanceled = "canceled"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Recommendation Metrics
	RecommendLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_lookups_total",
			Help: "Total number of recommendation lookups by result",
		},
		[]string{"result"}, // hit, not_found, missing_parameter, error
	)

	RecommendLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_lookup_duration_seconds",
			Help:    "Time spent ranking one similarity row",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
	)

	// Model Metrics
	ModelMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_movies",
			Help: "Number of movies in the loaded model",
		},
	)

	ModelLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_loaded_timestamp_seconds",
			Help: "Unix timestamp when the serving model was loaded",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_version",
			Help: "Artifact version of the loaded model",
		},
	)
)

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

// RecordLookup records the outcome of one recommendation lookup.
func RecordLookup(result string, duration time.Duration) {
	RecommendLookupsTotal.WithLabelValues(result).Inc()
	if result == LookupHit {
		RecommendLookupDuration.Observe(duration.Seconds())
	}
}

// RecordModelLoaded publishes the size and version of a freshly loaded model.
func RecordModelLoaded(movies, version int, loadedAt time.Time) {
	ModelMovies.Set(float64(movies))
	ModelVersion.Set(float64(version))
	ModelLoadedTimestamp.Set(float64(loadedAt.Unix()))
}
