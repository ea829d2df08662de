// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics for the recommendation service.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total

Recommendations:
  - recommend_lookups_total{result}: hit, not_found, missing_parameter, error
  - recommend_lookup_duration_seconds

Model:
  - model_movies
  - model_version
  - model_loaded_timestamp_seconds

The endpoint label is the chi route pattern, never the raw URL path, so
query strings and unmatched paths cannot inflate cardinality.
*/
package metrics
