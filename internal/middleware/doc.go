// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware for the recommendation service.

All middleware has the chi signature func(http.Handler) http.Handler and is
installed globally by the api package:

	r.Use(middleware.RequestID)          // X-Request-ID + logging context
	r.Use(chimiddleware.RealIP)          // client IP from X-Forwarded-For
	r.Use(middleware.Recoverer)          // panic -> JSON 500
	r.Use(cors.Handler(...))             // CORS, including preflight
	r.Use(middleware.PrometheusMetrics)  // request metrics

Key Components:

  - RequestID: accepts or generates a request ID, adds request and
    correlation IDs to the context read by logging.Ctx
  - Recoverer: recovers handler panics and writes
    {"error": "Internal server error."}
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests labelled by chi route pattern
*/
package middleware
