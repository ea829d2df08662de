// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package api provides the HTTP interface of the recommendation service.
//
// # Endpoints
//
//	GET /movies                 all titles, sorted ascending
//	GET /recommend?movie=TITLE  up to five similar titles, best first
//	GET /health/live            liveness
//	GET /health/ready           loaded model summary
//	GET /metrics                Prometheus metrics
//
// Successful /movies and /recommend responses are bare JSON arrays of
// strings. Errors use a single-key object:
//
//	400 {"error": "Movie title parameter is required."}
//	404 {"error": "Movie not found."}
//	500 {"error": "Internal server error."}
//
// # Middleware
//
// Every route passes through request ID propagation, real IP extraction,
// panic recovery, CORS and gzip compression. The recommendation routes are
// additionally instrumented with Prometheus metrics and, when enabled,
// rate limited per client IP.
package api
