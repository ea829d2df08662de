// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the Reelmatch recommendation service.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Model: load the latest movies and similarity artifacts from MODEL_DIR
//  3. Engine: index titles and validate the matrix
//  4. HTTP: chi router under a suture supervisor tree
//
// The process exits non-zero before binding any port when the artifacts are
// missing, unreadable or do not belong to the same build.
//
// # Endpoints
//
//	GET /movies
//	GET /recommend?movie=Avatar
//	GET /health/live
//	GET /health/ready
//	GET /metrics
//
// # Example Usage
//
//	./builder                     # writes model/movies_v1.gob.gz, model/similarity_v1.gob.gz
//	HTTP_PORT=5000 ./server
//	curl 'http://localhost:5000/recommend?movie=Avatar'
//
// # Signal Handling
//
// SIGINT and SIGTERM stop accepting connections and wait up to
// HTTP_SHUTDOWN_TIMEOUT for in-flight requests.
//
// # API Documentation
//
// Swagger UI is served at /swagger/index.html. After changing a handler
// annotation, regenerate the docs package:
//
//	swag init -g cmd/server/doc.go -o docs --outputTypes go
//
// @title Reelmatch API
// @version 1.0
// @description Content-based movie recommendations over a precomputed similarity model.
// @license.name AGPL-3.0-or-later
// @BasePath /
package main
