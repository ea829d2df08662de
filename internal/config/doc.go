// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads configuration for the model builder and the
// recommendation service.
//
// Configuration is layered with Koanf v2 (highest priority wins):
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
//     /etc/reelmatch/config.yaml
//  3. Environment variables, mapped explicitly in envTransformFunc
//
// Environment Variables:
//   - MODEL_DIR: artifact directory shared by builder and service (default: model)
//   - MODEL_RETAIN_VERSIONS: artifact versions kept after a build (default: 3)
//   - MOVIES_CSV: movie metadata file (default: tmdb_5000_movies.csv)
//   - CREDITS_CSV: credit metadata file (default: tmdb_5000_credits.csv)
//   - BUILDER_MAX_FEATURES: vocabulary size cap (default: 5000)
//   - BUILDER_CAST_LIMIT: leading cast members kept per movie (default: 3)
//   - BUILDER_WORKERS: similarity workers, 0 = runtime.NumCPU() (default: 0)
//   - BUILDER_SAMPLE_TITLES: comma-separated titles previewed after a build
//   - RECOMMEND_K: recommendations per query (default: 5)
//   - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT (default: disabled)
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Config is immutable after Load and safe for concurrent reads.
package config
