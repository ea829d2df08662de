// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the zerolog-based logger shared by the model
// builder and the recommendation service.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", n).Msg("model loaded")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("lookup failed")
//
// # Configuration
//
// Environment variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Request Context
//
// HTTP middleware stores a request ID and a short correlation ID in the
// request context. Ctx adds both to every event logged through it.
//
// # slog Bridge
//
// SlogHandler routes log/slog records into zerolog. The supervisor tree
// uses it so suture's lifecycle events share the same output.
package logging
