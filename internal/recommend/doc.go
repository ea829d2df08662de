// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend holds the domain model of the content-based recommender
// and the query engine used by the HTTP service.
//
// # Model
//
// A Model is two artifacts built together by the builder:
//
//   - Movies: []MovieRecord in build order
//   - Similarity: a dense N x N cosine matrix whose row and column i
//     correspond to Movies[i]
//
// The row-index correspondence is the invariant everything depends on.
// Model.Validate rejects a pair whose record count differs from the matrix
// dimension.
//
// # Engine
//
// NewEngine builds a title index and a sorted title list once. Lookups then
// read shared immutable state only:
//
//	engine, err := recommend.NewEngine(model, recommend.DefaultConfig(), logger)
//	titles, err := engine.Recommend(ctx, "Avatar")
//
// Recommend excludes the queried movie by index rather than by position, so
// another movie with an identical score of 1.0 is still returned. Scores tie
// break on build order, which keeps results deterministic.
//
// # Errors
//
//   - ErrMissingParameter: empty title
//   - ErrNotFound: unknown title
//
// Any other error is an internal fault.
//
// # Subpackages
//
//   - features: tag extraction from raw dataset rows
//   - algorithms: tokenizer, count vectorizer, cosine similarity matrix
//   - storage: versioned, checksummed artifact persistence
package recommend
