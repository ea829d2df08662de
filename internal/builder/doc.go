// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package builder runs the offline model build.
//
// A build reads the joined dataset, turns every movie into a tag string,
// fits a count vectorizer over all tags, computes the full cosine similarity
// matrix and writes the movies and similarity artifacts under one model ID.
// Older artifact versions beyond the retention count are pruned afterwards,
// and the nearest neighbours of a few sample titles are logged as a quick
// sanity check of the new model.
package builder
