// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the Reelmatch offline model builder.
//
// It joins the movies and credits CSV files by id and title, derives a tag
// document per movie, vectorizes the documents into term counts and writes
// the pairwise cosine similarity matrix next to the movie list. The two
// artifacts share a model ID and version so the service can detect a pair
// that was not produced by the same build.
//
// # Example Usage
//
//	MOVIES_CSV=data/tmdb_5000_movies.csv \
//	CREDITS_CSV=data/tmdb_5000_credits.csv \
//	MODEL_DIR=model ./builder
//
// Older artifact versions beyond MODEL_RETAIN_VERSIONS are pruned after a
// successful save.
package main
