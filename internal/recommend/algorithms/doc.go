// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package algorithms turns movie tags into a cosine similarity matrix.
//
// # Pipeline
//
//	vec := algorithms.NewCountVectorizer(5000, algorithms.EnglishStopWords())
//	vectors, err := vec.FitTransform(ctx, tags)
//	matrix, err := algorithms.CosineMatrix(ctx, vectors, workers)
//
// # Tokenization
//
// Text is lowercased and split into maximal runs of letters, digits, marks
// and underscores. Runs shorter than two runes are discarded, so "a" and "I"
// never reach the vocabulary. Stop words are removed after tokenization.
//
// # Vocabulary
//
// Terms are ranked by total count across the corpus. Equal counts keep the
// order in which terms were first seen, which makes the vocabulary
// deterministic for a given input order.
//
// # Similarity
//
// CosineMatrix computes the full symmetric matrix. Each row is computed once
// for j > i through an inverted index and mirrored into the lower triangle.
// A movie whose vector is all zero scores 0.0 against everything, itself
// included; every other diagonal entry is exactly 1.0.
//
// # Thread Safety
//
// A fitted CountVectorizer is read-only and may be shared. CosineMatrix
// fans rows out over an errgroup bounded by the worker count.
package algorithms
