// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package dataset reads the builder input: a movies CSV and a credits CSV
// in the TMDB 5000 layout.
//
// Both files are scanned by an in-memory DuckDB database with every column
// read as text, joined on movies.id = credits.movie_id, and returned in the
// order of the movies file. The title comes from the movies file.
//
// Joined rows with a missing id, title, overview, genres, keywords, cast or
// crew are dropped and counted in Stats; they are never errors. A missing
// input file is reported as ErrInputMissing.
package dataset
