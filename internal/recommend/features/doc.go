// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package features derives the tag bag of each movie from its raw dataset
// columns.
//
// The genres, keywords, cast and crew columns hold serialized lists of
// objects such as [{"id": 28, "name": "Science Fiction"}]. A column that
// cannot be parsed contributes nothing; the row itself is kept.
//
//	"In the 22nd century..." + [Action, ScienceFiction] + [cultureclash]
//	  + [SamWorthington, ZoeSaldana, SigourneyWeaver] + [JamesCameron]
//	-> "in the 22nd century... action sciencefiction cultureclash
//	    samworthington zoesaldana sigourneyweaver jamescameron"
package features
