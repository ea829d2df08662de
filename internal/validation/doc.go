// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared; it caches struct
// metadata and is safe for concurrent use. Field names in errors come from the
// `query` struct tag so messages name the parameter the client sent:
//
//	type RecommendRequest struct {
//	    Movie string `query:"movie" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    if verr.HasFailure("movie", "required") {
//	        // 400 Movie title parameter is required.
//	    }
//	}
package validation
