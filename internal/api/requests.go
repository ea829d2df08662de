// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import "net/http"

// RecommendRequest holds the query parameters of GET /recommend.
type RecommendRequest struct {
	// Movie is matched exactly against model titles, case and spacing included.
	Movie string `query:"movie" validate:"required"`
}

// parseRecommendRequest reads the first "movie" query value.
func parseRecommendRequest(r *http.Request) RecommendRequest {
	return RecommendRequest{Movie: r.URL.Query().Get("movie")}
}
