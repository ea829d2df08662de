// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// Recommender answers title queries. *recommend.Engine implements it.
type Recommender interface {
	Titles() []string
	Recommend(ctx context.Context, title string) ([]string, error)
	Info() recommend.ModelInfo
	Len() int
}

// Handler serves the recommendation endpoints.
type Handler struct {
	engine    Recommender
	startTime time.Time
}

// NewHandler creates a Handler over engine.
func NewHandler(engine Recommender) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
}

// Movies handles GET /movies and returns every model title sorted ascending.
//
// @Summary List movie titles
// @Description Returns every title in the loaded model, sorted ascending.
// @Tags Recommendations
// @Produce json
// @Success 200 {array} string "Sorted titles"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Titles())
}

// Recommend handles GET /recommend?movie=<title> and returns the most
// similar titles, best first.
//
// @Summary Recommend similar movies
// @Description Returns up to five titles most similar to the given one, best first. The queried title is never included.
// @Tags Recommendations
// @Produce json
// @Param movie query string true "Exact movie title" example(Avatar)
// @Success 200 {array} string "Recommended titles"
// @Failure 400 {object} ErrorResponse "Movie title parameter is required."
// @Failure 404 {object} ErrorResponse "Movie not found."
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Failure 503 {object} ErrorResponse "Request canceled."
// @Router /recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := parseRecommendRequest(r)

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordLookup(metrics.LookupMissing, time.Since(start))
		respondError(w, http.StatusBadRequest, MissingMovieMessage)
		return
	}

	titles, err := h.engine.Recommend(r.Context(), req.Movie)
	switch {
	case err == nil:
		metrics.RecordLookup(metrics.LookupHit, time.Since(start))
		respondJSON(w, http.StatusOK, titles)
	case errors.Is(err, recommend.ErrMissingParameter):
		metrics.RecordLookup(metrics.LookupMissing, time.Since(start))
		respondError(w, http.StatusBadRequest, MissingMovieMessage)
	case errors.Is(err, recommend.ErrNotFound):
		metrics.RecordLookup(metrics.LookupNotFound, time.Since(start))
		respondError(w, http.StatusNotFound, NotFoundMessage)
	case errors.Is(err, context.Canceled):
		// The client went away; nothing on this side failed.
		metrics.RecordLookup(metrics.LookupCanceled, time.Since(start))
		logging.Ctx(r.Context()).Debug().Str("movie", req.Movie).Msg("Recommendation lookup canceled")
		respondError(w, http.StatusServiceUnavailable, CanceledMessage)
	default:
		metrics.RecordLookup(metrics.LookupError, time.Since(start))
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("movie", req.Movie).
			Msg("Recommendation lookup failed")
		respondError(w, http.StatusInternalServerError, "")
	}
}
