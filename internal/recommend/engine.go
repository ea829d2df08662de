// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/rs/zerolog"
)

// Engine answers title lookups against a loaded Model.
//
// All state is built in NewEngine and never mutated afterwards, so an Engine
// is safe for concurrent use without locking.
type Engine struct {
	config Config
	logger zerolog.Logger

	info   ModelInfo
	movies []MovieRecord
	sim    *SimilarityMatrix

	// index maps a title to its row. Duplicate titles resolve to the last
	// record carrying that title.
	index      map[string]int
	titles     []string
	duplicates int
}

// NewEngine validates the model and builds the lookup structures.
func NewEngine(model *Model, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if model == nil {
		return nil, fmt.Errorf("model is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("inconsistent model: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend_engine").Logger(),
		info:   model.Info,
		movies: model.Movies,
		sim:    model.Similarity,
		index:  make(map[string]int, len(model.Movies)),
		titles: make([]string, 0, len(model.Movies)),
	}

	for i, m := range model.Movies {
		if prev, ok := e.index[m.Title]; ok {
			e.duplicates++
			e.logger.Debug().
				Str("title", m.Title).
				Int64("shadowed_id", model.Movies[prev].ID).
				Int64("id", m.ID).
				Msg("Duplicate title, later record wins")
		}
		e.index[m.Title] = i
		e.titles = append(e.titles, m.Title)
	}
	sort.Strings(e.titles)

	if e.duplicates > 0 {
		e.logger.Warn().
			Int("duplicates", e.duplicates).
			Msg("Model contains duplicate titles; lookups resolve to the last occurrence")
	}

	e.logger.Info().
		Str("model_id", e.info.ID).
		Int("version", e.info.Version).
		Int("movies", len(e.movies)).
		Int("k", cfg.K).
		Msg("Recommendation engine ready")

	return e, nil
}

// Info returns the identity of the loaded model.
func (e *Engine) Info() ModelInfo {
	return e.info
}

// Len returns the number of movies in the model.
func (e *Engine) Len() int {
	return len(e.movies)
}

// Duplicates returns how many records were shadowed by a later duplicate title.
func (e *Engine) Duplicates() int {
	return e.duplicates
}

// Titles returns every title in the model sorted ascending. The result is a
// copy and may be modified by the caller.
func (e *Engine) Titles() []string {
	return slices.Clone(e.titles)
}

// Recommend returns up to K titles most similar to title, best first.
// The queried movie itself is never part of the result.
func (e *Engine) Recommend(ctx context.Context, title string) ([]string, error) {
	scored, err := e.Similar(ctx, title, e.config.K)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(scored))
	for i, s := range scored {
		titles[i] = s.Title
	}
	return titles, nil
}

// Similar returns up to k scored movies most similar to title. Results are
// ordered by score descending, then by build order.
func (e *Engine) Similar(ctx context.Context, title string, k int) ([]ScoredMovie, error) {
	if title == "" {
		return nil, ErrMissingParameter
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i, ok := e.index[title]
	if !ok {
		return nil, ErrNotFound
	}
	if i < 0 || i >= e.sim.Dim {
		return nil, fmt.Errorf("title %q maps to row %d outside matrix of dimension %d", title, i, e.sim.Dim)
	}

	return e.rank(i, k), nil
}

// rank selects the top k entries of row i excluding column i.
func (e *Engine) rank(i, k int) []ScoredMovie {
	row := e.sim.Row(i)

	limit := min(k, len(row)-1)
	if limit <= 0 {
		return []ScoredMovie{}
	}

	// Bounded insertion keeps the best limit entries in order.
	top := make([]ScoredMovie, 0, limit+1)
	for j, score := range row {
		if j == i {
			continue
		}
		if len(top) == limit && !ranksBefore(score, j, top[limit-1].Score, top[limit-1].Index) {
			continue
		}
		pos := sort.Search(len(top), func(p int) bool {
			return ranksBefore(score, j, top[p].Score, top[p].Index)
		})
		top = slices.Insert(top, pos, ScoredMovie{Index: j, Score: score})
		if len(top) > limit {
			top = top[:limit]
		}
	}

	for p := range top {
		top[p].Title = e.movies[top[p].Index].Title
	}
	return top
}

// ranksBefore orders by score descending then index ascending. NaN sorts last.
func ranksBefore(scoreA float32, idxA int, scoreB float32, idxB int) bool {
	aNaN := math.IsNaN(float64(scoreA))
	bNaN := math.IsNaN(float64(scoreB))
	switch {
	case aNaN && bNaN:
		return idxA < idxB
	case aNaN:
		return false
	case bNaN:
		return true
	case scoreA != scoreB:
		return scoreA > scoreB
	default:
		return idxA < idxB
	}
}
