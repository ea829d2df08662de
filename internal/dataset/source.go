// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// ErrInputMissing is returned when an input file does not exist.
var ErrInputMissing = errors.New("input file missing")

// Stats summarizes one load.
type Stats struct {
	Movies    int // rows in the movies file
	Credits   int // rows in the credits file
	Unmatched int // movies rows with no credits row, non-integer ids included
	Joined    int // rows after joining on movie id
	Dropped   int // joined rows with a missing required field
	Kept      int
}

// Source reads the movies and credits files.
type Source struct {
	MoviesPath  string
	CreditsPath string

	logger zerolog.Logger
}

// NewSource creates a source for the two CSV files.
func NewSource(moviesPath, creditsPath string) *Source {
	return &Source{
		MoviesPath:  moviesPath,
		CreditsPath: creditsPath,
		logger:      logging.WithComponent("dataset"),
	}
}

// joinQuery selects the joined rows in movies file order. Ids that are not
// integers cast to NULL and never join.
const joinQuery = `
SELECT TRY_CAST(trim(m.id) AS BIGINT), m.title, m.overview, m.genres, m.keywords, c."cast", c.crew
FROM (SELECT row_number() OVER () AS ord, * FROM %s) AS m
JOIN (SELECT row_number() OVER () AS ord, * FROM %s) AS c
  ON TRY_CAST(trim(m.id) AS BIGINT) = TRY_CAST(trim(c.movie_id) AS BIGINT)
ORDER BY m.ord, c.ord`

// unmatchedQuery counts movies rows that join no credits row.
const unmatchedQuery = `
SELECT count(*) FROM %s AS m
WHERE NOT EXISTS (
  SELECT 1 FROM %s AS c
  WHERE TRY_CAST(trim(c.movie_id) AS BIGINT) = TRY_CAST(trim(m.id) AS BIGINT)
)`

// Load joins movies and credits on the movie id and returns one RawMovie
// per joined row with every required field present.
func (s *Source) Load(ctx context.Context) ([]recommend.RawMovie, Stats, error) {
	var stats Stats

	for _, path := range []string{s.MoviesPath, s.CreditsPath} {
		if err := checkInput(path); err != nil {
			return nil, stats, err
		}
	}

	db, err := OpenDuckDB(ctx)
	if err != nil {
		return nil, stats, err
	}
	defer closeQuietly(db)

	movies, credits := readCSV(s.MoviesPath), readCSV(s.CreditsPath)

	if stats.Movies, err = countRows(ctx, db, movies); err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", s.MoviesPath, err)
	}
	if stats.Credits, err = countRows(ctx, db, credits); err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", s.CreditsPath, err)
	}

	if err := db.QueryRowContext(ctx, fmt.Sprintf(unmatchedQuery, movies, credits)).Scan(&stats.Unmatched); err != nil {
		return nil, stats, fmt.Errorf("match movies and credits: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(joinQuery, movies, credits))
	if err != nil {
		return nil, stats, fmt.Errorf("join movies and credits: %w", err)
	}
	defer closeQuietly(rows)

	raws := make([]recommend.RawMovie, 0, stats.Movies)
	for rows.Next() {
		var id int64
		var title, overview, genres, keywords, cast, crew sql.NullString
		if err := rows.Scan(&id, &title, &overview, &genres, &keywords, &cast, &crew); err != nil {
			return nil, stats, fmt.Errorf("scan joined row: %w", err)
		}
		stats.Joined++

		if !present(title, overview, genres, keywords, cast, crew) {
			stats.Dropped++
			continue
		}

		raws = append(raws, recommend.RawMovie{
			ID:       id,
			Title:    title.String,
			Overview: overview.String,
			Genres:   genres.String,
			Keywords: keywords.String,
			Cast:     cast.String,
			Crew:     crew.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("iterate joined rows: %w", err)
	}

	stats.Kept = len(raws)
	s.logger.Info().
		Int("movies", stats.Movies).
		Int("credits", stats.Credits).
		Int("unmatched", stats.Unmatched).
		Int("joined", stats.Joined).
		Int("dropped", stats.Dropped).
		Msg("Dataset loaded")

	return raws, stats, nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrInputMissing, path)
	case err != nil:
		return fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		return fmt.Errorf("%w: %s is a directory", ErrInputMissing, path)
	}
	return nil
}

func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// present reports whether every field is non-null and non-empty.
func present(fields ...sql.NullString) bool {
	for _, f := range fields {
		if !f.Valid || f.String == "" {
			return false
		}
	}
	return true
}
