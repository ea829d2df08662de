// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package features

import (
	"context"
	"strings"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DefaultCastLimit is the number of leading cast members kept as tags.
const DefaultCastLimit = 3

// directorJob marks the crew entry used as the director tag.
const directorJob = "Director"

// Extractor turns raw dataset rows into MovieRecords.
type Extractor struct {
	castLimit int
}

// NewExtractor creates an Extractor keeping castLimit cast members.
// A non-positive castLimit keeps none.
func NewExtractor(castLimit int) *Extractor {
	return &Extractor{castLimit: max(castLimit, 0)}
}

// Extract converts rows in order. Row i of the input becomes record i.
func (e *Extractor) Extract(ctx context.Context, raws []recommend.RawMovie) ([]recommend.MovieRecord, error) {
	records := make([]recommend.MovieRecord, len(raws))
	for i := range raws {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		records[i] = recommend.MovieRecord{
			ID:    raws[i].ID,
			Title: raws[i].Title,
			Tags:  e.Tags(&raws[i]),
		}
	}
	return records, nil
}

// Tags builds the lowercase bag of words for one movie: overview words,
// genres, keywords, leading cast and director, joined by single spaces.
func (e *Extractor) Tags(raw *recommend.RawMovie) string {
	tokens := strings.Fields(raw.Overview)
	tokens = append(tokens, Names(raw.Genres)...)
	tokens = append(tokens, Names(raw.Keywords)...)
	tokens = append(tokens, TopNames(raw.Cast, e.castLimit)...)
	tokens = append(tokens, Director(raw.Crew)...)
	return strings.ToLower(strings.Join(tokens, " "))
}

// Names returns the collapsed name of every object carrying one.
func Names(s string) []string {
	objs := ParseObjects(s)
	names := make([]string, 0, len(objs))
	for _, obj := range objs {
		if name, ok := obj.String("name"); ok {
			names = append(names, collapse(name))
		}
	}
	return names
}

// TopNames returns at most n names in input order.
func TopNames(s string, n int) []string {
	names := Names(s)
	if n < 0 {
		n = 0
	}
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// Director returns the collapsed name of the first crew entry whose job is
// Director, or an empty list.
func Director(s string) []string {
	for _, obj := range ParseObjects(s) {
		job, ok := obj.String("job")
		if !ok || job != directorJob {
			continue
		}
		if name, ok := obj.String("name"); ok {
			return []string{collapse(name)}
		}
	}
	return []string{}
}

// collapse removes all whitespace so multi-word names become one token.
func collapse(name string) string {
	return strings.Join(strings.Fields(name), "")
}
