// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"errors"
	"math"
	"sort"
)

// ErrNotFitted is returned by Transform before Fit.
var ErrNotFitted = errors.New("vectorizer has not been fitted")

// DefaultMaxFeatures caps the vocabulary size.
const DefaultMaxFeatures = 5000

// ctxCheckEvery is how many documents are processed between context checks.
const ctxCheckEvery = 512

// SparseVector holds the non-zero term counts of one document. Indices are
// strictly increasing vocabulary positions.
type SparseVector struct {
	Indices []int32
	Counts  []float32
}

// Norm returns the Euclidean norm.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, c := range v.Counts {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}

// CountVectorizer builds a bag-of-words vocabulary and count vectors.
type CountVectorizer struct {
	maxFeatures int
	stopWords   StopWords

	vocabulary map[string]int32
	terms      []string
}

// NewCountVectorizer creates a vectorizer keeping at most maxFeatures terms.
// A non-positive maxFeatures uses DefaultMaxFeatures.
func NewCountVectorizer(maxFeatures int, stopWords StopWords) *CountVectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &CountVectorizer{
		maxFeatures: maxFeatures,
		stopWords:   stopWords,
	}
}

// termStat tracks corpus frequency and first appearance of one term.
type termStat struct {
	term      string
	count     int
	firstSeen int
}

// Fit selects the vocabulary: the maxFeatures most frequent non-stop-word
// terms, ties broken by first appearance.
func (cv *CountVectorizer) Fit(ctx context.Context, docs []string) error {
	stats := make(map[string]*termStat)
	order := 0

	for d, doc := range docs {
		if d%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for _, tok := range cv.tokens(doc) {
			st, ok := stats[tok]
			if !ok {
				st = &termStat{term: tok, firstSeen: order}
				stats[tok] = st
				order++
			}
			st.count++
		}
	}

	ranked := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})
	if len(ranked) > cv.maxFeatures {
		ranked = ranked[:cv.maxFeatures]
	}

	cv.vocabulary = make(map[string]int32, len(ranked))
	cv.terms = make([]string, len(ranked))
	for i, st := range ranked {
		cv.vocabulary[st.term] = int32(i)
		cv.terms[i] = st.term
	}
	return nil
}

// Transform returns one count vector per document in input order.
func (cv *CountVectorizer) Transform(ctx context.Context, docs []string) ([]SparseVector, error) {
	if cv.vocabulary == nil {
		return nil, ErrNotFitted
	}

	vectors := make([]SparseVector, len(docs))
	counts := make(map[int32]float32)
	for d, doc := range docs {
		if d%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		clear(counts)
		for _, tok := range cv.tokens(doc) {
			if idx, ok := cv.vocabulary[tok]; ok {
				counts[idx]++
			}
		}

		vec := SparseVector{
			Indices: make([]int32, 0, len(counts)),
			Counts:  make([]float32, 0, len(counts)),
		}
		for idx := range counts {
			vec.Indices = append(vec.Indices, idx)
		}
		sort.Slice(vec.Indices, func(i, j int) bool { return vec.Indices[i] < vec.Indices[j] })
		for _, idx := range vec.Indices {
			vec.Counts = append(vec.Counts, counts[idx])
		}
		vectors[d] = vec
	}
	return vectors, nil
}

// FitTransform fits the vocabulary on docs and vectorizes them.
func (cv *CountVectorizer) FitTransform(ctx context.Context, docs []string) ([]SparseVector, error) {
	if err := cv.Fit(ctx, docs); err != nil {
		return nil, err
	}
	return cv.Transform(ctx, docs)
}

// Vocabulary returns the selected terms in rank order.
func (cv *CountVectorizer) Vocabulary() []string {
	out := make([]string, len(cv.terms))
	copy(out, cv.terms)
	return out
}

// VocabularySize returns the number of selected terms.
func (cv *CountVectorizer) VocabularySize() int {
	return len(cv.terms)
}

func (cv *CountVectorizer) tokens(doc string) []string {
	toks := Tokenize(doc)
	if len(cv.stopWords) == 0 {
		return toks
	}
	kept := toks[:0]
	for _, t := range toks {
		if !cv.stopWords.Contains(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
