// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"time"
)

// MovieRecord is one movie in build order.
type MovieRecord struct {
	// ID is the source dataset identifier.
	ID int64 `json:"id"`

	// Title is the lookup key used by the service.
	Title string `json:"title"`

	// Tags is the lowercase, space-joined bag of words describing the movie.
	Tags string `json:"tags"`
}

// SimilarityMatrix is a dense square matrix of cosine scores stored in
// row-major order. Row and column i correspond to the i-th MovieRecord.
type SimilarityMatrix struct {
	Dim    int
	Values []float32
}

// NewSimilarityMatrix allocates a zeroed dim x dim matrix.
func NewSimilarityMatrix(dim int) *SimilarityMatrix {
	return &SimilarityMatrix{
		Dim:    dim,
		Values: make([]float32, dim*dim),
	}
}

// Row returns row i without copying. Callers must not modify it.
func (m *SimilarityMatrix) Row(i int) []float32 {
	return m.Values[i*m.Dim : (i+1)*m.Dim]
}

// At returns the score between movies i and j.
func (m *SimilarityMatrix) At(i, j int) float32 {
	return m.Values[i*m.Dim+j]
}

// Set stores the score between movies i and j.
func (m *SimilarityMatrix) Set(i, j int, v float32) {
	m.Values[i*m.Dim+j] = v
}

// Validate checks that the backing slice matches the declared dimension.
func (m *SimilarityMatrix) Validate() error {
	if m == nil {
		return fmt.Errorf("similarity matrix is nil")
	}
	if m.Dim < 0 {
		return fmt.Errorf("similarity matrix has negative dimension %d", m.Dim)
	}
	if len(m.Values) != m.Dim*m.Dim {
		return fmt.Errorf("similarity matrix has %d values, want %d for dimension %d",
			len(m.Values), m.Dim*m.Dim, m.Dim)
	}
	return nil
}

// ModelInfo identifies a built model. Both artifacts of a model share it.
type ModelInfo struct {
	// ID is a UUID assigned by the builder to the artifact pair.
	ID string `json:"model_id"`

	// Version is the artifact version in the store.
	Version int `json:"version"`

	// BuiltAt is when the builder finished computing the model.
	BuiltAt time.Time `json:"built_at"`

	// VocabularySize is the number of terms used for vectorization.
	VocabularySize int `json:"vocabulary_size"`
}

// Model is the in-memory pair of artifacts served by the Engine.
type Model struct {
	Info       ModelInfo
	Movies     []MovieRecord
	Similarity *SimilarityMatrix
}

// Validate checks the row-index correspondence between movies and matrix.
func (m *Model) Validate() error {
	if err := m.Similarity.Validate(); err != nil {
		return err
	}
	if len(m.Movies) != m.Similarity.Dim {
		return fmt.Errorf("model has %d movies but a %dx%d similarity matrix",
			len(m.Movies), m.Similarity.Dim, m.Similarity.Dim)
	}
	return nil
}

// ScoredMovie is a recommendation with its similarity score.
type ScoredMovie struct {
	Index int     `json:"-"`
	Title string  `json:"title"`
	Score float32 `json:"score"`
}

// RawMovie is one joined dataset row before feature extraction. The list
// columns hold serialized lists of objects exactly as read from the files.
type RawMovie struct {
	ID       int64
	Title    string
	Overview string
	Genres   string
	Keywords string
	Cast     string
	Crew     string
}
