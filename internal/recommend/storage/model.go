// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package storage

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Artifact names.
const (
	ArtifactMovies     = "movies"
	ArtifactSimilarity = "similarity"
)

// Startup errors of the recommendation service.
var (
	// ErrArtifactMissing means an artifact is absent, unreadable or corrupt.
	ErrArtifactMissing = errors.New("model artifact missing")

	// ErrArtifactInconsistent means both artifacts loaded but do not belong
	// together.
	ErrArtifactInconsistent = errors.New("model artifacts inconsistent")
)

// MoviesState is the serialized form of the movie record list.
type MoviesState struct {
	ModelID string
	Records []recommend.MovieRecord
}

// SimilarityState is the serialized form of the similarity matrix.
type SimilarityState struct {
	ModelID string
	Dim     int
	Values  []float32
}

// BuildInfo describes a model handed to SaveModel.
type BuildInfo struct {
	// ModelID identifies the artifact pair. Empty generates a new UUID.
	ModelID        string
	TrainedAt      time.Time
	VocabularySize int
	Duration       time.Duration
}

// SaveModel writes both artifacts at the next common version and returns
// their metadata. The model ID is stored inside each payload so a mixed pair
// is detected on load.
func (s *Store) SaveModel(ctx context.Context, model *recommend.Model, info BuildInfo) (movies, similarity ModelMetadata, err error) {
	if model == nil {
		return ModelMetadata{}, ModelMetadata{}, fmt.Errorf("model is nil")
	}
	if err := model.Validate(); err != nil {
		return ModelMetadata{}, ModelMetadata{}, fmt.Errorf("refusing to save: %w", err)
	}

	if info.ModelID == "" {
		info.ModelID = uuid.NewString()
	}
	if info.TrainedAt.IsZero() {
		info.TrainedAt = time.Now()
	}

	version := s.nextVersion(ArtifactMovies, ArtifactSimilarity)
	meta := ModelMetadata{
		ModelID:            info.ModelID,
		TrainedAt:          info.TrainedAt,
		ItemCount:          len(model.Movies),
		VocabularySize:     info.VocabularySize,
		TrainingDurationMS: info.Duration.Milliseconds(),
	}

	// The similarity artifact is written first and removed again if the
	// movies write fails, so the previous pair stays the latest.
	similarity, err = s.Save(ctx, ArtifactSimilarity, version, SimilarityState{
		ModelID: info.ModelID,
		Dim:     model.Similarity.Dim,
		Values:  model.Similarity.Values,
	}, meta)
	if err != nil {
		return ModelMetadata{}, ModelMetadata{}, fmt.Errorf("save %s: %w", ArtifactSimilarity, err)
	}

	movies, err = s.Save(ctx, ArtifactMovies, version, MoviesState{
		ModelID: info.ModelID,
		Records: model.Movies,
	}, meta)
	if err != nil {
		if delErr := s.Delete(context.WithoutCancel(ctx), ArtifactSimilarity, version); delErr != nil {
			err = errors.Join(err, fmt.Errorf("roll back %s v%d: %w", ArtifactSimilarity, version, delErr))
		}
		return ModelMetadata{}, ModelMetadata{}, fmt.Errorf("save %s: %w", ArtifactMovies, err)
	}

	return movies, similarity, nil
}

// nextVersion returns one more than the highest version of any name.
func (s *Store) nextVersion(names ...string) int {
	next := 1
	for _, name := range names {
		if v, ok := s.GetLatestVersion(name); ok && v >= next {
			next = v + 1
		}
	}
	return next
}

// LoadModel loads the latest movies artifact and the latest similarity
// artifact independently and checks that they form one model.
//
// Errors wrap ErrArtifactMissing or ErrArtifactInconsistent.
func (s *Store) LoadModel(ctx context.Context) (*recommend.Model, error) {
	var movies MoviesState
	moviesMeta, err := s.Load(ctx, ArtifactMovies, 0, &movies)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArtifactMissing, ArtifactMovies, err)
	}

	var sim SimilarityState
	simMeta, err := s.Load(ctx, ArtifactSimilarity, 0, &sim)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArtifactMissing, ArtifactSimilarity, err)
	}

	switch {
	case movies.ModelID != sim.ModelID:
		return nil, fmt.Errorf("%w: movies belong to model %s (v%d) but similarity to model %s (v%d)",
			ErrArtifactInconsistent, movies.ModelID, moviesMeta.Version, sim.ModelID, simMeta.Version)
	case len(movies.Records) != sim.Dim:
		return nil, fmt.Errorf("%w: %d movie records but similarity dimension %d",
			ErrArtifactInconsistent, len(movies.Records), sim.Dim)
	case len(sim.Values) != sim.Dim*sim.Dim:
		return nil, fmt.Errorf("%w: similarity has %d values, want %d",
			ErrArtifactInconsistent, len(sim.Values), sim.Dim*sim.Dim)
	}

	return &recommend.Model{
		Info: recommend.ModelInfo{
			ID:             movies.ModelID,
			Version:        moviesMeta.Version,
			BuiltAt:        moviesMeta.TrainedAt,
			VocabularySize: moviesMeta.VocabularySize,
		},
		Movies: movies.Records,
		Similarity: &recommend.SimilarityMatrix{
			Dim:    sim.Dim,
			Values: sim.Values,
		},
	}, nil
}

// Register gob types for serialization.
//
//nolint:gochecknoinits // gob.Register must be called in init for type registration
func init() {
	gob.Register(MoviesState{})
	gob.Register(SimilarityState{})
	gob.Register(ModelMetadata{})
	gob.Register(storedFile{})
}
