// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package builder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
	"github.com/tomtom215/reelmatch/internal/recommend/features"
	"github.com/tomtom215/reelmatch/internal/recommend/storage"
)

const (
	// sampleSize is the number of neighbours logged per sample title.
	sampleSize = 5

	// topTerms is the number of most frequent vocabulary terms logged.
	topTerms = 10
)

// ErrNoMovies is returned when no complete movie survives loading.
var ErrNoMovies = errors.New("no movies to build from")

// Source provides the joined raw rows. dataset.Source implements it.
type Source interface {
	Load(ctx context.Context) ([]recommend.RawMovie, dataset.Stats, error)
}

// Config controls one build.
type Config struct {
	MaxFeatures    int
	CastLimit      int
	Workers        int
	RetainVersions int
	SampleTitles   []string
}

// Result describes a finished build.
type Result struct {
	ModelID        string
	Version        int
	Movies         int
	Dropped        int
	VocabularySize int
	Pruned         int

	// Artifacts lists the latest stored version of each artifact after
	// pruning.
	Artifacts []storage.ModelMetadata

	LoadDuration       time.Duration
	VectorizeDuration  time.Duration
	SimilarityDuration time.Duration
	SaveDuration       time.Duration
	TotalDuration      time.Duration

	// Samples holds the logged previews keyed by title. Titles absent from
	// the model are not present.
	Samples map[string][]recommend.ScoredMovie
}

// Builder runs the offline pipeline from raw rows to stored artifacts.
type Builder struct {
	config Config
	source Source
	store  *storage.Store
	logger zerolog.Logger
}

// New creates a Builder.
func New(cfg Config, source Source, store *storage.Store, logger zerolog.Logger) *Builder {
	return &Builder{
		config: cfg,
		source: source,
		store:  store,
		logger: logger,
	}
}

// Run loads the dataset, extracts tags, vectorizes them, computes the
// similarity matrix and writes both artifacts. Sample recommendations are
// logged once the artifacts are saved.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{ModelID: uuid.NewString()}

	b.logger.Info().Str("model_id", result.ModelID).Msg("Starting model build")

	raws, stats, err := b.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	result.Dropped = stats.Dropped
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: %d joined rows, %d dropped", ErrNoMovies, stats.Joined, stats.Dropped)
	}

	records, err := features.NewExtractor(b.config.CastLimit).Extract(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("extract features: %w", err)
	}
	result.Movies = len(records)
	result.LoadDuration = time.Since(start)

	phase := time.Now()
	docs := make([]string, len(records))
	for i := range records {
		docs[i] = records[i].Tags
	}
	vectorizer := algorithms.NewCountVectorizer(b.config.MaxFeatures, algorithms.EnglishStopWords())
	vectors, err := vectorizer.FitTransform(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("vectorize tags: %w", err)
	}
	result.VocabularySize = vectorizer.VocabularySize()
	result.VectorizeDuration = time.Since(phase)

	vocab := vectorizer.Vocabulary()
	b.logger.Info().
		Int("movies", result.Movies).
		Int("vocabulary", result.VocabularySize).
		Strs("top_terms", vocab[:min(len(vocab), topTerms)]).
		Dur("duration", result.VectorizeDuration).
		Msg("Tags vectorized")

	phase = time.Now()
	sim, err := algorithms.CosineMatrix(ctx, vectors, b.config.Workers)
	if err != nil {
		return nil, fmt.Errorf("compute similarity: %w", err)
	}
	result.SimilarityDuration = time.Since(phase)

	b.logger.Info().
		Int("dimension", sim.Dim).
		Dur("duration", result.SimilarityDuration).
		Msg("Similarity matrix computed")

	model := &recommend.Model{Movies: records, Similarity: sim}

	phase = time.Now()
	moviesMeta, simMeta, err := b.store.SaveModel(ctx, model, storage.BuildInfo{
		ModelID:        result.ModelID,
		TrainedAt:      time.Now(),
		VocabularySize: result.VocabularySize,
		Duration:       time.Since(start),
	})
	if err != nil {
		return nil, fmt.Errorf("save model: %w", err)
	}
	result.Version = moviesMeta.Version
	result.SaveDuration = time.Since(phase)

	b.logger.Info().
		Str("dir", b.store.Dir()).
		Int("version", result.Version).
		Int64("movies_bytes", moviesMeta.SizeBytes).
		Int64("similarity_bytes", simMeta.SizeBytes).
		Msg("Model artifacts saved")

	result.Pruned = b.prune(ctx)
	result.Artifacts = b.inventory(ctx)

	model.Info = recommend.ModelInfo{
		ID:             result.ModelID,
		Version:        result.Version,
		BuiltAt:        moviesMeta.TrainedAt,
		VocabularySize: result.VocabularySize,
	}
	result.Samples = b.samples(ctx, model)

	result.TotalDuration = time.Since(start)
	b.logger.Info().
		Str("model_id", result.ModelID).
		Int("version", result.Version).
		Int("movies", result.Movies).
		Int("dropped", result.Dropped).
		Dur("duration", result.TotalDuration).
		Msg("Model build complete")

	return result, nil
}

// prune removes artifact versions beyond the retention count. Failures are
// logged; the new model is already in place.
func (b *Builder) prune(ctx context.Context) int {
	if b.config.RetainVersions < 1 {
		return 0
	}

	total := 0
	for _, name := range []string{storage.ArtifactMovies, storage.ArtifactSimilarity} {
		removed, err := b.store.Prune(ctx, name, b.config.RetainVersions)
		total += len(removed)
		if err != nil {
			b.logger.Warn().Err(err).Str("artifact", name).Msg("Failed to prune old artifact versions")
			continue
		}
		if len(removed) > 0 {
			b.logger.Debug().Str("artifact", name).Ints("versions", removed).Msg("Pruned old artifact versions")
		}
	}
	return total
}

// inventory logs the latest version of every stored artifact.
func (b *Builder) inventory(ctx context.Context) []storage.ModelMetadata {
	stored, err := b.store.ListModels(ctx)
	if err != nil {
		b.logger.Warn().Err(err).Msg("Failed to list stored artifacts")
		return nil
	}
	for _, meta := range stored {
		b.logger.Info().
			Str("artifact", meta.Name).
			Int("version", meta.Version).
			Str("model_id", meta.ModelID).
			Int64("bytes", meta.SizeBytes).
			Msg("Stored artifact")
	}
	return stored
}

// samples logs the nearest neighbours of each configured sample title.
func (b *Builder) samples(ctx context.Context, model *recommend.Model) map[string][]recommend.ScoredMovie {
	out := make(map[string][]recommend.ScoredMovie, len(b.config.SampleTitles))
	if len(b.config.SampleTitles) == 0 {
		return out
	}

	engine, err := recommend.NewEngine(model, recommend.Config{K: sampleSize}, b.logger)
	if err != nil {
		b.logger.Warn().Err(err).Msg("Skipping sample recommendations")
		return out
	}

	for _, title := range b.config.SampleTitles {
		similar, err := engine.Similar(ctx, title, sampleSize)
		if err != nil {
			b.logger.Warn().Err(err).Str("title", title).Msg("Sample title unavailable")
			continue
		}
		out[title] = similar

		arr := zerolog.Arr()
		for _, s := range similar {
			arr.Dict(zerolog.Dict().Str("title", s.Title).Float32("score", s.Score))
		}
		b.logger.Info().Str("title", title).Array("recommendations", arr).Msg("Sample recommendations")
	}
	return out
}
