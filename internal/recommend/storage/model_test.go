// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package storage

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

func testModel() *recommend.Model {
	return &recommend.Model{
		Movies: []recommend.MovieRecord{
			{ID: 19995, Title: "Avatar", Tags: "marine alien jamescameron"},
			{ID: 285, Title: "Pirates of the Caribbean: At World's End", Tags: "pirate ocean"},
			{ID: 206647, Title: "Spectre", Tags: "spy bond"},
		},
		Similarity: &recommend.SimilarityMatrix{
			Dim: 3,
			Values: []float32{
				1, 0.125, 0.0625,
				0.125, 1, 0.25,
				0.0625, 0.25, 1,
			},
		},
	}
}

func TestStore_SaveModelLoadModel_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	ctx := context.Background()
	model := testModel()
	trainedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	moviesMeta, simMeta, err := store.SaveModel(ctx, model, BuildInfo{
		TrainedAt:      trainedAt,
		VocabularySize: 42,
		Duration:       1500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveModel() error = %v", err)
	}
	if moviesMeta.Version != 1 || simMeta.Version != 1 {
		t.Errorf("versions = %d/%d, want 1/1", moviesMeta.Version, simMeta.Version)
	}
	if moviesMeta.ModelID == "" || moviesMeta.ModelID != simMeta.ModelID {
		t.Errorf("model IDs = %q/%q", moviesMeta.ModelID, simMeta.ModelID)
	}
	if moviesMeta.TrainingDurationMS != 1500 || moviesMeta.ItemCount != 3 {
		t.Errorf("movies metadata = %+v", moviesMeta)
	}

	reopened, err := OpenStore(store.Dir())
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	loaded, err := reopened.LoadModel(ctx)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}

	if !reflect.DeepEqual(loaded.Movies, model.Movies) {
		t.Errorf("movies = %+v, want %+v", loaded.Movies, model.Movies)
	}
	if !reflect.DeepEqual(loaded.Similarity, model.Similarity) {
		t.Errorf("similarity = %+v, want %+v", loaded.Similarity, model.Similarity)
	}
	if loaded.Info.ID != moviesMeta.ModelID || loaded.Info.Version != 1 || loaded.Info.VocabularySize != 42 {
		t.Errorf("info = %+v", loaded.Info)
	}
	if !loaded.Info.BuiltAt.Equal(trainedAt) {
		t.Errorf("BuiltAt = %v, want %v", loaded.Info.BuiltAt, trainedAt)
	}
}

func TestStore_SaveModel_IncrementsVersion(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	ctx := context.Background()

	var lastID string
	for want := 1; want <= 3; want++ {
		meta, _, err := store.SaveModel(ctx, testModel(), BuildInfo{})
		if err != nil {
			t.Fatalf("SaveModel() error = %v", err)
		}
		if meta.Version != want {
			t.Errorf("version = %d, want %d", meta.Version, want)
		}
		if meta.ModelID == lastID {
			t.Error("each build should get a new model ID")
		}
		lastID = meta.ModelID
	}

	loaded, err := store.LoadModel(ctx)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}
	if loaded.Info.ID != lastID || loaded.Info.Version != 3 {
		t.Errorf("LoadModel() picked %+v, want latest", loaded.Info)
	}
}

func TestStore_SaveModel_RejectsInconsistentModel(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	model := testModel()
	model.Movies = model.Movies[:2]

	if _, _, err := store.SaveModel(context.Background(), model, BuildInfo{}); err == nil {
		t.Fatal("SaveModel() should reject a model whose matrix does not match its records")
	}
	if _, ok := store.GetLatestVersion(ArtifactMovies); ok {
		t.Error("nothing should have been written")
	}
}

func TestStore_SaveModel_RollsBackPartialPair(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	first := testModel()
	if _, _, err := store.SaveModel(ctx, first, BuildInfo{ModelID: "first"}); err != nil {
		t.Fatalf("SaveModel(first) error = %v", err)
	}

	// A directory at the next movies path makes the final rename fail after
	// the similarity artifact has been written.
	if err := os.Mkdir(store.modelPath(ArtifactMovies, 2), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, _, err := store.SaveModel(ctx, testModel(), BuildInfo{ModelID: "second"}); err == nil {
		t.Fatal("SaveModel() should fail when the movies artifact cannot be written")
	}

	if _, err := os.Stat(store.modelPath(ArtifactSimilarity, 2)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("similarity v2 should have been removed, stat error = %v", err)
	}
	if v, _ := store.GetLatestVersion(ArtifactSimilarity); v != 1 {
		t.Errorf("latest similarity version = %d, want 1", v)
	}

	loaded, err := store.LoadModel(ctx)
	if err != nil {
		t.Fatalf("LoadModel() after rollback error = %v", err)
	}
	if loaded.Info.ID != "first" || loaded.Info.Version != 1 {
		t.Errorf("LoadModel() = %+v, want the first pair", loaded.Info)
	}
}

func TestStore_LoadModel_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(t *testing.T, s *Store)
		wantErr error
	}{
		{
			name:    "empty store",
			setup:   func(*testing.T, *Store) {},
			wantErr: ErrArtifactMissing,
		},
		{
			name: "only movies",
			setup: func(t *testing.T, s *Store) {
				m := testModel()
				if _, err := s.Save(ctx, ArtifactMovies, 1, MoviesState{ModelID: "a", Records: m.Movies}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrArtifactMissing,
		},
		{
			name: "model ids differ",
			setup: func(t *testing.T, s *Store) {
				m := testModel()
				if _, err := s.Save(ctx, ArtifactMovies, 1, MoviesState{ModelID: "a", Records: m.Movies}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
				if _, err := s.Save(ctx, ArtifactSimilarity, 1, SimilarityState{ModelID: "b", Dim: 3, Values: m.Similarity.Values}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrArtifactInconsistent,
		},
		{
			name: "record count differs from dimension",
			setup: func(t *testing.T, s *Store) {
				m := testModel()
				if _, err := s.Save(ctx, ArtifactMovies, 1, MoviesState{ModelID: "a", Records: m.Movies[:2]}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
				if _, err := s.Save(ctx, ArtifactSimilarity, 1, SimilarityState{ModelID: "a", Dim: 3, Values: m.Similarity.Values}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrArtifactInconsistent,
		},
		{
			name: "truncated matrix",
			setup: func(t *testing.T, s *Store) {
				m := testModel()
				if _, err := s.Save(ctx, ArtifactMovies, 1, MoviesState{ModelID: "a", Records: m.Movies}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
				if _, err := s.Save(ctx, ArtifactSimilarity, 1, SimilarityState{ModelID: "a", Dim: 3, Values: m.Similarity.Values[:8]}, ModelMetadata{}); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrArtifactInconsistent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(t.TempDir())
			if err != nil {
				t.Fatalf("NewStore() error = %v", err)
			}
			tt.setup(t, store)

			_, err = store.LoadModel(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadModel() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
