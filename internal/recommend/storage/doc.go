// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package storage persists the model artifacts handed from the builder to
// the recommendation service.
//
// # Overview
//
// The storage system provides:
//   - Gob serialization of Go types
//   - Gzip compression to reduce storage footprint
//   - SHA-256 checksums of the uncompressed payload, verified on load
//   - Monotonic versions per artifact and pruning of old versions
//   - Atomic writes through a temporary file and rename
//
// # Storage Format
//
//	filename: {artifact}_v{version}.gob.gz
//
//	structure:
//	  - Metadata (ModelMetadata)
//	  - CompressedData (gzip-compressed gob-encoded payload)
//
// A model is two artifacts, "movies" and "similarity", written at the same
// version and tagged with the same model ID. Either can be loaded on its own.
//
// # Usage Example
//
// Builder:
//
//	store, err := storage.NewStore("model")
//	moviesMeta, _, err := store.SaveModel(ctx, model, storage.BuildInfo{
//	    VocabularySize: vec.VocabularySize(),
//	})
//	_, err = store.Prune(ctx, storage.ArtifactMovies, 3)
//
// Service:
//
//	store, err := storage.OpenStore("model")
//	model, err := store.LoadModel(ctx)
//	if errors.Is(err, storage.ErrArtifactInconsistent) {
//	    // refuse to start
//	}
//
// # Thread Safety
//
// Store methods are safe for concurrent use within one process.
package storage
