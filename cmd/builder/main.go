// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/reelmatch/internal/builder"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("movies_csv", cfg.Builder.MoviesCSV).
		Str("credits_csv", cfg.Builder.CreditsCSV).
		Str("model_dir", cfg.Model.Dir).
		Msg("Starting Reelmatch model builder")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(cfg.Model.Dir)
	if err != nil {
		logging.Fatal().Err(err).Str("dir", cfg.Model.Dir).Msg("Failed to prepare model directory")
	}

	b := builder.New(builder.Config{
		MaxFeatures:    cfg.Builder.MaxFeatures,
		CastLimit:      cfg.Builder.CastLimit,
		Workers:        cfg.Builder.Workers,
		RetainVersions: cfg.Model.RetainVersions,
		SampleTitles:   cfg.Builder.SampleTitles,
	}, dataset.NewSource(cfg.Builder.MoviesCSV, cfg.Builder.CreditsCSV), store, logging.WithComponent("builder"))

	result, err := b.Run(ctx)
	if err != nil {
		// Fatal exits without running deferred calls.
		stop()
		logging.Fatal().Err(err).Msg("Model build failed")
	}

	logging.Info().
		Str("model_id", result.ModelID).
		Int("version", result.Version).
		Int("movies", result.Movies).
		Dur("duration", result.TotalDuration).
		Msg("Model build complete")
}
