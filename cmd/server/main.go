// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/reelmatch/docs" // swagger spec served at /swagger
	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/storage"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
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
		Str("model_dir", cfg.Model.Dir).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Reelmatch recommendation service")

	// === LOAD MODEL ===
	// Nothing listens until both artifacts are loaded and consistent.

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.OpenStore(cfg.Model.Dir)
	if err != nil {
		logging.Fatal().Err(err).Str("dir", cfg.Model.Dir).Msg("Model directory unavailable; run the builder first")
	}

	loadStart := time.Now()
	model, err := store.LoadModel(ctx)
	if err != nil {
		logging.Fatal().Err(err).Str("dir", cfg.Model.Dir).Msg("Failed to load model artifacts")
	}

	engine, err := recommend.NewEngine(model, recommend.Config{K: cfg.Recommend.K}, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	metrics.RecordModelLoaded(engine.Len(), model.Info.Version, time.Now())
	logging.Info().
		Str("model_id", model.Info.ID).
		Int("version", model.Info.Version).
		Int("movies", engine.Len()).
		Int("duplicate_titles", engine.Duplicates()).
		Dur("duration", time.Since(loadStart)).
		Msg("Model loaded")

	// === HTTP SERVER ===

	router := api.NewRouter(
		api.NewHandler(engine),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)),
	)

	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := tree.Run(ctx); err != nil {
		// Fatal exits without running deferred calls.
		cancel()
		logging.Fatal().Err(err).Msg("Recommendation service stopped with an error")
	}
	logging.Info().Msg("Service stopped gracefully")
}
