// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/mixgraph/internal/api"
	"github.com/tomtom215/mixgraph/internal/config"
	"github.com/tomtom215/mixgraph/internal/library"
	"github.com/tomtom215/mixgraph/internal/logging"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/supervisor"
	"github.com/tomtom215/mixgraph/internal/supervisor/services"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, root.configPath)
		},
	}
}

// serve runs the service until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config, configPath string) error {
	logging.Init(cfg.Logging)
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("library_path", cfg.Library.Path).
		Bool("library_in_memory", cfg.Library.InMemory).
		Msg("Starting mixgraph")

	store, err := library.Open(library.Options{
		Path:     cfg.Library.Path,
		InMemory: cfg.Library.InMemory,
	}, logging.WithComponent("library"))
	if err != nil {
		return fmt.Errorf("open library store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing library store")
		}
	}()

	opt, err := optimizer.NewOptimizer(cfg.OptimizerConfig(), logging.WithComponent("optimizer"))
	if err != nil {
		return fmt.Errorf("create optimizer: %w", err)
	}

	limits, cacheCfg, mwCfg := apiOptions(cfg)
	if cfg.API.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}

	handler := api.NewHandler(opt, store, limits, cacheCfg, logging.WithComponent("api"))
	router := api.NewRouter(handler, mwCfg, logging.WithComponent("http"))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddStorageService(services.NewLibraryGCService(store, cfg.Library.GCInterval, logging.WithComponent("supervisor")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("supervisor")))

	watchLogLevel(configPath)

	logging.Info().Msg("Starting supervisor tree")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Mixgraph stopped")
	return nil
}

// apiOptions maps the API configuration onto the handler and middleware
// settings.
func apiOptions(cfg *config.Config) (api.Limits, api.CacheConfig, *api.ChiMiddlewareConfig) {
	limits := api.Limits{
		RequestTimeout:  cfg.Optimizer.RequestTimeout,
		MaxTargetLength: cfg.Optimizer.MaxTargetLength,
		MaxTracks:       cfg.Optimizer.MaxTracks,
		MaxBodyBytes:    cfg.API.MaxBodyBytes,
	}
	cacheCfg := api.CacheConfig{
		Entries: cfg.API.CacheEntries,
		TTL:     cfg.API.CacheTTL,
	}

	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.API.CORSOrigins
	mw.RateLimitRequests = cfg.API.RateLimitRequests
	mw.RateLimitWindow = cfg.API.RateLimitWindow
	mw.RateLimitDisabled = cfg.API.RateLimitDisabled
	mw.ThrottleRate = cfg.API.ThrottleRate
	mw.ThrottleBurst = cfg.API.ThrottleBurst
	return limits, cacheCfg, mw
}

// watchLogLevel reapplies the logging section when the config file changes.
// Other settings need a restart.
func watchLogLevel(configPath string) {
	if configPath == "" {
		return
	}
	err := config.WatchConfigFile(configPath, func() {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			logging.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		logging.Init(cfg.Logging)
		logging.Info().Str("level", cfg.Logging.Level).Msg("Logging configuration reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", configPath).Msg("Config file watch unavailable")
	}
}
