// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/listenlog/internal/api"
	"github.com/tomtom215/listenlog/internal/auth"
	"github.com/tomtom215/listenlog/internal/config"
	"github.com/tomtom215/listenlog/internal/dashboard"
	"github.com/tomtom215/listenlog/internal/dataset"
	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/supervisor"
	"github.com/tomtom215/listenlog/internal/supervisor/services"
	ws "github.com/tomtom215/listenlog/internal/websocket"
	"github.com/tomtom215/listenlog/internal/wordimage"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("engine", cfg.Dataset.Engine).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting Listenlog")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := dataset.Load(ctx, dataset.Options{
		Path:   cfg.Dataset.Path,
		Engine: cfg.Dataset.Engine,
	})
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}

	dash := dashboard.NewContext(table)
	kpis := dash.Kpis()
	logging.Info().
		Int("rows", dash.Rows()).
		Int("artists", len(dash.ArtistOptions())).
		Int("tracks", kpis.TotalTracks).
		Float64("hours", kpis.TotalHours).
		Msg("Dataset loaded")

	imageOpts := wordimage.DefaultOptions()
	imageOpts.Width = cfg.WordImage.Width
	imageOpts.Height = cfg.WordImage.Height
	renderer, err := wordimage.New(imageOpts)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create word image renderer")
	}

	binder := dashboard.NewBinder(dash, renderer)
	wsHub := ws.NewHub()

	var basic *auth.BasicAuthManager
	if cfg.AuthEnabled() {
		basic, err = auth.NewBasicAuthManager(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize basic auth")
		}
		logging.Info().Str("username", cfg.Security.AdminUsername).Msg("Basic authentication enabled")
	}

	handler, err := api.NewHandler(binder, wsHub, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, auth.NewMiddleware(basic), chiMw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Listenlog stopped")
}
