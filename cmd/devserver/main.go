// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package main is the development server for the skills display client.
//
// It serves the client's static files and source aliases and proxies every
// other request to the skills backend, adding the client library version
// headers the backend would add.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 (highest priority wins):
//   - Environment variables
//   - Config file (CONFIG_PATH, skills.yaml, /etc/skillsdisplay/config.yaml)
//   - Built-in defaults
//
// The defaults bind localhost:8082 and proxy to http://localhost:8080:
//
//	export DEV_SERVER_PROXY=http://localhost:8080
//	export DEV_SERVER_ALIASES=@=src
//	export CLIENT_LIB_VERSION=3.1.0
//	./devserver
//
// # Signal Handling
//
// SIGINT and SIGTERM stop accepting connections and wait up to
// SHUTDOWN_TIMEOUT for in-flight requests.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/skillsdisplay/internal/config"
	"github.com/tomtom215/skillsdisplay/internal/devserver"
	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/supervisor"
	"github.com/tomtom215/skillsdisplay/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("addr", cfg.DevServer.Addr()).
		Str("proxy", cfg.DevServer.Proxy).
		Str("static_dir", cfg.DevServer.StaticDir).
		Interface("aliases", cfg.DevServer.Aliases).
		Msg("Configuration loaded")

	if cfg.DevServer.Proxy == "" {
		logging.Warn().Msg("No backend proxy configured; unmatched requests will return 404")
	}
	if cfg.DevServer.RateLimitRequests == 0 {
		logging.Debug().Msg("Rate limiting disabled")
	}

	srv, err := devserver.New(cfg.DevServer)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create dev server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.DevServer.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService("devserver", srv.HTTPServer(), cfg.DevServer.ShutdownTimeout))
	logging.Info().Str("url", cfg.DevServer.URL()).Msg("Dev server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	exitCode := 0
	errCh := tree.ServeBackground(ctx)
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		exitCode = 1
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Dev server stopped")
	cancel()
	os.Exit(exitCode)
}
