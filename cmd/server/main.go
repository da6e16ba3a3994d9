// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

// Command server runs the Bella Vista backend: the restaurant website
// API for menus, reservations, contact messages, and newsletter signups.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mgiordano/bellavista/internal/api"
	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/config"
	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/logging"
)

// shutdownTimeout bounds graceful shutdown before the process exits.
const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Bella Vista backend starting")

	// Development convenience: generate an ephemeral JWT secret when none
	// is configured. Sessions won't survive a restart. Production requires
	// an explicit secret via config validation.
	if cfg.Security.JWTSecret == "" {
		secret, err := generateSecret()
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		cfg.Security.JWTSecret = secret
		logging.Warn().Msg("JWT_SECRET not set, generated ephemeral secret for this run")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close database")
		}
	}()

	if cfg.Database.SeedDemoData {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.SeedDemoData(seedCtx); err != nil {
			cancel()
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		cancel()
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT manager: %w", err)
	}

	credentials, err := auth.NewCredentialStore(&cfg.Security)
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}
	if !credentials.HasAdmin() {
		logging.Warn().Msg("No admin credentials configured, admin login is disabled")
	}

	loginLimiter := auth.NewLoginLimiter(cfg.Security.RateLimitLogin)
	defer loginLimiter.Stop()

	handler := api.NewHandler(db, jwtManager, credentials, loginLimiter)
	authMW := auth.NewMiddleware(jwtManager)

	chiMWConfig := api.DefaultChiMiddlewareConfig()
	chiMWConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiMWConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	chiMW := api.NewChiMiddleware(chiMWConfig)

	router := api.NewRouter(handler, authMW, chiMW)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}

// generateSecret returns a 64 character hex secret.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
