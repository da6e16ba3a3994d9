// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/validation"
)

// Handler holds the dependencies for all API handlers.
type Handler struct {
	db           *database.DB
	jwtManager   *auth.JWTManager
	credentials  *auth.CredentialStore
	loginLimiter *auth.LoginLimiter
	startTime    time.Time
}

// NewHandler creates an API handler with its dependencies.
func NewHandler(db *database.DB, jwtManager *auth.JWTManager, credentials *auth.CredentialStore, loginLimiter *auth.LoginLimiter) *Handler {
	return &Handler{
		db:           db,
		jwtManager:   jwtManager,
		credentials:  credentials,
		loginLimiter: loginLimiter,
		startTime:    time.Now(),
	}
}

// HealthResponse is the body for GET /api/health.
type HealthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Version       string `json:"version"`
}

// Version is the reported application version. Overridden at build time
// with -ldflags "-X github.com/mgiordano/bellavista/internal/api.Version=...".
var Version = "dev"

// Health reports service and database health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:        "ok",
		Database:      "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Version:       Version,
	}

	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, resp)
}

// validateRequest validates a request struct and writes the 400 response
// itself when validation fails. Returns true when the request is valid.
func validateRequest(w http.ResponseWriter, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		respondValidationError(w, verr)
		return false
	}
	return true
}
