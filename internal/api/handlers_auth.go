// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/logging"
	"github.com/mgiordano/bellavista/internal/metrics"
	"github.com/mgiordano/bellavista/internal/models"
)

// LoginResponse is the body for a successful POST /api/auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login authenticates the bootstrap admin account and issues a session
// token. Attempts are rate limited per client IP on top of the route
// group's rate limit.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if !h.loginLimiter.Allow(ip) {
		metrics.LoginAttempts.WithLabelValues("rate_limited").Inc()
		respondError(w, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Too many login attempts, try again later", nil)
		return
	}

	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	if !h.credentials.VerifyAdmin(req.Email, req.Password) {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		logging.Ctx(r.Context()).Warn().Str("ip", sanitizeLogValue(ip)).Msg("Login failed")
		respondError(w, http.StatusUnauthorized, ErrCodeAuthentication, "Invalid email or password", nil)
		return
	}

	user, err := h.upsertAdminAccount(r, req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to provision account", err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create session", err)
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logging.Ctx(r.Context()).Info().Str("user_id", user.ID).Msg("Admin logged in")

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}

// upsertAdminAccount ensures the admin login has a persistent user row,
// creating it on first login and refreshing it afterwards.
func (h *Handler) upsertAdminAccount(r *http.Request, email string) (*models.User, error) {
	email = strings.ToLower(email)

	existing, err := h.db.GetUserByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, database.ErrUserNotFound) {
		return nil, err
	}

	user := &models.User{
		Email:   email,
		IsAdmin: true,
	}
	if existing != nil {
		user.ID = existing.ID
		user.FirstName = existing.FirstName
		user.LastName = existing.LastName
		user.ProfileImageURL = existing.ProfileImageURL
		user.CreatedAt = existing.CreatedAt
	}

	return h.db.UpsertUser(r.Context(), user)
}

// CurrentUser returns the account for the authenticated session.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := requireClaims(w, r)
	if claims == nil {
		return
	}

	user, err := h.db.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, ErrCodeAuthentication, "Account no longer exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch user", err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// clientIP extracts the client IP from the request. The router's RealIP
// middleware has already resolved X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
