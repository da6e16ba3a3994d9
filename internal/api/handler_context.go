// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"net/http"

	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/logging"
)

// requireClaims extracts the authenticated session claims, writing a 401
// response when the request carries none. Routes using this must sit
// behind the Authenticate middleware; the nil check is the safety net for
// misconfigured routing.
func requireClaims(w http.ResponseWriter, r *http.Request) *auth.Claims {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, ErrCodeAuthentication, "Authentication required", nil)
		return nil
	}
	return claims
}

// requireAdmin extracts the authenticated claims and enforces the admin
// flag. Writes 401 for unauthenticated requests and 403 for authenticated
// non-admins. Returns nil when the request was rejected.
func requireAdmin(w http.ResponseWriter, r *http.Request) *auth.Claims {
	claims := requireClaims(w, r)
	if claims == nil {
		return nil
	}

	if !claims.IsAdmin {
		logging.Ctx(r.Context()).Warn().
			Str("user_id", sanitizeLogValue(claims.UserID)).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Admin access denied")
		respondError(w, http.StatusForbidden, ErrCodeAuthorization, "Admin access required", nil)
		return nil
	}

	return claims
}
