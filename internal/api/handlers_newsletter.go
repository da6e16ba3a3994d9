// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"net/http"

	"github.com/mgiordano/bellavista/internal/logging"
	"github.com/mgiordano/bellavista/internal/metrics"
)

// SubscribeNewsletter adds an email to the newsletter list. Subscribing
// twice returns the existing subscription, so the endpoint is safe to
// retry from the website form.
func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	subscriber, err := h.db.SubscribeNewsletter(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to subscribe", err)
		return
	}

	metrics.NewsletterSignups.Inc()
	logging.Ctx(r.Context()).Info().Str("subscriber_id", subscriber.ID).Msg("Newsletter signup")

	respondJSON(w, http.StatusCreated, subscriber)
}

// NewsletterSubscribers lists all newsletter subscribers. Admin only.
func (h *Handler) NewsletterSubscribers(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	subscribers, err := h.db.GetNewsletterSubscribers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch subscribers", err)
		return
	}

	respondJSON(w, http.StatusOK, subscribers)
}
