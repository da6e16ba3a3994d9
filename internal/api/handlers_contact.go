// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"errors"
	"net/http"

	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/logging"
	"github.com/mgiordano/bellavista/internal/metrics"
	"github.com/mgiordano/bellavista/internal/models"
)

// CreateContactMessage stores a contact form submission.
func (h *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	message, err := h.db.CreateContactMessage(r.Context(), &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to store message", err)
		return
	}

	metrics.ContactMessagesReceived.Inc()
	logging.Ctx(r.Context()).Info().Str("message_id", message.ID).Msg("Contact message received")

	respondJSON(w, http.StatusCreated, message)
}

// ContactMessages lists all contact messages, newest first. Admin only.
func (h *Handler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	messages, err := h.db.GetContactMessages(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch messages", err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

// MarkMessageRead marks a contact message as read. Admin only. Marking an
// already read message succeeds unchanged.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	id := r.PathValue("id")

	if err := h.db.MarkMessageAsRead(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrMessageNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "Contact message not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to mark message as read", err)
		return
	}

	message, err := h.db.GetContactMessage(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch message", err)
		return
	}

	respondJSON(w, http.StatusOK, message)
}
