// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"errors"
	"net/http"

	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/logging"
	"github.com/mgiordano/bellavista/internal/metrics"
	"github.com/mgiordano/bellavista/internal/models"
)

// CreateReservation accepts a booking request. Anonymous and logged-in
// requests are both accepted; a logged-in user's ID is attached to the
// reservation. New reservations always start as pending.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "date must use the YYYY-MM-DD format", nil)
		return
	}

	reservation := &models.Reservation{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            date,
		Time:            req.Time,
		Guests:          req.Guests,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
	}

	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		reservation.UserID = &claims.UserID
	}

	created, err := h.db.CreateReservation(r.Context(), reservation)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create reservation", err)
		return
	}

	metrics.ReservationsCreated.Inc()
	logging.Ctx(r.Context()).Info().
		Str("reservation_id", created.ID).
		Str("date", req.Date).
		Int("guests", created.Guests).
		Msg("Reservation created")

	respondJSON(w, http.StatusCreated, created)
}

// MyReservations lists the authenticated user's own reservations.
func (h *Handler) MyReservations(w http.ResponseWriter, r *http.Request) {
	claims := requireClaims(w, r)
	if claims == nil {
		return
	}

	reservations, err := h.db.GetReservationsByUser(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch reservations", err)
		return
	}

	respondJSON(w, http.StatusOK, reservations)
}

// AdminReservations lists reservations for the admin dashboard. With a
// ?date=YYYY-MM-DD query the list is restricted to that day and ordered
// by seating time; otherwise every reservation is returned.
func (h *Handler) AdminReservations(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	var (
		reservations []models.Reservation
		err          error
	)

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, perr := parseDate(dateParam)
		if perr != nil {
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "date must use the YYYY-MM-DD format", nil)
			return
		}
		reservations, err = h.db.GetReservationsByDate(r.Context(), date)
	} else {
		reservations, err = h.db.GetReservations(r.Context())
	}

	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to fetch reservations", err)
		return
	}

	respondJSON(w, http.StatusOK, reservations)
}

// UpdateReservation applies a partial update to a reservation, including
// status changes. Admin only.
func (h *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	id := r.PathValue("id")

	var req UpdateReservationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body", err)
		return
	}

	if !validateRequest(w, &req) {
		return
	}

	update := &models.ReservationUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Time:            req.Time,
		Guests:          req.Guests,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
		Status:          req.Status,
	}

	if req.Date != nil {
		date, perr := parseDate(*req.Date)
		if perr != nil {
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "date must use the YYYY-MM-DD format", nil)
			return
		}
		update.Date = &date
	}

	reservation, err := h.db.UpdateReservation(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, database.ErrReservationNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "Reservation not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to update reservation", err)
		return
	}

	respondJSON(w, http.StatusOK, reservation)
}

// DeleteReservation removes a reservation. Admin only. Deleting a missing
// reservation succeeds with no effect.
func (h *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if requireAdmin(w, r) == nil {
		return
	}

	id := r.PathValue("id")

	if err := h.db.DeleteReservation(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to delete reservation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
