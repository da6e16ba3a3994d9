// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mgiordano/bellavista/internal/models"
)

// reservationColumns selects reservation fields in scan order.
const reservationColumns = `SELECT
	id, user_id, first_name, last_name, email, phone, date, time,
	guests, occasion, special_requests, status, created_at, updated_at`

// GetReservations retrieves all reservations, newest submissions first.
func (db *DB) GetReservations(ctx context.Context) ([]models.Reservation, error) {
	query := reservationColumns + ` FROM reservations ORDER BY created_at DESC`

	rows, err := db.query(ctx, "select", "reservations", query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// GetReservationsByUser retrieves all reservations made by one user.
func (db *DB) GetReservationsByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	query := reservationColumns + ` FROM reservations WHERE user_id = ? ORDER BY date DESC, time ASC`

	rows, err := db.query(ctx, "select", "reservations", query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations by user: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// GetReservationsByDate retrieves all reservations for one calendar day,
// ordered by seating time.
func (db *DB) GetReservationsByDate(ctx context.Context, date time.Time) ([]models.Reservation, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	query := reservationColumns + ` FROM reservations WHERE date >= ? AND date <= ? ORDER BY time ASC`

	rows, err := db.query(ctx, "select", "reservations", query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations by date: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// GetReservation retrieves a single reservation by ID.
func (db *DB) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	query := reservationColumns + ` FROM reservations WHERE id = ?`

	rows, err := db.query(ctx, "select", "reservations", query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation: %w", err)
	}
	defer rows.Close()

	reservations, err := collectReservations(rows)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}
	return &reservations[0], nil
}

// CreateReservation creates a new reservation. The status is always
// forced to pending regardless of what the caller supplies.
func (db *DB) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	now := time.Now()
	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = now
	}
	reservation.UpdatedAt = reservation.CreatedAt
	reservation.Status = models.ReservationStatusPending

	query := `INSERT INTO reservations (
		id, user_id, first_name, last_name, email, phone, date, time,
		guests, occasion, special_requests, status, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := db.exec(ctx, "insert", "reservations", query,
		reservation.ID, nullStringPtr(reservation.UserID),
		reservation.FirstName, reservation.LastName, reservation.Email, reservation.Phone,
		reservation.Date, reservation.Time, reservation.Guests,
		nullString(reservation.Occasion), nullString(reservation.SpecialRequests),
		reservation.Status, reservation.CreatedAt, reservation.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, nil
}

// UpdateReservation applies a partial update to a reservation. Nil fields
// are left unchanged. Returns ErrReservationNotFound if no row matches.
func (db *DB) UpdateReservation(ctx context.Context, id string, update *models.ReservationUpdate) (*models.Reservation, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if update.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *update.FirstName)
	}
	if update.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *update.LastName)
	}
	if update.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *update.Email)
	}
	if update.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *update.Phone)
	}
	if update.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *update.Date)
	}
	if update.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *update.Time)
	}
	if update.Guests != nil {
		sets = append(sets, "guests = ?")
		args = append(args, *update.Guests)
	}
	if update.Occasion != nil {
		sets = append(sets, "occasion = ?")
		args = append(args, nullStringPtr(update.Occasion))
	}
	if update.SpecialRequests != nil {
		sets = append(sets, "special_requests = ?")
		args = append(args, nullStringPtr(update.SpecialRequests))
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}

	query := "UPDATE reservations SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := db.exec(ctx, "update", "reservations", query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrReservationNotFound
	}

	return db.GetReservation(ctx, id)
}

// DeleteReservation removes a reservation. Deleting a missing reservation
// is a no-op.
func (db *DB) DeleteReservation(ctx context.Context, id string) error {
	_, err := db.exec(ctx, "delete", "reservations", `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// collectReservations scans all rows into a slice of reservations.
func collectReservations(rows *sql.Rows) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0)
	for rows.Next() {
		var r models.Reservation
		var userID, occasion, specialRequests sql.NullString

		err := rows.Scan(&r.ID, &userID, &r.FirstName, &r.LastName, &r.Email, &r.Phone,
			&r.Date, &r.Time, &r.Guests, &occasion, &specialRequests, &r.Status,
			&r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}

		if userID.Valid {
			r.UserID = &userID.String
		}
		r.Occasion = occasion.String
		r.SpecialRequests = specialRequests.String
		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}
