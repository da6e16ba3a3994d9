// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mgiordano/bellavista/internal/models"
)

// GetUser retrieves a user by ID.
func (db *DB) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, email, first_name, last_name, profile_image_url, is_admin, created_at, updated_at
	FROM users WHERE id = ?`

	row := db.queryRow(ctx, "select", "users", query, id)
	return scanUser(row)
}

// GetUserByEmail retrieves a user by email address.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, first_name, last_name, profile_image_url, is_admin, created_at, updated_at
	FROM users WHERE email = ?`

	row := db.queryRow(ctx, "select", "users", query, email)
	return scanUser(row)
}

// UpsertUser inserts a user or, if the ID already exists, updates the
// profile fields in place. Called on every login so the account always
// reflects the latest identity information.
func (db *DB) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query := `INSERT INTO users (id, email, first_name, last_name, profile_image_url, is_admin, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		email = excluded.email,
		first_name = excluded.first_name,
		last_name = excluded.last_name,
		profile_image_url = excluded.profile_image_url,
		is_admin = excluded.is_admin,
		updated_at = excluded.updated_at`

	_, err := db.exec(ctx, "upsert", "users", query,
		user.ID, nullString(user.Email), nullString(user.FirstName), nullString(user.LastName),
		nullString(user.ProfileImageURL), user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return db.GetUser(ctx, user.ID)
}

// scanUser scans a single user row.
func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var email, firstName, lastName, profileImageURL sql.NullString

	err := row.Scan(&u.ID, &email, &firstName, &lastName, &profileImageURL,
		&u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	u.Email = email.String
	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.ProfileImageURL = profileImageURL.String

	return &u, nil
}
