// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/mgiordano/bellavista/internal/logging"
)

// Sentinel errors returned by the data access layer. Callers match these
// with errors.Is to map storage failures to HTTP status codes.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("menu category not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMessageNotFound     = errors.New("contact message not found")
	ErrDuplicateCategory   = errors.New("menu category with this name already exists")
	ErrDuplicateEmail      = errors.New("email already registered")
)

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// DuckDB unique constraint error messages contain "UNIQUE constraint" or "Duplicate key"
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "unique constraint") || strings.Contains(errMsg, "duplicate key")
}

// closeWithLog closes a resource and logs any error. Use for cleanup where
// errors should be acknowledged but not fail the operation.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error. Use in
// error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}
