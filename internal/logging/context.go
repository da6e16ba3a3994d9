// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a new context carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// Ctx returns the global logger enriched with request-scoped fields
// from the context. If the context carries no request ID the plain
// global logger is returned.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id, ok := RequestIDFromContext(ctx); ok && id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}
