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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mgiordano/bellavista/internal/models"
)

// SubscribeNewsletter adds an email to the newsletter list. Emails are
// stored lowercased; subscribing an address that is already on the list
// returns the existing subscription.
func (db *DB) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	subscriber := &models.NewsletterSubscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}

	query := `INSERT INTO newsletter_subscribers (id, email, created_at) VALUES (?, ?, ?)`

	_, err := db.exec(ctx, "insert", "newsletter_subscribers", query, subscriber.ID, subscriber.Email, subscriber.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return db.getNewsletterSubscriberByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to subscribe to newsletter: %w", err)
	}

	return subscriber, nil
}

// GetNewsletterSubscribers retrieves all subscribers, newest first.
func (db *DB) GetNewsletterSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	query := `SELECT id, email, created_at FROM newsletter_subscribers ORDER BY created_at DESC`

	rows, err := db.query(ctx, "select", "newsletter_subscribers", query)
	if err != nil {
		return nil, fmt.Errorf("failed to query newsletter subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]models.NewsletterSubscriber, 0)
	for rows.Next() {
		var s models.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan newsletter subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating newsletter subscribers: %w", err)
	}

	return subscribers, nil
}

// getNewsletterSubscriberByEmail retrieves a subscriber by email.
func (db *DB) getNewsletterSubscriberByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	var s models.NewsletterSubscriber
	err := db.queryRow(ctx, "select", "newsletter_subscribers",
		`SELECT id, email, created_at FROM newsletter_subscribers WHERE email = ?`, email).
		Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subscriber vanished after conflict: %w", err)
		}
		return nil, fmt.Errorf("failed to scan newsletter subscriber: %w", err)
	}
	return &s, nil
}
