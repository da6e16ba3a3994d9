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

// GetContactMessages retrieves all contact messages, newest first.
func (db *DB) GetContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, is_read, created_at
	FROM contact_messages ORDER BY created_at DESC`

	rows, err := db.query(ctx, "select", "contact_messages", query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}

// GetContactMessage retrieves a single contact message by ID.
func (db *DB) GetContactMessage(ctx context.Context, id string) (*models.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, is_read, created_at
	FROM contact_messages WHERE id = ?`

	var m models.ContactMessage
	err := db.queryRow(ctx, "select", "contact_messages", query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to scan contact message: %w", err)
	}

	return &m, nil
}

// CreateContactMessage stores a new contact form submission. Messages
// always start unread regardless of what the caller supplies.
func (db *DB) CreateContactMessage(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	message.IsRead = false

	query := `INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := db.exec(ctx, "insert", "contact_messages", query,
		message.ID, message.Name, message.Email, message.Subject, message.Message,
		message.IsRead, message.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return message, nil
}

// MarkMessageAsRead marks a contact message as read. Marking an already
// read message is a no-op; marking a missing message returns
// ErrMessageNotFound.
func (db *DB) MarkMessageAsRead(ctx context.Context, id string) error {
	result, err := db.exec(ctx, "update", "contact_messages",
		`UPDATE contact_messages SET is_read = true WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message as read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
