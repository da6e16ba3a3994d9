// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

// Package models defines the core data types shared between the database
// layer and the HTTP API.
package models

import (
	"time"
)

// User is a site account. Accounts are provisioned by the identity layer
// on first login and upserted on every subsequent login.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MenuCategory groups menu items for display. Categories are ordered by
// DisplayOrder ascending.
type MenuCategory struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MenuItem is a single dish on the menu.
//
// Price is a fixed-point decimal with two fraction digits, carried as a
// string (e.g. "18.50") to avoid float rounding. The database column is
// DECIMAL(10,2).
type MenuItem struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"categoryId"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	IsAvailable  bool      `json:"isAvailable"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Reservation statuses. New reservations always start as pending.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// Reservation is a table booking request.
//
// Date holds the calendar day of the booking (midnight UTC); Time holds
// the requested seating time as "HH:MM". UserID is set when the booking
// was made by a logged-in user, and nil for anonymous bookings.
type Reservation struct {
	ID              string    `json:"id"`
	UserID          *string   `json:"userId,omitempty"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	Occasion        string    `json:"occasion,omitempty"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ContactMessage is a message submitted through the contact form.
// Messages start unread; admins mark them read one at a time.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsletterSubscriber is a newsletter signup. Emails are unique; repeat
// signups return the existing subscription.
type NewsletterSubscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// MenuItemUpdate carries a partial update for a menu item. Nil fields are
// left unchanged.
type MenuItemUpdate struct {
	CategoryID   *string `json:"categoryId,omitempty"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Price        *string `json:"price,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	IsAvailable  *bool   `json:"isAvailable,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

// ReservationUpdate carries a partial update for a reservation. Nil fields
// are left unchanged.
type ReservationUpdate struct {
	FirstName       *string    `json:"firstName,omitempty"`
	LastName        *string    `json:"lastName,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Time            *string    `json:"time,omitempty"`
	Guests          *int       `json:"guests,omitempty"`
	Occasion        *string    `json:"occasion,omitempty"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	Status          *string    `json:"status,omitempty"`
}
