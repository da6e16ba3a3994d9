// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// maxRequestBody caps request bodies at 1 MiB. All write endpoints carry
// small JSON payloads; anything larger is abuse.
const maxRequestBody = 1 << 20

// dateLayout is the wire format for reservation dates.
const dateLayout = "2006-01-02"

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// CreateMenuCategoryRequest is the body for POST /api/admin/menu/categories.
type CreateMenuCategoryRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// CreateMenuItemRequest is the body for POST /api/admin/menu/items.
type CreateMenuItemRequest struct {
	CategoryID   string `json:"categoryId" validate:"required,uuid"`
	Name         string `json:"name" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	Price        string `json:"price" validate:"required,price"`
	ImageURL     string `json:"imageUrl" validate:"omitempty,url,max=500"`
	IsAvailable  *bool  `json:"isAvailable"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// UpdateMenuItemRequest is the body for PUT /api/admin/menu/items/{id}.
// All fields are optional; absent fields are left unchanged.
type UpdateMenuItemRequest struct {
	CategoryID   *string `json:"categoryId" validate:"omitempty,uuid"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	Price        *string `json:"price" validate:"omitempty,price"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,url,max=500"`
	IsAvailable  *bool   `json:"isAvailable"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,gte=0"`
}

// CreateReservationRequest is the body for POST /api/reservations.
// The date is a calendar day and the time a 24h clock value; status is
// never accepted from the client.
type CreateReservationRequest struct {
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"required,max=20"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	Guests          int    `json:"guests" validate:"required,gte=1,lte=20"`
	Occasion        string `json:"occasion" validate:"max=50"`
	SpecialRequests string `json:"specialRequests" validate:"max=2000"`
}

// UpdateReservationRequest is the body for PUT /api/admin/reservations/{id}.
// All fields are optional; absent fields are left unchanged.
type UpdateReservationRequest struct {
	FirstName       *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName        *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email" validate:"omitempty,email,max=255"`
	Phone           *string `json:"phone" validate:"omitempty,min=1,max=20"`
	Date            *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            *string `json:"time" validate:"omitempty,datetime=15:04"`
	Guests          *int    `json:"guests" validate:"omitempty,gte=1,lte=20"`
	Occasion        *string `json:"occasion" validate:"omitempty,max=50"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=2000"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// ContactRequest is the body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// NewsletterRequest is the body for POST /api/newsletter.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// decodeJSON reads and decodes a JSON request body with a size cap.
// Unknown fields are rejected so typos surface instead of silently
// dropping data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

// parseDate parses a reservation date from the wire format.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
