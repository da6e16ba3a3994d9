// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package validation

import (
	"errors"
	"testing"
)

type contactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

type menuItemForm struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required,price"`
}

type reservationForm struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Guests int    `json:"guests" validate:"required,gte=1,lte=20"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

func TestValidateStructValid(t *testing.T) {
	t.Parallel()

	form := contactForm{
		Name:    "Luca Verdi",
		Email:   "luca@example.com",
		Message: "Do you host private events?",
	}
	if err := ValidateStruct(form); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructFieldNames(t *testing.T) {
	t.Parallel()

	form := contactForm{
		Name:    "Luca Verdi",
		Email:   "not-an-email",
		Message: "Do you host private events?",
	}

	err := ValidateStruct(form)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var reqErr *RequestValidationError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestValidationError, got %T", err)
	}

	fields := reqErr.Errors()
	if len(fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fields))
	}
	// Field names come from json tags, not Go field names
	if fields[0].Field() != "email" {
		t.Errorf("expected field %q, got %q", "email", fields[0].Field())
	}
	if fields[0].Message() == "" {
		t.Error("expected a human-readable message")
	}
}

func TestValidatePriceTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price string
		valid bool
	}{
		{"whole amount", "18", true},
		{"one decimal", "18.5", true},
		{"two decimals", "18.50", true},
		{"zero", "0", true},
		{"max digits", "12345678.99", true},
		{"three decimals", "18.505", false},
		{"negative", "-5.00", false},
		{"currency symbol", "$18.50", false},
		{"comma separator", "18,50", false},
		{"empty after required", " ", false},
		{"letters", "abc", false},
		{"too many digits", "123456789.00", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(menuItemForm{Name: "Dish", Price: tt.price})
			if tt.valid && err != nil {
				t.Errorf("price %q: expected valid, got %v", tt.price, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("price %q: expected validation error", tt.price)
			}
		})
	}
}

func TestValidateReservationFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		form      reservationForm
		wantField string
	}{
		{
			name: "valid",
			form: reservationForm{Date: "2026-09-12", Time: "19:30", Guests: 4},
		},
		{
			name:      "bad date format",
			form:      reservationForm{Date: "12/09/2026", Time: "19:30", Guests: 4},
			wantField: "date",
		},
		{
			name:      "bad time format",
			form:      reservationForm{Date: "2026-09-12", Time: "7pm", Guests: 4},
			wantField: "time",
		},
		{
			name:      "too many guests",
			form:      reservationForm{Date: "2026-09-12", Time: "19:30", Guests: 21},
			wantField: "guests",
		},
		{
			name:      "unknown status",
			form:      reservationForm{Date: "2026-09-12", Time: "19:30", Guests: 4, Status: "waitlisted"},
			wantField: "status",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.form)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("expected valid form, got %v", err)
				}
				return
			}

			var reqErr *RequestValidationError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected RequestValidationError, got %v", err)
			}
			fields := reqErr.Errors()
			if len(fields) == 0 {
				t.Fatal("expected at least one field error")
			}
			if fields[0].Field() != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, fields[0].Field())
			}
		})
	}
}
