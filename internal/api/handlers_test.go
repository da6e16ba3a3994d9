// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/mgiordano/bellavista/internal/auth"
	"github.com/mgiordano/bellavista/internal/config"
	"github.com/mgiordano/bellavista/internal/database"
	"github.com/mgiordano/bellavista/internal/models"
)

// testServerSemaphore serializes DuckDB lifecycles across API tests.
var testServerSemaphore = make(chan struct{}, 1)

const (
	testAdminEmail    = "admin@bellavista.example"
	testAdminPassword = "integration-pass"
	testJWTSecret     = "test-secret-at-least-32-characters-long"
)

type testServer struct {
	handler http.Handler
	db      *database.DB
	jwt     *auth.JWTManager
}

// setupTestServer builds a full router over an in-memory database. The
// login limiter is generous so only the dedicated rate limit test can
// trip it.
func setupTestServer(t *testing.T) *testServer {
	return setupTestServerWithLoginLimit(t, 100)
}

func setupTestServerWithLoginLimit(t *testing.T, loginAttempts int) *testServer {
	t.Helper()

	testServerSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testServerSemaphore
	})

	db, err := database.New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "1GB",
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	secCfg := &config.SecurityConfig{
		JWTSecret:      testJWTSecret,
		SessionTimeout: time.Hour,
		AdminEmail:     testAdminEmail,
		AdminPassword:  testAdminPassword,
	}

	jwtManager, err := auth.NewJWTManager(secCfg)
	if err != nil {
		t.Fatalf("failed to create JWT manager: %v", err)
	}

	credentials, err := auth.NewCredentialStore(secCfg)
	if err != nil {
		t.Fatalf("failed to create credential store: %v", err)
	}

	loginLimiter := auth.NewLoginLimiter(loginAttempts)
	t.Cleanup(loginLimiter.Stop)

	handler := NewHandler(db, jwtManager, credentials, loginLimiter)
	authMW := auth.NewMiddleware(jwtManager)
	router := NewRouter(handler, authMW, NewChiMiddleware(nil))

	return &testServer{
		handler: router.Setup(),
		db:      db,
		jwt:     jwtManager,
	}
}

// adminToken issues a token for a persisted admin user.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	return ts.userToken(t, testAdminEmail, true)
}

// userToken persists a user and issues a token for it.
func (ts *testServer) userToken(t *testing.T, email string, isAdmin bool) string {
	t.Helper()

	user, err := ts.db.UpsertUser(context.Background(), &models.User{
		Email:   email,
		IsAdmin: isAdmin,
	})
	if err != nil {
		t.Fatalf("failed to upsert user: %v", err)
	}

	token, err := ts.jwt.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// request performs an HTTP request against the test server. A non-empty
// token is sent as a bearer token.
func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes a JSON response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if resp.Database != "ok" {
		t.Errorf("expected database ok, got %q", resp.Database)
	}
}

func TestMenuEndpointsPublic(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	category, err := ts.db.CreateMenuCategory(ctx, &models.MenuCategory{Name: "Primi", DisplayOrder: 1})
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	_, err = ts.db.CreateMenuItem(ctx, &models.MenuItem{
		CategoryID:  category.ID,
		Name:        "Tagliatelle al Ragu",
		Price:       "18.50",
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	rec := ts.request(t, http.MethodGet, "/api/menu/categories", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var categories []models.MenuCategory
	decodeBody(t, rec, &categories)
	if len(categories) != 1 || categories[0].Name != "Primi" {
		t.Errorf("unexpected categories: %+v", categories)
	}

	rec = ts.request(t, http.MethodGet, "/api/menu/items", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []models.MenuItem
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0].Price != "18.50" {
		t.Errorf("unexpected items: %+v", items)
	}

	rec = ts.request(t, http.MethodGet, "/api/menu/items/"+category.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	decodeBody(t, rec, &items)
	if len(items) != 1 {
		t.Errorf("expected 1 item for category, got %d", len(items))
	}
}

func TestAdminAuthorizationGate(t *testing.T) {
	ts := setupTestServer(t)

	body := CreateMenuCategoryRequest{Name: "Dolci", DisplayOrder: 4}

	// No token: 401
	rec := ts.request(t, http.MethodPost, "/api/admin/menu/categories", "", body)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", rec.Code, rec.Body.String())
	}
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Code != ErrCodeAuthentication {
		t.Errorf("expected code %s, got %s", ErrCodeAuthentication, errResp.Code)
	}

	// Authenticated but not admin: 403
	userTok := ts.userToken(t, "guest@example.com", false)
	rec = ts.request(t, http.MethodPost, "/api/admin/menu/categories", userTok, body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &errResp)
	if errResp.Code != ErrCodeAuthorization {
		t.Errorf("expected code %s, got %s", ErrCodeAuthorization, errResp.Code)
	}

	// Admin: 201
	adminTok := ts.adminToken(t)
	rec = ts.request(t, http.MethodPost, "/api/admin/menu/categories", adminTok, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
	var category models.MenuCategory
	decodeBody(t, rec, &category)
	if category.Name != "Dolci" {
		t.Errorf("unexpected category: %+v", category)
	}
}

func TestMenuItemAdminCRUD(t *testing.T) {
	ts := setupTestServer(t)
	adminTok := ts.adminToken(t)

	rec := ts.request(t, http.MethodPost, "/api/admin/menu/categories", adminTok,
		CreateMenuCategoryRequest{Name: "Secondi", DisplayOrder: 3})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var category models.MenuCategory
	decodeBody(t, rec, &category)

	rec = ts.request(t, http.MethodPost, "/api/admin/menu/items", adminTok, CreateMenuItemRequest{
		CategoryID: category.ID,
		Name:       "Branzino al Forno",
		Price:      "28.00",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var item models.MenuItem
	decodeBody(t, rec, &item)
	if !item.IsAvailable {
		t.Error("expected availability to default to true")
	}

	// Partial update
	newPrice := "29.50"
	rec = ts.request(t, http.MethodPut, "/api/admin/menu/items/"+item.ID, adminTok,
		UpdateMenuItemRequest{Price: &newPrice})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &item)
	if item.Price != "29.50" {
		t.Errorf("expected updated price, got %q", item.Price)
	}
	if item.Name != "Branzino al Forno" {
		t.Errorf("name changed unexpectedly: %q", item.Name)
	}

	// Invalid price rejected with the failing field named
	badPrice := "abc"
	rec = ts.request(t, http.MethodPut, "/api/admin/menu/items/"+item.ID, adminTok,
		UpdateMenuItemRequest{Price: &badPrice})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad price, got %d", rec.Code)
	}
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if len(errResp.Errors) == 0 || errResp.Errors[0].Field != "price" {
		t.Errorf("expected price field error, got %+v", errResp.Errors)
	}

	// Update of a missing item: 404
	rec = ts.request(t, http.MethodPut, "/api/admin/menu/items/missing-id", adminTok,
		UpdateMenuItemRequest{Price: &newPrice})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	// Delete, then delete again: both 204
	rec = ts.request(t, http.MethodDelete, "/api/admin/menu/items/"+item.ID, adminTok, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = ts.request(t, http.MethodDelete, "/api/admin/menu/items/"+item.ID, adminTok, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on repeat delete, got %d", rec.Code)
	}
}

func TestCreateReservation(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/reservations", "", CreateReservationRequest{
		FirstName: "Giulia",
		LastName:  "Rossi",
		Email:     "giulia@example.com",
		Phone:     "+39 333 1234567",
		Date:      "2026-09-12",
		Time:      "19:30",
		Guests:    4,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var reservation models.Reservation
	decodeBody(t, rec, &reservation)
	if reservation.Status != models.ReservationStatusPending {
		t.Errorf("expected pending status, got %q", reservation.Status)
	}
	if reservation.UserID != nil {
		t.Error("expected anonymous reservation to have no user")
	}
}

func TestCreateReservationValidation(t *testing.T) {
	ts := setupTestServer(t)

	valid := CreateReservationRequest{
		FirstName: "Giulia",
		LastName:  "Rossi",
		Email:     "giulia@example.com",
		Phone:     "555-0100",
		Date:      "2026-09-12",
		Time:      "19:30",
		Guests:    4,
	}

	tests := []struct {
		name      string
		mutate    func(*CreateReservationRequest)
		wantField string
	}{
		{"bad email", func(r *CreateReservationRequest) { r.Email = "not-an-email" }, "email"},
		{"bad date", func(r *CreateReservationRequest) { r.Date = "12/09/2026" }, "date"},
		{"bad time", func(r *CreateReservationRequest) { r.Time = "7pm" }, "time"},
		{"too many guests", func(r *CreateReservationRequest) { r.Guests = 21 }, "guests"},
		{"missing name", func(r *CreateReservationRequest) { r.FirstName = "" }, "firstName"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			rec := ts.request(t, http.MethodPost, "/api/reservations", "", req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}

			var errResp ErrorResponse
			decodeBody(t, rec, &errResp)
			if errResp.Code != ErrCodeValidation {
				t.Errorf("expected code %s, got %s", ErrCodeValidation, errResp.Code)
			}
			found := false
			for _, fe := range errResp.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field error for %q, got %+v", tt.wantField, errResp.Errors)
			}
		})
	}
}

func TestReservationUserAttachment(t *testing.T) {
	ts := setupTestServer(t)
	userTok := ts.userToken(t, "maria@example.com", false)

	rec := ts.request(t, http.MethodPost, "/api/reservations", userTok, CreateReservationRequest{
		FirstName: "Maria",
		LastName:  "Bianchi",
		Email:     "maria@example.com",
		Phone:     "555-0101",
		Date:      "2026-10-01",
		Time:      "20:00",
		Guests:    2,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var reservation models.Reservation
	decodeBody(t, rec, &reservation)
	if reservation.UserID == nil {
		t.Fatal("expected reservation to carry the authenticated user")
	}

	// The user sees their own reservations
	rec = ts.request(t, http.MethodGet, "/api/reservations", userTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var mine []models.Reservation
	decodeBody(t, rec, &mine)
	if len(mine) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(mine))
	}

	// Listing requires authentication
	rec = ts.request(t, http.MethodGet, "/api/reservations", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAdminReservationsDateFilter(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	adminTok := ts.adminToken(t)

	for _, day := range []string{"2026-09-12", "2026-09-13"} {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			t.Fatal(err)
		}
		_, err = ts.db.CreateReservation(ctx, &models.Reservation{
			FirstName: "Test",
			LastName:  "Guest",
			Email:     "guest@example.com",
			Phone:     "555-0100",
			Date:      date,
			Time:      "19:00",
			Guests:    2,
		})
		if err != nil {
			t.Fatalf("failed to create reservation: %v", err)
		}
	}

	rec := ts.request(t, http.MethodGet, "/api/admin/reservations", adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var all []models.Reservation
	decodeBody(t, rec, &all)
	if len(all) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(all))
	}

	rec = ts.request(t, http.MethodGet, "/api/admin/reservations?date=2026-09-12", adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var filtered []models.Reservation
	decodeBody(t, rec, &filtered)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 reservation for the day, got %d", len(filtered))
	}

	// Malformed date filter: 400
	rec = ts.request(t, http.MethodGet, "/api/admin/reservations?date=12-09-2026", adminTok, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date filter, got %d", rec.Code)
	}
}

func TestAdminReservationStatusUpdate(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	adminTok := ts.adminToken(t)

	created, err := ts.db.CreateReservation(ctx, &models.Reservation{
		FirstName: "Giulia",
		LastName:  "Rossi",
		Email:     "giulia@example.com",
		Phone:     "555-0100",
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Time:      "19:30",
		Guests:    4,
	})
	if err != nil {
		t.Fatalf("failed to create reservation: %v", err)
	}

	confirmed := models.ReservationStatusConfirmed
	rec := ts.request(t, http.MethodPut, "/api/admin/reservations/"+created.ID, adminTok,
		UpdateReservationRequest{Status: &confirmed})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Reservation
	decodeBody(t, rec, &updated)
	if updated.Status != models.ReservationStatusConfirmed {
		t.Errorf("expected confirmed, got %q", updated.Status)
	}

	// Unknown status value: 400
	bad := "waitlisted"
	rec = ts.request(t, http.MethodPut, "/api/admin/reservations/"+created.ID, adminTok,
		UpdateReservationRequest{Status: &bad})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}

	// Missing reservation: 404
	rec = ts.request(t, http.MethodPut, "/api/admin/reservations/missing-id", adminTok,
		UpdateReservationRequest{Status: &confirmed})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestContactMessageFlow(t *testing.T) {
	ts := setupTestServer(t)
	adminTok := ts.adminToken(t)

	rec := ts.request(t, http.MethodPost, "/api/contact", "", ContactRequest{
		Name:    "Luca Verdi",
		Email:   "luca@example.com",
		Subject: "Private event",
		Message: "Do you host birthday dinners for 20 guests?",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var message models.ContactMessage
	decodeBody(t, rec, &message)
	if message.IsRead {
		t.Error("expected message to start unread")
	}

	rec = ts.request(t, http.MethodGet, "/api/admin/contact", adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var messages []models.ContactMessage
	decodeBody(t, rec, &messages)
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	// Mark read, then again: idempotent, both 200
	for i := 0; i < 2; i++ {
		rec = ts.request(t, http.MethodPut, "/api/admin/contact/"+message.ID+"/read", adminTok, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on mark read (attempt %d), got %d: %s", i+1, rec.Code, rec.Body.String())
		}
	}
	decodeBody(t, rec, &message)
	if !message.IsRead {
		t.Error("expected message to be read")
	}

	// Missing message: 404
	rec = ts.request(t, http.MethodPut, "/api/admin/contact/missing-id/read", adminTok, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNewsletterFlow(t *testing.T) {
	ts := setupTestServer(t)
	adminTok := ts.adminToken(t)

	rec := ts.request(t, http.MethodPost, "/api/newsletter", "", NewsletterRequest{Email: "Foodie@Example.com"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var first models.NewsletterSubscriber
	decodeBody(t, rec, &first)
	if first.Email != "foodie@example.com" {
		t.Errorf("expected lowercased email, got %q", first.Email)
	}

	// Repeat signup succeeds and returns the existing subscription
	rec = ts.request(t, http.MethodPost, "/api/newsletter", "", NewsletterRequest{Email: "foodie@example.com"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on repeat signup, got %d: %s", rec.Code, rec.Body.String())
	}
	var second models.NewsletterSubscriber
	decodeBody(t, rec, &second)
	if second.ID != first.ID {
		t.Errorf("expected the same subscription, got %q and %q", first.ID, second.ID)
	}

	// Invalid email rejected
	rec = ts.request(t, http.MethodPost, "/api/newsletter", "", NewsletterRequest{Email: "nope"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = ts.request(t, http.MethodGet, "/api/admin/newsletter", adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var subscribers []models.NewsletterSubscriber
	decodeBody(t, rec, &subscribers)
	if len(subscribers) != 1 {
		t.Fatalf("expected 1 subscriber, got %d", len(subscribers))
	}
}

func TestLoginFlow(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User == nil || !resp.User.IsAdmin {
		t.Fatalf("expected an admin user, got %+v", resp.User)
	}

	// Session cookie is set
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.TokenCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected a session cookie")
	}
	if !cookie.HttpOnly {
		t.Error("expected the session cookie to be HttpOnly")
	}

	// Token works against the session endpoint
	rec = ts.request(t, http.MethodGet, "/api/auth/user", resp.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var user models.User
	decodeBody(t, rec, &user)
	if user.Email != testAdminEmail {
		t.Errorf("expected %q, got %q", testAdminEmail, user.Email)
	}

	// Wrong password: 401 with a generic message
	rec = ts.request(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    testAdminEmail,
		Password: "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Code != ErrCodeAuthentication {
		t.Errorf("expected code %s, got %s", ErrCodeAuthentication, errResp.Code)
	}
}

func TestLoginRateLimited(t *testing.T) {
	ts := setupTestServerWithLoginLimit(t, 1)

	body := LoginRequest{Email: testAdminEmail, Password: "wrong-password"}

	rec := ts.request(t, http.MethodPost, "/api/auth/login", "", body)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on first attempt, got %d", rec.Code)
	}

	rec = ts.request(t, http.MethodPost, "/api/auth/login", "", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second attempt, got %d: %s", rec.Code, rec.Body.String())
	}
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Code != ErrCodeTooManyRequests {
		t.Errorf("expected code %s, got %s", ErrCodeTooManyRequests, errResp.Code)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/nonexistent", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, errResp.Code)
	}
}

func TestMalformedJSONBody(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Code != ErrCodeBadRequest {
		t.Errorf("expected code %s, got %s", ErrCodeBadRequest, errResp.Code)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/auth/user", "not-a-valid-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}
