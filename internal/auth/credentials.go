// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mgiordano/bellavista/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// CredentialStore verifies the bootstrap admin credentials configured via
// ADMIN_EMAIL and ADMIN_PASSWORD. The password is hashed once at startup
// so the plaintext never lives longer than configuration loading.
type CredentialStore struct {
	adminEmail string
	adminHash  []byte
	hasAdmin   bool
}

// NewCredentialStore hashes the configured admin password and returns the
// store. A config without admin credentials yields a store that rejects
// every login.
func NewCredentialStore(cfg *config.SecurityConfig) (*CredentialStore, error) {
	store := &CredentialStore{}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return store, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	store.adminEmail = strings.ToLower(cfg.AdminEmail)
	store.adminHash = hash
	store.hasAdmin = true

	return store, nil
}

// HasAdmin reports whether bootstrap admin credentials are configured.
func (s *CredentialStore) HasAdmin() bool {
	return s.hasAdmin
}

// AdminEmail returns the configured admin email, lowercased.
func (s *CredentialStore) AdminEmail() string {
	return s.adminEmail
}

// VerifyAdmin checks a login attempt against the bootstrap admin
// credentials. Returns false for wrong email, wrong password, or when no
// admin is configured.
func (s *CredentialStore) VerifyAdmin(email, password string) bool {
	if !s.hasAdmin {
		return false
	}

	emailMatch := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(email)), []byte(s.adminEmail)) == 1

	// Always run the bcrypt comparison so response time does not leak
	// whether the email matched.
	passwordErr := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))

	return emailMatch && passwordErr == nil
}

// LoginLimiter throttles login attempts per client IP using token buckets.
// Stale entries are dropped by a background sweep.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*loginLimiterEntry
	perMin   int
	done     chan struct{}
	stopOnce sync.Once
}

type loginLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter creates a limiter allowing attemptsPerMinute login
// attempts per IP, with a burst of the same size.
func NewLoginLimiter(attemptsPerMinute int) *LoginLimiter {
	l := &LoginLimiter{
		limiters: make(map[string]*loginLimiterEntry),
		perMin:   attemptsPerMinute,
		done:     make(chan struct{}),
	}
	go l.startCleanup(5 * time.Minute)
	return l
}

// Allow reports whether another login attempt from this IP is permitted.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &loginLimiterEntry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin),
		}
		l.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// startCleanup periodically removes idle entries.
func (l *LoginLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(interval)
		case <-l.done:
			return
		}
	}
}

// cleanup removes entries idle for longer than maxIdle.
func (l *LoginLimiter) cleanup(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for ip, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// Stop terminates the background cleanup goroutine.
func (l *LoginLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}
