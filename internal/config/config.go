// Bella Vista - Restaurant Website Backend and Reservations API
// Copyright 2026 M. Giordano (mgiordano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgiordano/bellavista

// Package config manages configuration for the Bella Vista backend.
//
// Configuration is layered with koanf: built-in defaults first, then an
// optional YAML config file, then environment variables. Environment
// variables always win.
package config

import (
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`      // Read/write timeout for requests
	Environment string        `koanf:"environment"`  // development or production
	BaseURL     string        `koanf:"base_url"`     // Public URL of the site (used in logs only)
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path         string `koanf:"path"`           // DuckDB file path, or :memory: for tests
	MaxMemory    string `koanf:"max_memory"`     // DuckDB memory limit, e.g. "1GB"
	Threads      int    `koanf:"threads"`        // 0 = use runtime.NumCPU()
	SeedDemoData bool   `koanf:"seed_demo_data"` // Populate demo menu on first start
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	JWTSecret      string        `koanf:"jwt_secret"`       // Required in production
	SessionTimeout time.Duration `koanf:"session_timeout"`  // JWT token lifetime
	AdminEmail     string        `koanf:"admin_email"`      // Bootstrap admin account email
	AdminPassword  string        `koanf:"admin_password"`   // Bootstrap admin account password (hashed on startup)
	RateLimitReqs  int           `koanf:"rate_limit_reqs"`  // Requests per window per IP
	RateLimitLogin int           `koanf:"rate_limit_login"` // Login attempts per minute per IP
	CORSOrigins    []string      `koanf:"cors_origins"`     // Allowed CORS origins
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"` // Include caller file:line
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        5000,
			Timeout:     30 * time.Second,
			Environment: "development",
			BaseURL:     "",
		},
		Database: DatabaseConfig{
			Path:         "/data/bellavista.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			SeedDemoData: false,
		},
		Security: SecurityConfig{
			JWTSecret:      "",
			SessionTimeout: 24 * time.Hour,
			AdminEmail:     "",
			AdminPassword:  "",
			RateLimitReqs:  100,
			RateLimitLogin: 5,
			CORSOrigins:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
