// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func sessionTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Schema required by sqlite3store.
	if _, err := db.Exec(`
		CREATE TABLE sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX sessions_expiry_idx ON sessions(expiry);
	`); err != nil {
		t.Fatalf("create sessions table: %v", err)
	}
	return db
}

func TestNewDevelopment(t *testing.T) {
	sm := New(sessionTestDB(t), true)

	if sm == nil {
		t.Fatal("New returned nil")
	}
	if sm.Store == nil {
		t.Error("Store not initialized")
	}
	if sm.Cookie.Secure {
		t.Error("Cookie.Secure set in development")
	}
	if sm.Cookie.Name == "__Host-session" {
		t.Error("__Host- prefixed cookie in development; browsers reject it without Secure")
	}
}

func TestNewProduction(t *testing.T) {
	sm := New(sessionTestDB(t), false)

	if !sm.Cookie.Secure {
		t.Error("Cookie.Secure not set in production")
	}
	if sm.Cookie.Name != "__Host-session" {
		t.Errorf("Cookie.Name = %q, want __Host-session", sm.Cookie.Name)
	}
	if sm.Cookie.Path != "/" {
		t.Errorf("Cookie.Path = %q, want /", sm.Cookie.Path)
	}
}

func TestNewCommonSettings(t *testing.T) {
	sm := New(sessionTestDB(t), true)

	if sm.Lifetime != 24*time.Hour {
		t.Errorf("Lifetime = %v, want 24h", sm.Lifetime)
	}
	if !sm.Cookie.HttpOnly {
		t.Error("Cookie.HttpOnly not set")
	}
	if sm.Cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", sm.Cookie.SameSite)
	}
}
