// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/manarahtours/manarah/internal/cache"
	"github.com/manarahtours/manarah/internal/service"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/testutil"
)

// testSetup creates a migrated test database and a public API handler
// with an in-memory cache, no mailer, and no GeoIP database.
func testSetup(t *testing.T) (*sql.DB, *Handler) {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	media := service.NewMediaService(t.TempDir())
	c := cache.NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	h := NewHandler(db, media, c, nil, nil, "http://localhost:3000", "")
	return db, h
}

func createTestFaq(t *testing.T, db *sql.DB, question, answer string, active bool, order int64) store.Faq {
	t.Helper()
	now := time.Now()
	faq, err := store.New(db).CreateFaq(context.Background(), store.CreateFaqParams{
		Question:  question,
		Answer:    answer,
		IsActive:  active,
		SortOrder: order,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("create faq: %v", err)
	}
	return faq
}

func createTestPackage(t *testing.T, db *sql.DB, name, slug string, active bool, order int64) store.UmrahPackage {
	t.Helper()
	now := time.Now()
	pkg, err := store.New(db).CreateUmrahPackage(context.Background(), store.CreateUmrahPackageParams{
		Name:         name,
		Slug:         slug,
		Description:  "A complete pilgrimage package.",
		Price:        4500,
		DurationDays: 10,
		IsActive:     active,
		SortOrder:    order,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	return pkg
}

func createTestTestimonial(t *testing.T, db *sql.DB, name string, active bool, order int64) store.Testimonial {
	t.Helper()
	now := time.Now()
	tst, err := store.New(db).CreateTestimonial(context.Background(), store.CreateTestimonialParams{
		Name:      name,
		Rating:    5,
		Content:   "A wonderful journey from start to finish.",
		IsActive:  active,
		SortOrder: order,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("create testimonial: %v", err)
	}
	return tst
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newJSONRequest creates an HTTP request with a JSON body.
func newJSONRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// executeHandler executes a handler and returns the response recorder.
func executeHandler(handler func(http.ResponseWriter, *http.Request), req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func unmarshalResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v (body %q)", err, w.Body.String())
	}
	return resp
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}
