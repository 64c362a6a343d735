// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListTestimonials(t *testing.T) {
	db, h := testSetup(t)
	createTestTestimonial(t, db, "Fatima", true, 1)
	createTestTestimonial(t, db, "Omar", true, 2)
	createTestTestimonial(t, db, "Pending review", false, 3)

	w := executeHandler(h.ListTestimonials, httptest.NewRequest(http.MethodGet, "/api/testimonials", nil))

	assertStatus(t, w.Code, http.StatusOK)
	resp := unmarshalResponse(t, w)
	data := resp["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("len(data) = %d; want 2 (inactive excluded)", len(data))
	}

	pg := resp["pagination"].(map[string]any)
	if pg["total"].(float64) != 2 {
		t.Errorf("pagination.total = %v; want 2", pg["total"])
	}
}

func TestListTestimonialsPagination(t *testing.T) {
	db, h := testSetup(t)
	createTestTestimonial(t, db, "First", true, 1)
	createTestTestimonial(t, db, "Second", true, 2)
	createTestTestimonial(t, db, "Third", true, 3)

	w := executeHandler(h.ListTestimonials,
		httptest.NewRequest(http.MethodGet, "/api/testimonials?page=2&per_page=2", nil))

	assertStatus(t, w.Code, http.StatusOK)
	resp := unmarshalResponse(t, w)
	data := resp["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("len(data) = %d; want 1", len(data))
	}
	if data[0].(map[string]any)["name"] != "Third" {
		t.Errorf("name = %v; want Third", data[0].(map[string]any)["name"])
	}

	pg := resp["pagination"].(map[string]any)
	if pg["has_more"] != false {
		t.Errorf("pagination.has_more = %v; want false", pg["has_more"])
	}
}
