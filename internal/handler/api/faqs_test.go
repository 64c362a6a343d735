// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListFaqs(t *testing.T) {
	db, h := testSetup(t)
	createTestFaq(t, db, "How long is the visa valid?", "The visa covers **90 days** from entry.", true, 1)
	createTestFaq(t, db, "Hidden question", "Not published yet.", false, 2)

	w := executeHandler(h.ListFaqs, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assertStatus(t, w.Code, http.StatusOK)
	resp := unmarshalResponse(t, w)
	data := resp["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("len(data) = %d; want 1 (inactive entries excluded)", len(data))
	}

	item := data[0].(map[string]any)
	if item["question"] != "How long is the visa valid?" {
		t.Errorf("question = %v", item["question"])
	}
	answer := item["answer"].(string)
	if !strings.Contains(answer, "<strong>90 days</strong>") {
		t.Errorf("answer not rendered to HTML: %q", answer)
	}
}

func TestListFaqsOrder(t *testing.T) {
	db, h := testSetup(t)
	createTestFaq(t, db, "Second", "b", true, 2)
	createTestFaq(t, db, "First", "a", true, 1)

	w := executeHandler(h.ListFaqs, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assertStatus(t, w.Code, http.StatusOK)
	data := unmarshalResponse(t, w)["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("len(data) = %d; want 2", len(data))
	}
	if data[0].(map[string]any)["question"] != "First" {
		t.Errorf("first entry = %v; want First", data[0].(map[string]any)["question"])
	}
}

func TestListFaqsStripsUnsafeHTML(t *testing.T) {
	db, h := testSetup(t)
	createTestFaq(t, db, "Safe?", "Yes. <script>alert(1)</script>", true, 1)

	w := executeHandler(h.ListFaqs, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assertStatus(t, w.Code, http.StatusOK)
	answer := unmarshalResponse(t, w)["data"].([]any)[0].(map[string]any)["answer"].(string)
	if strings.Contains(answer, "<script>") {
		t.Errorf("answer contains script tag: %q", answer)
	}
}

func TestListFaqsCaching(t *testing.T) {
	db, h := testSetup(t)
	createTestFaq(t, db, "Cached?", "Yes.", true, 1)

	first := executeHandler(h.ListFaqs, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))
	if got := first.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q; want MISS", got)
	}

	second := executeHandler(h.ListFaqs, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))
	if got := second.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q; want HIT", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached body differs from the original response")
	}
}
