// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
)

func TestSubscribe(t *testing.T) {
	db, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/newsletter/subscribe",
		`{"email":"reader@example.com"}`)
	w := executeHandler(h.Subscribe, req)

	assertStatus(t, w.Code, http.StatusCreated)
	resp := unmarshalResponse(t, w)
	if resp["success"] != true {
		t.Errorf("success = %v; want true", resp["success"])
	}

	sub, err := store.New(db).GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}
	if sub.Status != model.SubscriberStatusActive {
		t.Errorf("status = %q; want active", sub.Status)
	}
	if len(sub.UnsubscribeToken) != model.UnsubscribeTokenLength {
		t.Errorf("token length = %d; want %d", len(sub.UnsubscribeToken), model.UnsubscribeTokenLength)
	}
	if !sub.Source.Valid || sub.Source.String != model.SubscribeSourceWebsite {
		t.Errorf("source = %+v; want website", sub.Source)
	}
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	db, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/newsletter/subscribe",
		`{"email":"  Reader@Example.COM "}`)
	w := executeHandler(h.Subscribe, req)

	assertStatus(t, w.Code, http.StatusCreated)
	if _, err := store.New(db).GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com"); err != nil {
		t.Errorf("subscriber not stored under normalized email: %v", err)
	}
}

func TestSubscribeAlreadyActive(t *testing.T) {
	db, h := testSetup(t)

	first := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
		"/api/newsletter/subscribe", `{"email":"reader@example.com"}`))
	assertStatus(t, first.Code, http.StatusCreated)

	sub, err := store.New(db).GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}

	second := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
		"/api/newsletter/subscribe", `{"email":"reader@example.com"}`))
	assertStatus(t, second.Code, http.StatusOK)

	// The token is untouched, so older unsubscribe links keep working.
	after, err := store.New(db).GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}
	if after.UnsubscribeToken != sub.UnsubscribeToken {
		t.Error("token changed on repeat subscribe")
	}
}

func TestSubscribeReactivates(t *testing.T) {
	db, h := testSetup(t)

	first := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
		"/api/newsletter/subscribe", `{"email":"reader@example.com"}`))
	assertStatus(t, first.Code, http.StatusCreated)

	queries := store.New(db)
	sub, err := queries.GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}

	unsub := executeHandler(h.Unsubscribe, requestWithURLParams(
		httptest.NewRequest(http.MethodGet, "/api/newsletter/unsubscribe/"+sub.UnsubscribeToken, nil),
		map[string]string{"token": sub.UnsubscribeToken}))
	assertStatus(t, unsub.Code, http.StatusOK)

	again := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
		"/api/newsletter/subscribe", `{"email":"reader@example.com"}`))
	assertStatus(t, again.Code, http.StatusCreated)

	after, err := queries.GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}
	if after.Status != model.SubscriberStatusActive {
		t.Errorf("status = %q; want active", after.Status)
	}
	if after.UnsubscribeToken == sub.UnsubscribeToken {
		t.Error("token not rotated on reactivation")
	}
	if after.UnsubscribedAt.Valid {
		t.Error("unsubscribed_at not cleared on reactivation")
	}
}

func TestSubscribeValidation(t *testing.T) {
	_, h := testSetup(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{}`},
		{"empty email", `{"email":""}`},
		{"invalid email", `{"email":"not-an-email"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
				"/api/newsletter/subscribe", tt.body))

			assertStatus(t, w.Code, http.StatusUnprocessableEntity)
			resp := unmarshalResponse(t, w)
			if _, ok := resp["errors"].(map[string]any)["email"]; !ok {
				t.Errorf("errors missing email field: %v", resp)
			}
		})
	}
}

func TestUnsubscribe(t *testing.T) {
	db, h := testSetup(t)

	created := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
		"/api/newsletter/subscribe", `{"email":"reader@example.com"}`))
	assertStatus(t, created.Code, http.StatusCreated)

	queries := store.New(db)
	sub, err := queries.GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}

	req := requestWithURLParams(
		httptest.NewRequest(http.MethodGet, "/api/newsletter/unsubscribe/"+sub.UnsubscribeToken, nil),
		map[string]string{"token": sub.UnsubscribeToken})
	w := executeHandler(h.Unsubscribe, req)

	assertStatus(t, w.Code, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q; want text/html", ct)
	}

	after, err := queries.GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}
	if after.Status != model.SubscriberStatusUnsubscribed {
		t.Errorf("status = %q; want unsubscribed", after.Status)
	}
	if !after.UnsubscribedAt.Valid {
		t.Error("unsubscribed_at not set")
	}
}

func TestUnsubscribeSpentToken(t *testing.T) {
	db, h := testSetup(t)

	created := executeHandler(h.Subscribe, newJSONRequest(t, http.MethodPost,
		"/api/newsletter/subscribe", `{"email":"reader@example.com"}`))
	assertStatus(t, created.Code, http.StatusCreated)

	sub, err := store.New(db).GetNewsletterSubscriberByEmail(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("get subscriber: %v", err)
	}

	unsubRequest := func() *httptest.ResponseRecorder {
		req := requestWithURLParams(
			httptest.NewRequest(http.MethodGet, "/api/newsletter/unsubscribe/"+sub.UnsubscribeToken, nil),
			map[string]string{"token": sub.UnsubscribeToken})
		return executeHandler(h.Unsubscribe, req)
	}

	first := unsubRequest()
	assertStatus(t, first.Code, http.StatusOK)

	// A spent token gets the same failure page as one that never existed.
	second := unsubRequest()
	assertStatus(t, second.Code, http.StatusNotFound)
	if !strings.Contains(second.Body.String(), "Link not valid") {
		t.Errorf("body = %q; want generic failure page", second.Body.String())
	}
	if strings.Contains(second.Body.String(), "You are unsubscribed") {
		t.Error("spent token rendered the success page")
	}
}

func TestUnsubscribeBadToken(t *testing.T) {
	_, h := testSetup(t)

	tests := []struct {
		name  string
		token string
	}{
		{"too short", "abc123"},
		{"unknown token", strings.Repeat("a", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithURLParams(
				httptest.NewRequest(http.MethodGet, "/api/newsletter/unsubscribe/"+tt.token, nil),
				map[string]string{"token": tt.token})
			w := executeHandler(h.Unsubscribe, req)

			assertStatus(t, w.Code, http.StatusNotFound)
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
				t.Errorf("Content-Type = %q; want text/html", ct)
			}
		})
	}
}
