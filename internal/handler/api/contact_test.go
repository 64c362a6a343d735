// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
)

func TestSubmitContact(t *testing.T) {
	db, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/contact", `{
		"name": "Ahmed Hassan",
		"email": "ahmed@example.com",
		"phone": "+201001234567",
		"subject": "Ramadan packages",
		"message": "Do you have availability for a family of four?"
	}`)
	req.Header.Set("User-Agent", "Mozilla/5.0 Test")
	w := executeHandler(h.SubmitContact, req)

	assertStatus(t, w.Code, http.StatusCreated)
	resp := unmarshalResponse(t, w)
	if resp["success"] != true {
		t.Errorf("success = %v; want true", resp["success"])
	}
	data := resp["data"].(map[string]any)
	id := int64(data["id"].(float64))

	msg, err := store.New(db).GetContactMessage(context.Background(), id)
	if err != nil {
		t.Fatalf("get contact message: %v", err)
	}
	if msg.Status != model.ContactStatusNew {
		t.Errorf("status = %q; want new", msg.Status)
	}
	if msg.Name != "Ahmed Hassan" {
		t.Errorf("name = %q", msg.Name)
	}
	if !msg.Phone.Valid || msg.Phone.String != "+201001234567" {
		t.Errorf("phone = %+v", msg.Phone)
	}
	if !msg.UserAgent.Valid || msg.UserAgent.String != "Mozilla/5.0 Test" {
		t.Errorf("user agent = %+v", msg.UserAgent)
	}
	if !msg.IpAddress.Valid || msg.IpAddress.String == "" {
		t.Errorf("ip address = %+v", msg.IpAddress)
	}
}

func TestSubmitContactOptionalFields(t *testing.T) {
	db, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/contact", `{
		"name": "Sara",
		"email": "sara@example.com",
		"message": "Just a quick question."
	}`)
	w := executeHandler(h.SubmitContact, req)

	assertStatus(t, w.Code, http.StatusCreated)
	id := int64(unmarshalResponse(t, w)["data"].(map[string]any)["id"].(float64))

	msg, err := store.New(db).GetContactMessage(context.Background(), id)
	if err != nil {
		t.Fatalf("get contact message: %v", err)
	}
	if msg.Phone.Valid || msg.Subject.Valid {
		t.Errorf("optional fields stored as non-null: phone=%+v subject=%+v", msg.Phone, msg.Subject)
	}
}

func TestSubmitContactValidation(t *testing.T) {
	_, h := testSetup(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"email":"a@b.com","message":"hi"}`, "name"},
		{"missing email", `{"name":"A","message":"hi"}`, "email"},
		{"invalid email", `{"name":"A","email":"nope","message":"hi"}`, "email"},
		{"missing message", `{"name":"A","email":"a@b.com"}`, "message"},
		{"message too long", `{"name":"A","email":"a@b.com","message":"` + strings.Repeat("x", 5001) + `"}`, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := executeHandler(h.SubmitContact, newJSONRequest(t, http.MethodPost, "/api/contact", tt.body))

			assertStatus(t, w.Code, http.StatusUnprocessableEntity)
			resp := unmarshalResponse(t, w)
			if resp["message"] != "The given data was invalid." {
				t.Errorf("message = %v", resp["message"])
			}
			errs := resp["errors"].(map[string]any)
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("errors missing field %q: %v", tt.field, errs)
			}
		})
	}
}

func TestSubmitContactRejectsUnknownFields(t *testing.T) {
	_, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/contact",
		`{"name":"A","email":"a@b.com","message":"hi","admin":true}`)
	w := executeHandler(h.SubmitContact, req)

	assertStatus(t, w.Code, http.StatusBadRequest)
}

func TestSubmitContactMalformedBody(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(h.SubmitContact, newJSONRequest(t, http.MethodPost, "/api/contact", `{broken`))
	assertStatus(t, w.Code, http.StatusBadRequest)
}
