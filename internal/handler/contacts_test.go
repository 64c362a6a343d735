// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
)

func createContactMessage(t *testing.T, db *sql.DB, name, status string) store.ContactMessage {
	t.Helper()

	now := time.Now()
	msg, err := store.New(db).CreateContactMessage(context.Background(), store.CreateContactMessageParams{
		Name:      name,
		Email:     "visitor@example.com",
		Message:   "I would like to ask about the packages.",
		Status:    status,
		UserAgent: sql.NullString{String: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1", Valid: true},
		IpAddress: sql.NullString{String: "203.0.113.7", Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("create contact message: %v", err)
	}
	return msg
}

func TestContactsList(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	createContactMessage(t, db, "Alice", model.ContactStatusNew)
	createContactMessage(t, db, "Bob", model.ContactStatusRead)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/admin/contacts", nil))

	assertStatus(t, w.Code, http.StatusOK)
	resp := decodeResponse(t, w)
	data := resp["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("len(data) = %d; want 2", len(data))
	}
}

func TestContactsListStatusFilter(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	createContactMessage(t, db, "Alice", model.ContactStatusNew)
	createContactMessage(t, db, "Bob", model.ContactStatusReplied)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/admin/contacts?status=replied", nil))

	assertStatus(t, w.Code, http.StatusOK)
	data := decodeResponse(t, w)["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("len(data) = %d; want 1", len(data))
	}
	if data[0].(map[string]any)["name"] != "Bob" {
		t.Errorf("name = %v; want Bob", data[0].(map[string]any)["name"])
	}
}

func TestContactsListInvalidStatus(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/admin/contacts?status=bogus", nil))

	assertStatus(t, w.Code, http.StatusUnprocessableEntity)
}

func TestContactsGetMarksRead(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	msg := createContactMessage(t, db, "Alice", model.ContactStatusNew)

	id := strconv.FormatInt(msg.ID, 10)
	req := httptest.NewRequest(http.MethodGet, "/admin/contacts/"+id, nil)
	req = requestWithURLParams(req, map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.Get(w, req)

	assertStatus(t, w.Code, http.StatusOK)
	data := decodeResponse(t, w)["data"].(map[string]any)
	if data["status"] != model.ContactStatusRead {
		t.Errorf("status = %v; want read", data["status"])
	}

	// Client info is parsed from the stored user agent.
	client, ok := data["client"].(map[string]any)
	if !ok {
		t.Fatalf("response missing client object: %v", data)
	}
	if client["device"] != "mobile" {
		t.Errorf("device = %v; want mobile", client["device"])
	}

	stored, err := store.New(db).GetContactMessage(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("get contact message: %v", err)
	}
	if stored.Status != model.ContactStatusRead {
		t.Errorf("stored status = %q; want read", stored.Status)
	}
}

func TestContactsGetLeavesRepliedAlone(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	msg := createContactMessage(t, db, "Alice", model.ContactStatusReplied)

	id := strconv.FormatInt(msg.ID, 10)
	req := httptest.NewRequest(http.MethodGet, "/admin/contacts/"+id, nil)
	req = requestWithURLParams(req, map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.Get(w, req)

	assertStatus(t, w.Code, http.StatusOK)
	data := decodeResponse(t, w)["data"].(map[string]any)
	if data["status"] != model.ContactStatusReplied {
		t.Errorf("status = %v; want replied", data["status"])
	}
}

func TestContactsUpdateStatus(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	msg := createContactMessage(t, db, "Alice", model.ContactStatusRead)

	id := strconv.FormatInt(msg.ID, 10)
	req := httptest.NewRequest(http.MethodPatch, "/admin/contacts/"+id+"/status",
		jsonBody(t, map[string]any{"status": model.ContactStatusReplied}))
	req.Header.Set("Content-Type", "application/json")
	req = requestWithURLParams(req, map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req)

	assertStatus(t, w.Code, http.StatusOK)
	data := decodeResponse(t, w)["data"].(map[string]any)
	if data["status"] != model.ContactStatusReplied {
		t.Errorf("status = %v; want replied", data["status"])
	}
}

func TestContactsUpdateStatusInvalid(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	msg := createContactMessage(t, db, "Alice", model.ContactStatusNew)

	id := strconv.FormatInt(msg.ID, 10)
	req := httptest.NewRequest(http.MethodPatch, "/admin/contacts/"+id+"/status",
		jsonBody(t, map[string]any{"status": "archived"}))
	req.Header.Set("Content-Type", "application/json")
	req = requestWithURLParams(req, map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req)

	assertStatus(t, w.Code, http.StatusUnprocessableEntity)
}

func TestContactsDelete(t *testing.T) {
	db := testDB(t)
	h := NewContactsHandler(db)
	msg := createContactMessage(t, db, "Alice", model.ContactStatusNew)

	id := strconv.FormatInt(msg.ID, 10)
	req := httptest.NewRequest(http.MethodDelete, "/admin/contacts/"+id, nil)
	req = requestWithURLParams(req, map[string]string{"id": id})
	w := httptest.NewRecorder()
	h.Delete(w, req)
	assertStatus(t, w.Code, http.StatusOK)

	if _, err := store.New(db).GetContactMessage(context.Background(), msg.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetContactMessage after delete: err = %v; want sql.ErrNoRows", err)
	}
}
