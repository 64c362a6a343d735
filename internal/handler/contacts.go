// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mileusna/useragent"

	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
)

// ContactsPerPage is the default page size for the contact inbox.
const ContactsPerPage = 20

// ContactsHandler handles the admin contact inbox.
type ContactsHandler struct {
	queries *store.Queries
}

// NewContactsHandler creates a new ContactsHandler.
func NewContactsHandler(db *sql.DB) *ContactsHandler {
	return &ContactsHandler{queries: store.New(db)}
}

type contactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IPAddress *string   `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// contactDetailResponse adds parsed client info to the list shape.
type contactDetailResponse struct {
	contactResponse
	UserAgent *string            `json:"user_agent"`
	Client    *contactClientInfo `json:"client"`
}

type contactClientInfo struct {
	Browser string `json:"browser"`
	OS      string `json:"os"`
	Device  string `json:"device"`
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func contactResponseFrom(m store.ContactMessage) contactResponse {
	return contactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     nullStringPtr(m.Phone),
		Subject:   nullStringPtr(m.Subject),
		Message:   m.Message,
		Status:    m.Status,
		IPAddress: nullStringPtr(m.IpAddress),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func contactDetailFrom(m store.ContactMessage) contactDetailResponse {
	detail := contactDetailResponse{
		contactResponse: contactResponseFrom(m),
		UserAgent:       nullStringPtr(m.UserAgent),
	}
	if m.UserAgent.Valid {
		ua := useragent.Parse(m.UserAgent.String)
		device := "desktop"
		switch {
		case ua.Mobile:
			device = "mobile"
		case ua.Tablet:
			device = "tablet"
		case ua.Bot:
			device = "bot"
		}
		detail.Client = &contactClientInfo{
			Browser: fmt.Sprintf("%s %s", ua.Name, ua.Version),
			OS:      fmt.Sprintf("%s %s", ua.OS, ua.OSVersion),
			Device:  device,
		}
	}
	return detail
}

// List handles GET /admin/contacts. An optional status query parameter
// narrows the inbox to one status.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r, ContactsPerPage, 100)
	status := r.URL.Query().Get("status")

	if status != "" && !model.IsValidContactStatus(status) {
		fe := fieldErrors{}
		fe.add("status", "The selected status is invalid.")
		writeValidationErrors(w, fe)
		return
	}

	var (
		messages []store.ContactMessage
		total    int64
		err      error
	)
	if status != "" {
		total, err = h.queries.CountContactMessagesByStatus(r.Context(), status)
		if err == nil {
			messages, err = h.queries.ListContactMessagesByStatus(r.Context(), store.ListContactMessagesByStatusParams{
				Status: status,
				Limit:  int64(perPage),
				Offset: int64((page - 1) * perPage),
			})
		}
	} else {
		total, err = h.queries.CountContactMessages(r.Context())
		if err == nil {
			messages, err = h.queries.ListContactMessages(r.Context(), store.ListContactMessagesParams{
				Limit:  int64(perPage),
				Offset: int64((page - 1) * perPage),
			})
		}
	}
	if err != nil {
		logAndInternalError(w, "failed to list contact messages", "error", err)
		return
	}

	data := make([]contactResponse, 0, len(messages))
	for _, m := range messages {
		data = append(data, contactResponseFrom(m))
	}
	writeJSONSuccess(w, map[string]any{
		"data":       data,
		"pagination": NewPagination(page, perPage, total),
	})
}

// Get handles GET /admin/contacts/{id}. Viewing a new message marks it
// read before the response is built.
func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntity(w, r, "contact message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessage(r.Context(), id)
	})
	if !ok {
		return
	}

	if msg.Status == model.ContactStatusNew {
		now := time.Now()
		err := h.queries.MarkContactMessageRead(r.Context(), store.MarkContactMessageReadParams{
			UpdatedAt: now,
			ID:        msg.ID,
		})
		if err != nil {
			logAndInternalError(w, "failed to mark contact message read", "error", err, "message_id", msg.ID)
			return
		}
		msg.Status = model.ContactStatusRead
		msg.UpdatedAt = now
	}

	writeJSONSuccess(w, map[string]any{"data": contactDetailFrom(msg)})
}

// UpdateStatus handles PATCH /admin/contacts/{id}/status.
func (h *ContactsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntity(w, r, "contact message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessage(r.Context(), id)
	})
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if !model.IsValidContactStatus(req.Status) {
		fe := fieldErrors{}
		fe.add("status", "The selected status is invalid.")
		writeValidationErrors(w, fe)
		return
	}

	updated, err := h.queries.UpdateContactMessageStatus(r.Context(), store.UpdateContactMessageStatusParams{
		Status:    req.Status,
		UpdatedAt: time.Now(),
		ID:        msg.ID,
	})
	if err != nil {
		logAndInternalError(w, "failed to update contact message status", "error", err)
		return
	}

	slog.Info("contact message status updated",
		"category", "contact", "message_id", msg.ID, "status", req.Status)

	writeJSONSuccess(w, map[string]any{"data": contactResponseFrom(updated)})
}

// Delete handles DELETE /admin/contacts/{id}.
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntity(w, r, "contact message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessage(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteContactMessage(r.Context(), msg.ID); err != nil {
		logAndInternalError(w, "failed to delete contact message", "error", err)
		return
	}

	slog.Info("contact message deleted", "category", "contact", "message_id", msg.ID)
	writeJSONSuccess(w, nil)
}
