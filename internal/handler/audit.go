// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/manarahtours/manarah/internal/store"
)

// ActivityPerPage is the default page size for the activity log.
const ActivityPerPage = 50

// AuditHandler serves the admin activity log.
type AuditHandler struct {
	queries *store.Queries
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(db *sql.DB) *AuditHandler {
	return &AuditHandler{queries: store.New(db)}
}

type auditEntryResponse struct {
	ID        int64           `json:"id"`
	Level     string          `json:"level"`
	Category  string          `json:"category"`
	Message   string          `json:"message"`
	UserID    *int64          `json:"user_id"`
	IPAddress *string         `json:"ip_address"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

func auditEntryFrom(e store.AuditLog) auditEntryResponse {
	resp := auditEntryResponse{
		ID:        e.ID,
		Level:     e.Level,
		Category:  e.Category,
		Message:   e.Message,
		IPAddress: nullStringPtr(e.IpAddress),
		CreatedAt: e.CreatedAt,
	}
	if e.UserID.Valid {
		resp.UserID = &e.UserID.Int64
	}
	if e.Metadata.Valid && json.Valid([]byte(e.Metadata.String)) {
		resp.Metadata = json.RawMessage(e.Metadata.String)
	}
	return resp
}

// List handles GET /admin/activity. An optional category query parameter
// narrows the log to one category.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r, ActivityPerPage, 200)
	category := r.URL.Query().Get("category")

	var (
		entries []store.AuditLog
		total   int64
		err     error
	)
	if category != "" {
		total, err = h.queries.CountAuditLogByCategory(r.Context(), category)
		if err == nil {
			entries, err = h.queries.ListAuditLogByCategory(r.Context(), store.ListAuditLogByCategoryParams{
				Category: category,
				Limit:    int64(perPage),
				Offset:   int64((page - 1) * perPage),
			})
		}
	} else {
		total, err = h.queries.CountAuditLog(r.Context())
		if err == nil {
			entries, err = h.queries.ListAuditLog(r.Context(), store.ListAuditLogParams{
				Limit:  int64(perPage),
				Offset: int64((page - 1) * perPage),
			})
		}
	}
	if err != nil {
		logAndInternalError(w, "failed to list activity log", "error", err)
		return
	}

	data := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, auditEntryFrom(e))
	}
	writeJSONSuccess(w, map[string]any{
		"data":       data,
		"pagination": NewPagination(page, perPage, total),
	})
}
