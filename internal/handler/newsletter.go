// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/manarahtours/manarah/internal/store"
)

// SubscribersPerPage is the default page size for the subscriber list.
const SubscribersPerPage = 20

// NewsletterHandler handles the admin newsletter subscriber list.
type NewsletterHandler struct {
	queries *store.Queries
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(db *sql.DB) *NewsletterHandler {
	return &NewsletterHandler{queries: store.New(db)}
}

type subscriberResponse struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	CountryCode    *string    `json:"country_code"`
	Source         *string    `json:"source"`
	CreatedAt      time.Time  `json:"created_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}

func subscriberResponseFrom(s store.NewsletterSubscriber) subscriberResponse {
	resp := subscriberResponse{
		ID:          s.ID,
		Email:       s.Email,
		Status:      s.Status,
		CountryCode: nullStringPtr(s.CountryCode),
		Source:      nullStringPtr(s.Source),
		CreatedAt:   s.CreatedAt,
	}
	if s.UnsubscribedAt.Valid {
		resp.UnsubscribedAt = &s.UnsubscribedAt.Time
	}
	return resp
}

// List handles GET /admin/newsletter. An optional q query parameter
// filters by email substring.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r, SubscribersPerPage, 100)
	query := r.URL.Query().Get("q")

	var (
		subscribers []store.NewsletterSubscriber
		total       int64
		err         error
	)
	if query != "" {
		total, err = h.queries.CountSearchNewsletterSubscribers(r.Context(), query)
		if err == nil {
			subscribers, err = h.queries.SearchNewsletterSubscribers(r.Context(), store.SearchNewsletterSubscribersParams{
				Query:  query,
				Limit:  int64(perPage),
				Offset: int64((page - 1) * perPage),
			})
		}
	} else {
		total, err = h.queries.CountNewsletterSubscribers(r.Context())
		if err == nil {
			subscribers, err = h.queries.ListNewsletterSubscribers(r.Context(), store.ListNewsletterSubscribersParams{
				Limit:  int64(perPage),
				Offset: int64((page - 1) * perPage),
			})
		}
	}
	if err != nil {
		logAndInternalError(w, "failed to list newsletter subscribers", "error", err)
		return
	}

	data := make([]subscriberResponse, 0, len(subscribers))
	for _, s := range subscribers {
		data = append(data, subscriberResponseFrom(s))
	}
	writeJSONSuccess(w, map[string]any{
		"data":       data,
		"pagination": NewPagination(page, perPage, total),
	})
}

// Delete handles DELETE /admin/newsletter/{id}. The row is soft deleted
// and purged later by the retention job.
func (h *NewsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sub, ok := requireEntity(w, r, "subscriber", func(id int64) (store.NewsletterSubscriber, error) {
		return h.queries.GetNewsletterSubscriber(r.Context(), id)
	})
	if !ok {
		return
	}

	now := time.Now()
	err := h.queries.SoftDeleteNewsletterSubscriber(r.Context(), store.SoftDeleteNewsletterSubscriberParams{
		DeletedAt: sql.NullTime{Time: now, Valid: true},
		UpdatedAt: now,
		ID:        sub.ID,
	})
	if err != nil {
		logAndInternalError(w, "failed to delete newsletter subscriber", "error", err)
		return
	}

	slog.Info("newsletter subscriber deleted", "category", "newsletter", "subscriber_id", sub.ID)
	writeJSONSuccess(w, nil)
}
