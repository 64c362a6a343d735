// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/manarahtours/manarah/internal/cache"
	"github.com/manarahtours/manarah/internal/store"
)

// FaqsHandler handles FAQ management routes.
type FaqsHandler struct {
	queries *store.Queries
	cache   cache.Cacher
}

// NewFaqsHandler creates a new FaqsHandler.
func NewFaqsHandler(db *sql.DB, c cache.Cacher) *FaqsHandler {
	return &FaqsHandler{queries: store.New(db), cache: c}
}

// faqResponse is the JSON projection of a FAQ entry. The answer field
// holds raw markdown; the public API renders it.
type faqResponse struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsActive  bool      `json:"is_active"`
	Order     int64     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func faqResponseFrom(f store.Faq) faqResponse {
	return faqResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		IsActive:  f.IsActive,
		Order:     f.SortOrder,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// List handles GET /admin/faqs. All entries are returned regardless of
// the active flag, in display order.
func (h *FaqsHandler) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.queries.ListFaqs(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list faqs", "error", err)
		return
	}

	data := make([]faqResponse, 0, len(faqs))
	for _, f := range faqs {
		data = append(data, faqResponseFrom(f))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/faqs/{id}.
func (h *FaqsHandler) Get(w http.ResponseWriter, r *http.Request) {
	faq, ok := requireEntity(w, r, "FAQ", func(id int64) (store.Faq, error) {
		return h.queries.GetFaq(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": faqResponseFrom(faq)})
}

// faqRequest is the body of FAQ create/update requests. Order is only
// honored on create; reorder is the way to move existing entries.
type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive bool   `json:"is_active"`
	Order    *int64 `json:"order"`
}

func validateFaq(req faqRequest) fieldErrors {
	fe := fieldErrors{}
	fe.requireString("question", req.Question, 500)
	fe.requireString("answer", req.Answer, 10000)
	if req.Order != nil && *req.Order < 0 {
		fe.add("order", "The order must be a non-negative integer.")
	}
	return fe
}

// Create handles POST /admin/faqs.
func (h *FaqsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if fe := validateFaq(req); fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	sortOrder, err := resolveSortOrder(r.Context(), req.Order, h.queries.NextFaqSortOrder)
	if err != nil {
		logAndInternalError(w, "failed to compute sort order", "error", err)
		return
	}

	now := time.Now()
	faq, err := h.queries.CreateFaq(r.Context(), store.CreateFaqParams{
		Question:  req.Question,
		Answer:    req.Answer,
		IsActive:  req.IsActive,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create faq", "error", err)
		return
	}

	slog.Info("faq created", "category", "content", "faq_id", faq.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": faqResponseFrom(faq)})
}

// Update handles PUT /admin/faqs/{id}.
func (h *FaqsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "FAQ", func(id int64) (store.Faq, error) {
		return h.queries.GetFaq(r.Context(), id)
	})
	if !ok {
		return
	}

	var req faqRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if fe := validateFaq(req); fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	faq, err := h.queries.UpdateFaq(r.Context(), store.UpdateFaqParams{
		Question:  req.Question,
		Answer:    req.Answer,
		IsActive:  req.IsActive,
		UpdatedAt: time.Now(),
		ID:        existing.ID,
	})
	if err != nil {
		logAndInternalError(w, "failed to update faq", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": faqResponseFrom(faq)})
}

// Delete handles DELETE /admin/faqs/{id}.
func (h *FaqsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	faq, ok := requireEntity(w, r, "FAQ", func(id int64) (store.Faq, error) {
		return h.queries.GetFaq(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteFaq(r.Context(), faq.ID); err != nil {
		logAndInternalError(w, "failed to delete faq", "error", err)
		return
	}

	slog.Info("faq deleted", "category", "content", "faq_id", faq.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}

// Reorder handles POST /admin/faqs/reorder.
func (h *FaqsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer flushPublicCache(r.Context(), h.cache)
	reorderCollection(w, r, func(ctx context.Context, id, order int64, now time.Time) error {
		return h.queries.UpdateFaqSortOrder(ctx, store.UpdateFaqSortOrderParams{
			SortOrder: order,
			UpdatedAt: now,
			ID:        id,
		})
	})
}
