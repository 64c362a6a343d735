// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/manarahtours/manarah/internal/handler"
	"github.com/manarahtours/manarah/internal/store"
)

// TestimonialsPerPage is the default public page size.
const TestimonialsPerPage = 10

type testimonialItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	Rating   int64  `json:"rating"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

// ListTestimonials handles GET /api/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, TestimonialsPerPage, 50)

	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		total, err := h.queries.CountActiveTestimonials(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting testimonials: %w", err)
		}

		testimonials, err := h.queries.ListActiveTestimonials(ctx, store.ListActiveTestimonialsParams{
			Limit:  int64(perPage),
			Offset: int64((page - 1) * perPage),
		})
		if err != nil {
			return nil, fmt.Errorf("listing testimonials: %w", err)
		}

		data := make([]testimonialItem, 0, len(testimonials))
		for _, t := range testimonials {
			item := testimonialItem{
				ID:      t.ID,
				Name:    t.Name,
				Rating:  t.Rating,
				Content: t.Content,
			}
			if t.Country.Valid {
				item.Country = t.Country.String
			}
			if t.ImagePath.Valid {
				item.ImageURL = h.media.PublicURL(t.ImagePath.String)
			}
			data = append(data, item)
		}
		return pagePayload(data, handler.NewPagination(page, perPage, total)), nil
	})
}
