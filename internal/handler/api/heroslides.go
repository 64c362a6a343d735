// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/manarahtours/manarah/internal/handler"
)

// HeroSlidesPerPage is the default public page size.
const HeroSlidesPerPage = 10

type heroSlideItem struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	ButtonText string `json:"button_text,omitempty"`
	ButtonURL  string `json:"button_url,omitempty"`
	ImageURL   string `json:"image_url"`
}

// ListHeroSlides handles GET /api/hero-slides. The active set is small,
// so the page is cut in memory after fetching all rows.
func (h *Handler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, HeroSlidesPerPage, 50)

	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		slides, err := h.queries.ListActiveHeroSlides(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing hero slides: %w", err)
		}

		pageSlides := pageSlice(slides, page, perPage)
		data := make([]heroSlideItem, 0, len(pageSlides))
		for _, s := range pageSlides {
			item := heroSlideItem{
				ID:       s.ID,
				Title:    s.Title,
				ImageURL: h.media.PublicURL(s.ImagePath),
			}
			if s.Subtitle.Valid {
				item.Subtitle = s.Subtitle.String
			}
			if s.ButtonText.Valid {
				item.ButtonText = s.ButtonText.String
			}
			if s.ButtonUrl.Valid {
				item.ButtonURL = s.ButtonUrl.String
			}
			data = append(data, item)
		}
		return pagePayload(data, handler.NewPagination(page, perPage, int64(len(slides)))), nil
	})
}
