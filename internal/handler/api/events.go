// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/manarahtours/manarah/internal/handler"
)

// EventsPerPage is the default public page size.
const EventsPerPage = 10

type eventItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location,omitempty"`
	StartsAt    *time.Time `json:"starts_at"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image_url,omitempty"`
}

// ListEvents handles GET /api/events. The available set is small, so
// the page is cut in memory after fetching all rows.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, EventsPerPage, 50)

	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		events, err := h.queries.ListAvailableEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing events: %w", err)
		}

		pageEvents := pageSlice(events, page, perPage)
		data := make([]eventItem, 0, len(pageEvents))
		for _, e := range pageEvents {
			item := eventItem{
				ID:          e.ID,
				Title:       e.Title,
				Description: e.Description,
				Price:       e.Price,
			}
			if e.Location.Valid {
				item.Location = e.Location.String
			}
			if e.StartsAt.Valid {
				item.StartsAt = &e.StartsAt.Time
			}
			if e.ImagePath.Valid {
				item.ImageURL = h.media.PublicURL(e.ImagePath.String)
			}
			data = append(data, item)
		}
		return pagePayload(data, handler.NewPagination(page, perPage, int64(len(events)))), nil
	})
}
