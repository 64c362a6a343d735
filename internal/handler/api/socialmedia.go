// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
)

type socialMediaItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	IconURL string `json:"icon_url"`
}

// ListSocialMedia handles GET /api/social-media.
func (h *Handler) ListSocialMedia(w http.ResponseWriter, r *http.Request) {
	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		links, err := h.queries.ListActiveSocialMedia(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing social media links: %w", err)
		}

		data := make([]socialMediaItem, 0, len(links))
		for _, link := range links {
			item := socialMediaItem{
				ID:   link.ID,
				Name: link.Name,
				URL:  link.Url,
			}
			if link.IconPath.Valid {
				item.IconURL = h.media.PublicURL(link.IconPath.String)
			}
			data = append(data, item)
		}
		return dataPayload(data), nil
	})
}
