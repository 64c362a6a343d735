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
	"github.com/manarahtours/manarah/internal/service"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/util"
)

const socialMediaFolder = "social-media"

// SocialMediaHandler handles social link management routes.
type SocialMediaHandler struct {
	queries *store.Queries
	media   *service.MediaService
	cache   cache.Cacher
}

// NewSocialMediaHandler creates a new SocialMediaHandler.
func NewSocialMediaHandler(db *sql.DB, media *service.MediaService, c cache.Cacher) *SocialMediaHandler {
	return &SocialMediaHandler{queries: store.New(db), media: media, cache: c}
}

type socialMediumResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	IconURL   string    `json:"icon_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	Order     int64     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *SocialMediaHandler) socialResponseFrom(s store.SocialMedium) socialMediumResponse {
	resp := socialMediumResponse{
		ID:        s.ID,
		Name:      s.Name,
		URL:       s.Url,
		IsActive:  s.IsActive,
		Order:     s.SortOrder,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.IconPath.Valid {
		resp.IconURL = h.media.PublicURL(s.IconPath.String)
	}
	return resp
}

// List handles GET /admin/social-media.
func (h *SocialMediaHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.queries.ListSocialMedia(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list social media", "error", err)
		return
	}

	data := make([]socialMediumResponse, 0, len(links))
	for _, s := range links {
		data = append(data, h.socialResponseFrom(s))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/social-media/{id}.
func (h *SocialMediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	link, ok := requireEntity(w, r, "social link", func(id int64) (store.SocialMedium, error) {
		return h.queries.GetSocialMedium(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": h.socialResponseFrom(link)})
}

func validateSocialMedium(r *http.Request) fieldErrors {
	fe := fieldErrors{}
	fe.requireString("name", r.FormValue("name"), 100)
	fe.requireURL("url", r.FormValue("url"), true)
	return fe
}

// Create handles POST /admin/social-media (multipart form; icon optional).
func (h *SocialMediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	iconPath, ok := storeFormImage(w, r, h.media, "icon", socialMediaFolder)
	if !ok {
		return
	}

	fe := validateSocialMedium(r)
	order := parseCreateOrder(r.FormValue("order"), fe)
	if fe.any() {
		discardUpload(h.media, iconPath)
		writeValidationErrors(w, fe)
		return
	}

	sortOrder, err := resolveSortOrder(r.Context(), order, h.queries.NextSocialMediumSortOrder)
	if err != nil {
		discardUpload(h.media, iconPath)
		logAndInternalError(w, "failed to compute sort order", "error", err)
		return
	}

	now := time.Now()
	link, err := h.queries.CreateSocialMedium(r.Context(), store.CreateSocialMediumParams{
		Name:      r.FormValue("name"),
		Url:       r.FormValue("url"),
		IconPath:  util.NullStringFromValue(iconPath),
		IsActive:  formBool(r, "is_active"),
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		discardUpload(h.media, iconPath)
		logAndInternalError(w, "failed to create social link", "error", err)
		return
	}

	slog.Info("social link created", "category", "content", "social_id", link.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": h.socialResponseFrom(link)})
}

// Update handles PUT /admin/social-media/{id}.
func (h *SocialMediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "social link", func(id int64) (store.SocialMedium, error) {
		return h.queries.GetSocialMedium(r.Context(), id)
	})
	if !ok {
		return
	}

	iconPath, ok := storeFormImage(w, r, h.media, "icon", socialMediaFolder)
	if !ok {
		return
	}

	if fe := validateSocialMedium(r); fe.any() {
		discardUpload(h.media, iconPath)
		writeValidationErrors(w, fe)
		return
	}

	newIcon := existing.IconPath
	if iconPath != "" {
		if existing.IconPath.Valid {
			if err := h.media.Delete(existing.IconPath.String); err != nil {
				slog.Warn("failed to delete previous icon",
					"error", err, "path", existing.IconPath.String)
			}
		}
		newIcon = util.NullStringFromValue(iconPath)
	}

	link, err := h.queries.UpdateSocialMedium(r.Context(), store.UpdateSocialMediumParams{
		Name:      r.FormValue("name"),
		Url:       r.FormValue("url"),
		IconPath:  newIcon,
		IsActive:  formBool(r, "is_active"),
		UpdatedAt: time.Now(),
		ID:        existing.ID,
	})
	if err != nil {
		discardUpload(h.media, iconPath)
		logAndInternalError(w, "failed to update social link", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": h.socialResponseFrom(link)})
}

// Delete handles DELETE /admin/social-media/{id}.
func (h *SocialMediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	link, ok := requireEntity(w, r, "social link", func(id int64) (store.SocialMedium, error) {
		return h.queries.GetSocialMedium(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteSocialMedium(r.Context(), link.ID); err != nil {
		logAndInternalError(w, "failed to delete social link", "error", err)
		return
	}

	if link.IconPath.Valid {
		if err := h.media.Delete(link.IconPath.String); err != nil {
			slog.Warn("failed to delete icon", "error", err, "path", link.IconPath.String)
		}
	}

	slog.Info("social link deleted", "category", "content", "social_id", link.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}

// Reorder handles POST /admin/social-media/reorder.
func (h *SocialMediaHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer flushPublicCache(r.Context(), h.cache)
	reorderCollection(w, r, func(ctx context.Context, id, order int64, now time.Time) error {
		return h.queries.UpdateSocialMediumSortOrder(ctx, store.UpdateSocialMediumSortOrderParams{
			SortOrder: order,
			UpdatedAt: now,
			ID:        id,
		})
	})
}
