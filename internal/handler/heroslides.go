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

// heroSlidesFolder is the upload folder for slide images.
const heroSlidesFolder = "hero-slides"

// HeroSlidesHandler handles hero slide management routes.
type HeroSlidesHandler struct {
	queries *store.Queries
	media   *service.MediaService
	cache   cache.Cacher
}

// NewHeroSlidesHandler creates a new HeroSlidesHandler.
func NewHeroSlidesHandler(db *sql.DB, media *service.MediaService, c cache.Cacher) *HeroSlidesHandler {
	return &HeroSlidesHandler{queries: store.New(db), media: media, cache: c}
}

type heroSlideResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	ButtonText string    `json:"button_text,omitempty"`
	ButtonURL  string    `json:"button_url,omitempty"`
	ImageURL   string    `json:"image_url"`
	IsActive   bool      `json:"is_active"`
	Order      int64     `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (h *HeroSlidesHandler) slideResponseFrom(s store.HeroSlide) heroSlideResponse {
	return heroSlideResponse{
		ID:         s.ID,
		Title:      s.Title,
		Subtitle:   s.Subtitle.String,
		ButtonText: s.ButtonText.String,
		ButtonURL:  s.ButtonUrl.String,
		ImageURL:   h.media.PublicURL(s.ImagePath),
		IsActive:   s.IsActive,
		Order:      s.SortOrder,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// List handles GET /admin/hero-slides.
func (h *HeroSlidesHandler) List(w http.ResponseWriter, r *http.Request) {
	slides, err := h.queries.ListHeroSlides(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list hero slides", "error", err)
		return
	}

	data := make([]heroSlideResponse, 0, len(slides))
	for _, s := range slides {
		data = append(data, h.slideResponseFrom(s))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/hero-slides/{id}.
func (h *HeroSlidesHandler) Get(w http.ResponseWriter, r *http.Request) {
	slide, ok := requireEntity(w, r, "slide", func(id int64) (store.HeroSlide, error) {
		return h.queries.GetHeroSlide(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": h.slideResponseFrom(slide)})
}

func validateHeroSlide(r *http.Request) fieldErrors {
	fe := fieldErrors{}
	fe.requireString("title", r.FormValue("title"), 255)
	fe.capString("subtitle", r.FormValue("subtitle"), 500)
	fe.capString("button_text", r.FormValue("button_text"), 100)
	fe.requireURL("button_url", r.FormValue("button_url"), false)
	return fe
}

// Create handles POST /admin/hero-slides (multipart form; image required).
func (h *HeroSlidesHandler) Create(w http.ResponseWriter, r *http.Request) {
	imagePath, ok := storeFormImage(w, r, h.media, "image", heroSlidesFolder)
	if !ok {
		return
	}

	fe := validateHeroSlide(r)
	if imagePath == "" {
		fe.add("image", "The image field is required.")
	}
	order := parseCreateOrder(r.FormValue("order"), fe)
	if fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	sortOrder, err := resolveSortOrder(r.Context(), order, h.queries.NextHeroSlideSortOrder)
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to compute sort order", "error", err)
		return
	}

	now := time.Now()
	slide, err := h.queries.CreateHeroSlide(r.Context(), store.CreateHeroSlideParams{
		Title:      r.FormValue("title"),
		Subtitle:   util.NullStringFromValue(r.FormValue("subtitle")),
		ButtonText: util.NullStringFromValue(r.FormValue("button_text")),
		ButtonUrl:  util.NullStringFromValue(r.FormValue("button_url")),
		ImagePath:  imagePath,
		IsActive:   formBool(r, "is_active"),
		SortOrder:  sortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to create hero slide", "error", err)
		return
	}

	slog.Info("hero slide created", "category", "content", "slide_id", slide.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": h.slideResponseFrom(slide)})
}

// Update handles PUT /admin/hero-slides/{id} (multipart form; image optional).
func (h *HeroSlidesHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "slide", func(id int64) (store.HeroSlide, error) {
		return h.queries.GetHeroSlide(r.Context(), id)
	})
	if !ok {
		return
	}

	imagePath, ok := storeFormImage(w, r, h.media, "image", heroSlidesFolder)
	if !ok {
		return
	}

	if fe := validateHeroSlide(r); fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	newPath := existing.ImagePath
	if imagePath != "" {
		// Old file removal is best effort; the row update below is
		// authoritative.
		if err := h.media.Delete(existing.ImagePath); err != nil {
			slog.Warn("failed to delete previous slide image",
				"error", err, "path", existing.ImagePath)
		}
		newPath = imagePath
	}

	slide, err := h.queries.UpdateHeroSlide(r.Context(), store.UpdateHeroSlideParams{
		Title:      r.FormValue("title"),
		Subtitle:   util.NullStringFromValue(r.FormValue("subtitle")),
		ButtonText: util.NullStringFromValue(r.FormValue("button_text")),
		ButtonUrl:  util.NullStringFromValue(r.FormValue("button_url")),
		ImagePath:  newPath,
		IsActive:   formBool(r, "is_active"),
		UpdatedAt:  time.Now(),
		ID:         existing.ID,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to update hero slide", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": h.slideResponseFrom(slide)})
}

// Delete handles DELETE /admin/hero-slides/{id}.
func (h *HeroSlidesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slide, ok := requireEntity(w, r, "slide", func(id int64) (store.HeroSlide, error) {
		return h.queries.GetHeroSlide(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteHeroSlide(r.Context(), slide.ID); err != nil {
		logAndInternalError(w, "failed to delete hero slide", "error", err)
		return
	}

	if err := h.media.Delete(slide.ImagePath); err != nil {
		slog.Warn("failed to delete slide image", "error", err, "path", slide.ImagePath)
	}

	slog.Info("hero slide deleted", "category", "content", "slide_id", slide.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}

// Reorder handles POST /admin/hero-slides/reorder.
func (h *HeroSlidesHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer flushPublicCache(r.Context(), h.cache)
	reorderCollection(w, r, func(ctx context.Context, id, order int64, now time.Time) error {
		return h.queries.UpdateHeroSlideSortOrder(ctx, store.UpdateHeroSlideSortOrderParams{
			SortOrder: order,
			UpdatedAt: now,
			ID:        id,
		})
	})
}

