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

const testimonialsFolder = "testimonials"

// TestimonialsHandler handles testimonial management routes.
type TestimonialsHandler struct {
	queries *store.Queries
	media   *service.MediaService
	cache   cache.Cacher
}

// NewTestimonialsHandler creates a new TestimonialsHandler.
func NewTestimonialsHandler(db *sql.DB, media *service.MediaService, c cache.Cacher) *TestimonialsHandler {
	return &TestimonialsHandler{queries: store.New(db), media: media, cache: c}
}

type testimonialResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	Rating    int64     `json:"rating"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	Order     int64     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *TestimonialsHandler) testimonialResponseFrom(t store.Testimonial) testimonialResponse {
	resp := testimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Country:   t.Country.String,
		Rating:    t.Rating,
		Content:   t.Content,
		IsActive:  t.IsActive,
		Order:     t.SortOrder,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.ImagePath.Valid {
		resp.ImageURL = h.media.PublicURL(t.ImagePath.String)
	}
	return resp
}

// List handles GET /admin/testimonials.
func (h *TestimonialsHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.queries.ListTestimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}

	data := make([]testimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		data = append(data, h.testimonialResponseFrom(t))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/testimonials/{id}.
func (h *TestimonialsHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := requireEntity(w, r, "testimonial", func(id int64) (store.Testimonial, error) {
		return h.queries.GetTestimonial(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": h.testimonialResponseFrom(t)})
}

func validateTestimonial(r *http.Request, rating int64) fieldErrors {
	fe := fieldErrors{}
	fe.requireString("name", r.FormValue("name"), 255)
	fe.capString("country", r.FormValue("country"), 100)
	fe.requireString("content", r.FormValue("content"), 5000)
	fe.requireRange("rating", rating, 1, 5)
	return fe
}

// Create handles POST /admin/testimonials (multipart form; image optional).
func (h *TestimonialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	imagePath, ok := storeFormImage(w, r, h.media, "image", testimonialsFolder)
	if !ok {
		return
	}

	rating, err := formInt(r, "rating")
	if err != nil {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fieldErrors{"rating": {"The rating must be an integer."}})
		return
	}

	fe := validateTestimonial(r, rating)
	order := parseCreateOrder(r.FormValue("order"), fe)
	if fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	sortOrder, err := resolveSortOrder(r.Context(), order, h.queries.NextTestimonialSortOrder)
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to compute sort order", "error", err)
		return
	}

	now := time.Now()
	t, err := h.queries.CreateTestimonial(r.Context(), store.CreateTestimonialParams{
		Name:      r.FormValue("name"),
		Country:   util.NullStringFromValue(r.FormValue("country")),
		Rating:    rating,
		Content:   r.FormValue("content"),
		ImagePath: util.NullStringFromValue(imagePath),
		IsActive:  formBool(r, "is_active"),
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to create testimonial", "error", err)
		return
	}

	slog.Info("testimonial created", "category", "content", "testimonial_id", t.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": h.testimonialResponseFrom(t)})
}

// Update handles PUT /admin/testimonials/{id}.
func (h *TestimonialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "testimonial", func(id int64) (store.Testimonial, error) {
		return h.queries.GetTestimonial(r.Context(), id)
	})
	if !ok {
		return
	}

	imagePath, ok := storeFormImage(w, r, h.media, "image", testimonialsFolder)
	if !ok {
		return
	}

	rating, err := formInt(r, "rating")
	if err != nil {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fieldErrors{"rating": {"The rating must be an integer."}})
		return
	}

	if fe := validateTestimonial(r, rating); fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	newImage := existing.ImagePath
	if imagePath != "" {
		if existing.ImagePath.Valid {
			if err := h.media.Delete(existing.ImagePath.String); err != nil {
				slog.Warn("failed to delete previous testimonial image",
					"error", err, "path", existing.ImagePath.String)
			}
		}
		newImage = util.NullStringFromValue(imagePath)
	}

	t, err := h.queries.UpdateTestimonial(r.Context(), store.UpdateTestimonialParams{
		Name:      r.FormValue("name"),
		Country:   util.NullStringFromValue(r.FormValue("country")),
		Rating:    rating,
		Content:   r.FormValue("content"),
		ImagePath: newImage,
		IsActive:  formBool(r, "is_active"),
		UpdatedAt: time.Now(),
		ID:        existing.ID,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to update testimonial", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": h.testimonialResponseFrom(t)})
}

// Delete handles DELETE /admin/testimonials/{id}.
func (h *TestimonialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, ok := requireEntity(w, r, "testimonial", func(id int64) (store.Testimonial, error) {
		return h.queries.GetTestimonial(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteTestimonial(r.Context(), t.ID); err != nil {
		logAndInternalError(w, "failed to delete testimonial", "error", err)
		return
	}

	if t.ImagePath.Valid {
		if err := h.media.Delete(t.ImagePath.String); err != nil {
			slog.Warn("failed to delete testimonial image",
				"error", err, "path", t.ImagePath.String)
		}
	}

	slog.Info("testimonial deleted", "category", "content", "testimonial_id", t.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}

// Reorder handles POST /admin/testimonials/reorder.
func (h *TestimonialsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer flushPublicCache(r.Context(), h.cache)
	reorderCollection(w, r, func(ctx context.Context, id, order int64, now time.Time) error {
		return h.queries.UpdateTestimonialSortOrder(ctx, store.UpdateTestimonialSortOrderParams{
			SortOrder: order,
			UpdatedAt: now,
			ID:        id,
		})
	})
}
