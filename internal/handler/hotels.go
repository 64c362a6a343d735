// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/manarahtours/manarah/internal/cache"
	"github.com/manarahtours/manarah/internal/store"
)

// HotelsHandler handles hotel catalog routes.
type HotelsHandler struct {
	queries *store.Queries
	cache   cache.Cacher
}

// NewHotelsHandler creates a new HotelsHandler.
func NewHotelsHandler(db *sql.DB, c cache.Cacher) *HotelsHandler {
	return &HotelsHandler{queries: store.New(db), cache: c}
}

type hotelResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	StarRating int64     `json:"star_rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func hotelResponseFrom(h store.UmrahHotel) hotelResponse {
	return hotelResponse{
		ID:         h.ID,
		Name:       h.Name,
		City:       h.City,
		StarRating: h.StarRating,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

// List handles GET /admin/hotels.
func (h *HotelsHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.queries.ListUmrahHotels(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list hotels", "error", err)
		return
	}

	data := make([]hotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		data = append(data, hotelResponseFrom(hotel))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/hotels/{id}.
func (h *HotelsHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotel, ok := requireEntity(w, r, "hotel", func(id int64) (store.UmrahHotel, error) {
		return h.queries.GetUmrahHotel(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": hotelResponseFrom(hotel)})
}

// hotelRequest is the body of hotel create/update requests.
type hotelRequest struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	StarRating int64  `json:"star_rating"`
}

func validateHotel(req hotelRequest) fieldErrors {
	fe := fieldErrors{}
	fe.requireString("name", req.Name, 255)
	fe.requireString("city", req.City, 100)
	fe.requireRange("star_rating", req.StarRating, 1, 5)
	return fe
}

// Create handles POST /admin/hotels.
func (h *HotelsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req hotelRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if fe := validateHotel(req); fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	now := time.Now()
	hotel, err := h.queries.CreateUmrahHotel(r.Context(), store.CreateUmrahHotelParams{
		Name:       req.Name,
		City:       req.City,
		StarRating: req.StarRating,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create hotel", "error", err)
		return
	}

	slog.Info("hotel created", "category", "content", "hotel_id", hotel.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": hotelResponseFrom(hotel)})
}

// Update handles PUT /admin/hotels/{id}.
func (h *HotelsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "hotel", func(id int64) (store.UmrahHotel, error) {
		return h.queries.GetUmrahHotel(r.Context(), id)
	})
	if !ok {
		return
	}

	var req hotelRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if fe := validateHotel(req); fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	hotel, err := h.queries.UpdateUmrahHotel(r.Context(), store.UpdateUmrahHotelParams{
		Name:       req.Name,
		City:       req.City,
		StarRating: req.StarRating,
		UpdatedAt:  time.Now(),
		ID:         existing.ID,
	})
	if err != nil {
		logAndInternalError(w, "failed to update hotel", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": hotelResponseFrom(hotel)})
}

// Delete handles DELETE /admin/hotels/{id}. Join rows pointing at the
// hotel are removed by foreign-key cascade.
func (h *HotelsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	hotel, ok := requireEntity(w, r, "hotel", func(id int64) (store.UmrahHotel, error) {
		return h.queries.GetUmrahHotel(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteUmrahHotel(r.Context(), hotel.ID); err != nil {
		logAndInternalError(w, "failed to delete hotel", "error", err)
		return
	}

	slog.Info("hotel deleted", "category", "content", "hotel_id", hotel.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}
