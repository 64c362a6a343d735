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

// AirlinesHandler handles airline catalog routes.
type AirlinesHandler struct {
	queries *store.Queries
	cache   cache.Cacher
}

// NewAirlinesHandler creates a new AirlinesHandler.
func NewAirlinesHandler(db *sql.DB, c cache.Cacher) *AirlinesHandler {
	return &AirlinesHandler{queries: store.New(db), cache: c}
}

type airlineResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func airlineResponseFrom(a store.UmrahAirline) airlineResponse {
	return airlineResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

// List handles GET /admin/airlines.
func (h *AirlinesHandler) List(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.queries.ListUmrahAirlines(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list airlines", "error", err)
		return
	}

	data := make([]airlineResponse, 0, len(airlines))
	for _, airline := range airlines {
		data = append(data, airlineResponseFrom(airline))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/airlines/{id}.
func (h *AirlinesHandler) Get(w http.ResponseWriter, r *http.Request) {
	airline, ok := requireEntity(w, r, "airline", func(id int64) (store.UmrahAirline, error) {
		return h.queries.GetUmrahAirline(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": airlineResponseFrom(airline)})
}

type airlineRequest struct {
	Name string `json:"name"`
}

// Create handles POST /admin/airlines.
func (h *AirlinesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req airlineRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	fe := fieldErrors{}
	fe.requireString("name", req.Name, 255)
	if fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	now := time.Now()
	airline, err := h.queries.CreateUmrahAirline(r.Context(), store.CreateUmrahAirlineParams{
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create airline", "error", err)
		return
	}

	slog.Info("airline created", "category", "content", "airline_id", airline.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": airlineResponseFrom(airline)})
}

// Update handles PUT /admin/airlines/{id}.
func (h *AirlinesHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "airline", func(id int64) (store.UmrahAirline, error) {
		return h.queries.GetUmrahAirline(r.Context(), id)
	})
	if !ok {
		return
	}

	var req airlineRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	fe := fieldErrors{}
	fe.requireString("name", req.Name, 255)
	if fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	airline, err := h.queries.UpdateUmrahAirline(r.Context(), store.UpdateUmrahAirlineParams{
		Name:      req.Name,
		UpdatedAt: time.Now(),
		ID:        existing.ID,
	})
	if err != nil {
		logAndInternalError(w, "failed to update airline", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": airlineResponseFrom(airline)})
}

// Delete handles DELETE /admin/airlines/{id}. Join rows pointing at the
// airline are removed by foreign-key cascade.
func (h *AirlinesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	airline, ok := requireEntity(w, r, "airline", func(id int64) (store.UmrahAirline, error) {
		return h.queries.GetUmrahAirline(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteUmrahAirline(r.Context(), airline.ID); err != nil {
		logAndInternalError(w, "failed to delete airline", "error", err)
		return
	}

	slog.Info("airline deleted", "category", "content", "airline_id", airline.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}
