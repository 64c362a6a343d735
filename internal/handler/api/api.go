// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the public REST handlers consumed by the website.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/manarahtours/manarah/internal/cache"
	"github.com/manarahtours/manarah/internal/geoip"
	"github.com/manarahtours/manarah/internal/handler"
	"github.com/manarahtours/manarah/internal/service"
	"github.com/manarahtours/manarah/internal/store"
)

// cacheTTL bounds how stale a cached public response may be. Admin
// writes flush the whole prefix, so the TTL only matters for direct
// database edits.
const cacheTTL = 5 * time.Minute

// Handler holds shared dependencies for all public API handlers.
type Handler struct {
	db              *sql.DB
	queries         *store.Queries
	media           *service.MediaService
	cache           cache.Cacher
	mailer          *service.Mailer
	geo             *geoip.Lookup
	baseURL         string
	contactNotifyTo string
}

// NewHandler creates a new public API handler.
func NewHandler(db *sql.DB, media *service.MediaService, c cache.Cacher, mailer *service.Mailer, geo *geoip.Lookup, baseURL, contactNotifyTo string) *Handler {
	return &Handler{
		db:              db,
		queries:         store.New(db),
		media:           media,
		cache:           c,
		mailer:          mailer,
		geo:             geo,
		baseURL:         strings.TrimRight(baseURL, "/"),
		contactNotifyTo: contactNotifyTo,
	}
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteData writes a successful response wrapping data.
func WriteData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

// WritePage writes a successful paginated response.
func WritePage(w http.ResponseWriter, data any, p handler.Pagination) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, map[string]any{
		"success": false,
		"message": message,
	})
}

// WriteValidationErrors writes a 422 response with per-field messages.
func WriteValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"success": false,
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}

// WriteInternalError logs the failure and writes a generic 500 response.
func WriteInternalError(w http.ResponseWriter, msg string, args ...any) {
	slog.Error(msg, args...)
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

// cacheKey builds the cache key for a request, including its query string.
func cacheKey(r *http.Request) string {
	key := handler.PublicCachePrefix + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}
	return key
}

// respondCached serves a GET response from the cache when present,
// otherwise builds the payload, stores the encoded body and writes it.
// Build errors produce a 500 and nothing is cached.
func (h *Handler) respondCached(w http.ResponseWriter, r *http.Request, build func(ctx context.Context) (any, error)) {
	key := cacheKey(r)

	if h.cache != nil {
		if body, err := h.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(body)
			return
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
	}

	payload, err := build(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		WriteInternalError(w, "failed to build response", "path", r.URL.Path, "error", err)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		WriteInternalError(w, "failed to encode response", "path", r.URL.Path, "error", err)
		return
	}
	body = append(body, '\n')

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), key, body, cacheTTL); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	_, _ = w.Write(body)
}

// dataPayload wraps data in the standard success envelope.
func dataPayload(data any) map[string]any {
	return map[string]any{
		"success": true,
		"data":    data,
	}
}

// pagePayload wraps a page of data in the standard success envelope.
func pagePayload(data any, p handler.Pagination) map[string]any {
	return map[string]any{
		"success":    true,
		"data":       data,
		"pagination": p,
	}
}

// pageSlice returns the in-memory page of items for page/perPage.
func pageSlice[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
