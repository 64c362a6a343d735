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

const eventsFolder = "events"

// EventsHandler handles event management routes.
type EventsHandler struct {
	queries *store.Queries
	media   *service.MediaService
	cache   cache.Cacher
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB, media *service.MediaService, c cache.Cacher) *EventsHandler {
	return &EventsHandler{queries: store.New(db), media: media, cache: c}
}

type eventResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location,omitempty"`
	StartsAt    *time.Time `json:"starts_at"`
	Price       float64    `json:"price"`
	IsAvailable bool       `json:"is_available"`
	ImageURL    string     `json:"image_url,omitempty"`
	Order       int64      `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (h *EventsHandler) eventResponseFrom(e store.Event) eventResponse {
	resp := eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location.String,
		Price:       e.Price,
		IsAvailable: e.IsAvailable,
		Order:       e.SortOrder,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.StartsAt.Valid {
		t := e.StartsAt.Time
		resp.StartsAt = &t
	}
	if e.ImagePath.Valid {
		resp.ImageURL = h.media.PublicURL(e.ImagePath.String)
	}
	return resp
}

// List handles GET /admin/events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	data := make([]eventResponse, 0, len(events))
	for _, e := range events {
		data = append(data, h.eventResponseFrom(e))
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/events/{id}.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, ok := requireEntity(w, r, "event", func(id int64) (store.Event, error) {
		return h.queries.GetEvent(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": h.eventResponseFrom(event)})
}

// parseEventForm validates event form fields and extracts typed values.
func parseEventForm(r *http.Request) (price float64, startsAt sql.NullTime, fe fieldErrors) {
	fe = fieldErrors{}
	fe.requireString("title", r.FormValue("title"), 255)
	fe.requireString("description", r.FormValue("description"), 10000)
	fe.capString("location", r.FormValue("location"), 255)

	var err error
	price, err = formFloat(r, "price")
	if err != nil {
		fe.add("price", "The price must be a number.")
	} else {
		fe.requireNonNegative("price", price)
	}

	if raw := r.FormValue("starts_at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fe.add("starts_at", "The starts_at must be an RFC 3339 timestamp.")
		} else {
			startsAt = sql.NullTime{Time: t, Valid: true}
		}
	}
	return price, startsAt, fe
}

// Create handles POST /admin/events (multipart form; image optional).
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	imagePath, ok := storeFormImage(w, r, h.media, "image", eventsFolder)
	if !ok {
		return
	}

	price, startsAt, fe := parseEventForm(r)
	order := parseCreateOrder(r.FormValue("order"), fe)
	if fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	sortOrder, err := resolveSortOrder(r.Context(), order, h.queries.NextEventSortOrder)
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to compute sort order", "error", err)
		return
	}

	now := time.Now()
	event, err := h.queries.CreateEvent(r.Context(), store.CreateEventParams{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    util.NullStringFromValue(r.FormValue("location")),
		StartsAt:    startsAt,
		Price:       price,
		IsAvailable: formBool(r, "is_available"),
		ImagePath:   util.NullStringFromValue(imagePath),
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to create event", "error", err)
		return
	}

	slog.Info("event created", "category", "content", "event_id", event.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONCreated(w, map[string]any{"data": h.eventResponseFrom(event)})
}

// Update handles PUT /admin/events/{id}.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "event", func(id int64) (store.Event, error) {
		return h.queries.GetEvent(r.Context(), id)
	})
	if !ok {
		return
	}

	imagePath, ok := storeFormImage(w, r, h.media, "image", eventsFolder)
	if !ok {
		return
	}

	price, startsAt, fe := parseEventForm(r)
	if fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	newImage := existing.ImagePath
	if imagePath != "" {
		if existing.ImagePath.Valid {
			if err := h.media.Delete(existing.ImagePath.String); err != nil {
				slog.Warn("failed to delete previous event image",
					"error", err, "path", existing.ImagePath.String)
			}
		}
		newImage = util.NullStringFromValue(imagePath)
	}

	event, err := h.queries.UpdateEvent(r.Context(), store.UpdateEventParams{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    util.NullStringFromValue(r.FormValue("location")),
		StartsAt:    startsAt,
		Price:       price,
		IsAvailable: formBool(r, "is_available"),
		ImagePath:   newImage,
		UpdatedAt:   time.Now(),
		ID:          existing.ID,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to update event", "error", err)
		return
	}

	flushPublicCache(r.Context(), h.cache)
	writeJSONSuccess(w, map[string]any{"data": h.eventResponseFrom(event)})
}

// Delete handles DELETE /admin/events/{id}.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	event, ok := requireEntity(w, r, "event", func(id int64) (store.Event, error) {
		return h.queries.GetEvent(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteEvent(r.Context(), event.ID); err != nil {
		logAndInternalError(w, "failed to delete event", "error", err)
		return
	}

	if event.ImagePath.Valid {
		if err := h.media.Delete(event.ImagePath.String); err != nil {
			slog.Warn("failed to delete event image",
				"error", err, "path", event.ImagePath.String)
		}
	}

	slog.Info("event deleted", "category", "content", "event_id", event.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}

// Reorder handles POST /admin/events/reorder.
func (h *EventsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer flushPublicCache(r.Context(), h.cache)
	reorderCollection(w, r, func(ctx context.Context, id, order int64, now time.Time) error {
		return h.queries.UpdateEventSortOrder(ctx, store.UpdateEventSortOrderParams{
			SortOrder: order,
			UpdatedAt: now,
			ID:        id,
		})
	})
}
