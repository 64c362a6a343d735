// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// ReorderItem is one (id, order) pair in a reorder request.
type ReorderItem struct {
	ID    int64 `json:"id"`
	Order int64 `json:"order"`
}

// ReorderRequest is the body of POST /admin/<resource>/reorder. Items
// carry the full desired ordering of the collection.
type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

// parseCreateOrder extracts an optional explicit "order" form value for
// a create request. An absent or empty value returns nil, meaning the
// record is appended at the end of the collection.
func parseCreateOrder(raw string, fe fieldErrors) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		fe.add("order", "The order must be a non-negative integer.")
		return nil
	}
	return &v
}

// resolveSortOrder picks the sort order for a new record: the caller's
// explicit value when one was supplied, otherwise the next free slot.
func resolveSortOrder(ctx context.Context, explicit *int64, next func(context.Context) (int64, error)) (int64, error) {
	if explicit != nil {
		return *explicit, nil
	}
	return next(ctx)
}

// reorderCollection applies a reorder request pair by pair. Each pair is
// an independent unconditional update; there is no transaction, so two
// concurrent reorders can interleave (last write wins per row). Unknown
// IDs are logged and skipped. An empty item list is a no-op.
func reorderCollection(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, id, order int64, now time.Time) error) {
	var req ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	for _, item := range req.Items {
		if item.Order < 0 {
			writeJSONError(w, http.StatusUnprocessableEntity, "Order values may not be negative")
			return
		}
	}

	now := time.Now()
	for _, item := range req.Items {
		if err := update(r.Context(), item.ID, item.Order, now); err != nil {
			slog.Error("failed to update sort order", "error", err, "id", item.ID)
		}
	}

	writeJSONSuccess(w, nil)
}
