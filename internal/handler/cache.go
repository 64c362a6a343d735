// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"log/slog"

	"github.com/manarahtours/manarah/internal/cache"
)

// PublicCachePrefix namespaces cached public API responses.
const PublicCachePrefix = "api:"

// flushPublicCache drops all cached public API responses. Called after
// any admin write so the public endpoints never serve stale content.
func flushPublicCache(ctx context.Context, c cache.Cacher) {
	if c == nil {
		return
	}
	if err := c.DeleteByPrefix(ctx, PublicCachePrefix); err != nil {
		slog.Error("failed to flush public cache", "error", err)
	}
}
