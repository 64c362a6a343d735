// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/manarahtours/manarah/internal/service"
)

type faqItem struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListFaqs handles GET /api/faqs. Answers are stored as Markdown and
// rendered to sanitized HTML for the website.
func (h *Handler) ListFaqs(w http.ResponseWriter, r *http.Request) {
	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		faqs, err := h.queries.ListActiveFaqs(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing faqs: %w", err)
		}

		data := make([]faqItem, 0, len(faqs))
		for _, f := range faqs {
			answer, err := service.RenderMarkdown(f.Answer)
			if err != nil {
				return nil, fmt.Errorf("rendering faq %d: %w", f.ID, err)
			}
			data = append(data, faqItem{
				ID:       f.ID,
				Question: f.Question,
				Answer:   answer,
			})
		}
		return dataPayload(data), nil
	})
}
