// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/manarahtours/manarah/internal/middleware"
	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/util"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter/subscribe. Subscribing an
// already-active address succeeds without side effects; subscribing an
// unsubscribed address reactivates it with a fresh token.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodySize)

	var req subscribeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		WriteValidationErrors(w, map[string][]string{
			"email": {"The email field is required."},
		})
		return
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		WriteValidationErrors(w, map[string][]string{
			"email": {"The email must be a valid email address."},
		})
		return
	}

	existing, err := h.queries.GetNewsletterSubscriberByEmail(r.Context(), email)
	switch {
	case err == nil && existing.Status == model.SubscriberStatusActive:
		WriteData(w, map[string]any{"message": "You are already subscribed."})
		return

	case err == nil:
		token, tokenErr := util.GenerateToken(model.UnsubscribeTokenLength)
		if tokenErr != nil {
			WriteInternalError(w, "failed to generate unsubscribe token", "error", tokenErr)
			return
		}
		_, err = h.queries.ReactivateNewsletterSubscriber(r.Context(), store.ReactivateNewsletterSubscriberParams{
			UnsubscribeToken: token,
			UpdatedAt:        time.Now(),
			ID:               existing.ID,
		})
		if err != nil {
			WriteInternalError(w, "failed to reactivate subscriber", "error", err)
			return
		}
		slog.Info("newsletter subscriber reactivated",
			"category", "newsletter", "subscriber_id", existing.ID)

	case errors.Is(err, sql.ErrNoRows):
		token, tokenErr := util.GenerateToken(model.UnsubscribeTokenLength)
		if tokenErr != nil {
			WriteInternalError(w, "failed to generate unsubscribe token", "error", tokenErr)
			return
		}

		ip := middleware.GetClientIP(r)
		var countryCode string
		if h.geo != nil {
			countryCode = h.geo.LookupCountry(ip)
		}

		now := time.Now()
		sub, createErr := h.queries.CreateNewsletterSubscriber(r.Context(), store.CreateNewsletterSubscriberParams{
			Email:            email,
			Status:           model.SubscriberStatusActive,
			UnsubscribeToken: token,
			IpAddress:        util.NullStringFromValue(ip),
			CountryCode:      util.NullStringFromValue(countryCode),
			Source:           util.NullStringFromValue(model.SubscribeSourceWebsite),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if createErr != nil {
			WriteInternalError(w, "failed to create subscriber", "error", createErr)
			return
		}
		slog.Info("newsletter subscriber created",
			"category", "newsletter", "subscriber_id", sub.ID, "country", countryCode)

	default:
		WriteInternalError(w, "failed to look up subscriber", "error", err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Thank you for subscribing to our newsletter.",
	})
}

var unsubscribePage = template.Must(template.New("unsubscribe").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; display: flex; justify-content: center; margin-top: 4rem; }
main { max-width: 28rem; text-align: center; }
</style>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
</main>
</body>
</html>
`))

func writeUnsubscribePage(w http.ResponseWriter, status int, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = unsubscribePage.Execute(w, map[string]string{
		"Title":   title,
		"Message": message,
	})
}

// Unsubscribe handles GET /newsletter/unsubscribe/{token}. The token
// matches an active subscription only, so a spent token gets the same
// failure page as one that never existed.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if len(token) != model.UnsubscribeTokenLength {
		writeUnsubscribePage(w, http.StatusNotFound, "Link not valid",
			"This unsubscribe link is not valid or has already been used.")
		return
	}

	sub, err := h.queries.GetNewsletterSubscriberByToken(r.Context(), token)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up unsubscribe token", "error", err)
		}
		writeUnsubscribePage(w, http.StatusNotFound, "Link not valid",
			"This unsubscribe link is not valid or has already been used.")
		return
	}

	now := time.Now()
	err = h.queries.UnsubscribeNewsletterSubscriber(r.Context(), store.UnsubscribeNewsletterSubscriberParams{
		UnsubscribedAt: sql.NullTime{Time: now, Valid: true},
		UpdatedAt:      now,
		ID:             sub.ID,
	})
	if err != nil {
		slog.Error("failed to unsubscribe subscriber", "error", err, "subscriber_id", sub.ID)
		writeUnsubscribePage(w, http.StatusInternalServerError, "Something went wrong",
			"We could not process your request. Please try again later.")
		return
	}
	slog.Info("newsletter subscriber unsubscribed",
		"category", "newsletter", "subscriber_id", sub.ID)

	writeUnsubscribePage(w, http.StatusOK, "You are unsubscribed",
		"You will no longer receive our newsletter.")
}
