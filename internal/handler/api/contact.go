// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/manarahtours/manarah/internal/middleware"
	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/util"
)

const maxContactBodySize = 64 << 10

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func validateContact(req contactRequest) map[string][]string {
	errs := map[string][]string{}
	addErr := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	if req.Name == "" {
		addErr("name", "The name field is required.")
	} else if utf8.RuneCountInString(req.Name) > 255 {
		addErr("name", "The name may not be longer than 255 characters.")
	}

	if req.Email == "" {
		addErr("email", "The email field is required.")
	} else if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		addErr("email", "The email must be a valid email address.")
	}

	if utf8.RuneCountInString(req.Phone) > 50 {
		addErr("phone", "The phone may not be longer than 50 characters.")
	}
	if utf8.RuneCountInString(req.Subject) > 255 {
		addErr("subject", "The subject may not be longer than 255 characters.")
	}

	if req.Message == "" {
		addErr("message", "The message field is required.")
	} else if utf8.RuneCountInString(req.Message) > 5000 {
		addErr("message", "The message may not be longer than 5000 characters.")
	}

	return errs
}

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodySize)

	var req contactRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validateContact(req); len(errs) > 0 {
		WriteValidationErrors(w, errs)
		return
	}

	now := time.Now()
	msg, err := h.queries.CreateContactMessage(r.Context(), store.CreateContactMessageParams{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     util.NullStringFromValue(req.Phone),
		Subject:   util.NullStringFromValue(req.Subject),
		Message:   req.Message,
		Status:    model.ContactStatusNew,
		UserAgent: util.NullStringFromValue(r.UserAgent()),
		IpAddress: util.NullStringFromValue(middleware.GetClientIP(r)),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		WriteInternalError(w, "failed to store contact message", "error", err)
		return
	}

	slog.Info("contact message received",
		"category", "contact", "message_id", msg.ID, "email", req.Email)

	if h.mailer != nil && h.contactNotifyTo != "" {
		subject := req.Subject
		if subject == "" {
			subject = fmt.Sprintf("Contact message #%d", msg.ID)
		}
		h.mailer.NotifyContactMessage(h.contactNotifyTo, req.Name, req.Email, subject, req.Message)
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Thank you for contacting us. We will get back to you soon.",
		"data":    map[string]any{"id": msg.ID},
	})
}
