// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/manarahtours/manarah/internal/auth"
	"github.com/manarahtours/manarah/internal/middleware"
	"github.com/manarahtours/manarah/internal/store"
)

// SessionKeyUserID is the session key for storing the authenticated user ID.
const SessionKeyUserID = "user_id"

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// loginRequest is the body of POST /admin/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusUnprocessableEntity, "Email and password are required")
		return
	}

	clientIP := middleware.GetClientIP(r)

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(req.Email); locked {
			slog.Warn("login attempt on locked account",
				"category", "auth", "email", req.Email, "ip", clientIP)
			writeJSONError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Account temporarily locked. Try again in %s.", formatDuration(remaining)))
			return
		}
	}

	user, err := h.queries.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("login failed: user not found",
				"category", "auth", "email", req.Email, "ip", clientIP)
		} else {
			slog.Error("database error during login", "error", err)
		}
		// Record the attempt for unknown emails too so account
		// enumeration cannot bypass the lockout.
		h.recordFailure(w, req.Email)
		return
	}

	valid, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !valid {
		slog.Warn("login failed: invalid password",
			"category", "auth", "user_id", user.ID, "email", req.Email, "ip", clientIP)
		h.recordFailure(w, req.Email)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(req.Email)
	}

	// Migrate hashes produced with older parameters.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
				PasswordHash: newHash,
				UpdatedAt:    time.Now(),
				ID:           user.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), store.UpdateUserLastLoginParams{
		LastLoginAt: sql.NullTime{Time: time.Now(), Valid: true},
		ID:          user.ID,
	}); err != nil {
		slog.Error("failed to update last login", "error", err, "user_id", user.ID)
	}

	// Renew the session token on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), SessionKeyUserID, user.ID)

	slog.Info("user logged in", "category", "auth", "user_id", user.ID, "ip", clientIP)

	writeJSONSuccess(w, map[string]any{"data": userResponseFrom(user)})
}

// recordFailure records a failed attempt and answers with either a
// lockout notice or a generic invalid-credentials error.
func (h *AuthHandler) recordFailure(w http.ResponseWriter, email string) {
	if h.loginProtection != nil {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			writeJSONError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Too many failed attempts. Account locked for %s.", formatDuration(lockDuration)))
			return
		}
	}
	writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
}

// Logout handles POST /admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), SessionKeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, "failed to destroy session", "error", err)
		return
	}

	if userID > 0 {
		slog.Info("user logged out", "category", "auth", "user_id", userID)
	}

	writeJSONSuccess(w, nil)
}

// Me handles GET /admin/me, returning the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	writeJSONSuccess(w, map[string]any{"data": userResponseFrom(*user)})
}

// formatDuration renders a lockout duration for user-facing messages.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	return fmt.Sprintf("%d minutes", int(d.Minutes()))
}
