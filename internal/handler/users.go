// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/manarahtours/manarah/internal/auth"
	"github.com/manarahtours/manarah/internal/middleware"
	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/rbac"
	"github.com/manarahtours/manarah/internal/store"
)

// UsersPerPage is the default number of users per admin list page.
const UsersPerPage = 10

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// UsersHandler handles user management routes.
type UsersHandler struct {
	queries *store.Queries
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(db *sql.DB) *UsersHandler {
	return &UsersHandler{queries: store.New(db)}
}

// userResponse is the JSON projection of a user. The password hash is
// never exposed.
type userResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func userResponseFrom(u store.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.LastLoginAt.Valid {
		t := u.LastLoginAt.Time
		resp.LastLoginAt = &t
	}
	return resp
}

// List handles GET /admin/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePageParam(r)
	perPage := ParsePerPageParam(r, UsersPerPage, 100)

	total, err := h.queries.CountUsers(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count users", "error", err)
		return
	}

	users, err := h.queries.ListUsers(r.Context(), store.ListUsersParams{
		Limit:  int64(perPage),
		Offset: int64((page - 1) * perPage),
	})
	if err != nil {
		logAndInternalError(w, "failed to list users", "error", err)
		return
	}

	data := make([]userResponse, 0, len(users))
	for _, u := range users {
		data = append(data, userResponseFrom(u))
	}

	writeJSONSuccess(w, map[string]any{
		"data":       data,
		"pagination": NewPagination(page, perPage, total),
	})
}

// Get handles GET /admin/users/{id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireEntity(w, r, "user", func(id int64) (store.User, error) {
		return h.queries.GetUser(r.Context(), id)
	})
	if !ok {
		return
	}
	writeJSONSuccess(w, map[string]any{"data": userResponseFrom(user)})
}

// userRequest is the body of user create/update requests. Password is
// required on create and optional on update.
type userRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (h *UsersHandler) validateUser(req userRequest, passwordRequired bool) fieldErrors {
	fe := fieldErrors{}
	fe.requireString("name", req.Name, 255)
	fe.requireEmail("email", req.Email)
	if !model.IsValidRole(req.Role) {
		fe.add("role", "The role must be one of super-admin, admin, or editor.")
	}
	if req.Password == "" {
		if passwordRequired {
			fe.add("password", "The password field is required.")
		}
	} else if len(req.Password) < minPasswordLength {
		fe.add("password", "The password must be at least 8 characters.")
	}
	return fe
}

// Create handles POST /admin/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r)

	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if fe := h.validateUser(req, true); fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	if !rbac.CanAssign(actor.Role, req.Role) {
		writeJSONError(w, http.StatusForbidden, "You may not assign the "+req.Role+" role")
		return
	}

	if _, err := h.queries.GetUserByEmail(r.Context(), req.Email); err == nil {
		writeValidationErrors(w, fieldErrors{"email": {"The email has already been taken."}})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		logAndInternalError(w, "failed to check email", "error", err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logAndInternalError(w, "failed to hash password", "error", err)
		return
	}

	now := time.Now()
	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create user", "error", err)
		return
	}

	slog.Info("user created", "category", "user",
		"user_id", user.ID, "role", user.Role, "actor_id", actor.ID)

	writeJSONCreated(w, map[string]any{"data": userResponseFrom(user)})
}

// Update handles PUT /admin/users/{id}.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r)

	target, ok := requireEntity(w, r, "user", func(id int64) (store.User, error) {
		return h.queries.GetUser(r.Context(), id)
	})
	if !ok {
		return
	}

	// Editing your own account is always allowed; role changes still go
	// through the assignability check below.
	if actor.ID != target.ID && !rbac.CanModifyUser(actor.Role, target.Role) {
		writeJSONError(w, http.StatusForbidden, "You may not edit a "+target.Role+" user")
		return
	}

	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequestOnDecode(w, err)
		return
	}

	if fe := h.validateUser(req, false); fe.any() {
		writeValidationErrors(w, fe)
		return
	}

	if req.Role != target.Role && !rbac.CanAssign(actor.Role, req.Role) {
		writeJSONError(w, http.StatusForbidden, "You may not assign the "+req.Role+" role")
		return
	}

	if req.Email != target.Email {
		if _, err := h.queries.GetUserByEmail(r.Context(), req.Email); err == nil {
			writeValidationErrors(w, fieldErrors{"email": {"The email has already been taken."}})
			return
		} else if !errors.Is(err, sql.ErrNoRows) {
			logAndInternalError(w, "failed to check email", "error", err)
			return
		}
	}

	user, err := h.queries.UpdateUser(r.Context(), store.UpdateUserParams{
		Email:     req.Email,
		Role:      req.Role,
		Name:      req.Name,
		UpdatedAt: time.Now(),
		ID:        target.ID,
	})
	if err != nil {
		logAndInternalError(w, "failed to update user", "error", err)
		return
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			logAndInternalError(w, "failed to hash password", "error", err)
			return
		}
		if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
			PasswordHash: hash,
			UpdatedAt:    time.Now(),
			ID:           target.ID,
		}); err != nil {
			logAndInternalError(w, "failed to update password", "error", err)
			return
		}
	}

	slog.Info("user updated", "category", "user",
		"user_id", user.ID, "actor_id", actor.ID)

	writeJSONSuccess(w, map[string]any{"data": userResponseFrom(user)})
}

// Delete handles DELETE /admin/users/{id}.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r)

	target, ok := requireEntity(w, r, "user", func(id int64) (store.User, error) {
		return h.queries.GetUser(r.Context(), id)
	})
	if !ok {
		return
	}

	if target.ID == actor.ID {
		writeJSONError(w, http.StatusForbidden, "You may not delete your own account")
		return
	}

	if !rbac.CanModifyUser(actor.Role, target.Role) {
		writeJSONError(w, http.StatusForbidden, "You may not delete a "+target.Role+" user")
		return
	}

	if err := h.queries.DeleteUser(r.Context(), target.ID); err != nil {
		logAndInternalError(w, "failed to delete user", "error", err)
		return
	}

	slog.Info("user deleted", "category", "user",
		"user_id", target.ID, "actor_id", actor.ID)

	writeJSONSuccess(w, nil)
}
