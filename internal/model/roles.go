// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines shared domain constants and value types
// used across the store, handlers, and middleware.
package model

// User roles, ordered by privilege.
const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
)

// ValidRoles contains all assignable user roles.
var ValidRoles = []string{RoleSuperAdmin, RoleAdmin, RoleEditor}

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
