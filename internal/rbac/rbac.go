// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rbac holds the role-based access control policy for the admin
// surface. Permissions are declared in a single table so the full policy
// is readable in one place; handlers ask Can and never inspect roles
// directly.
package rbac

import "github.com/manarahtours/manarah/internal/model"

// Action is a named capability a role may hold.
type Action string

const (
	// ActionManageContent covers CRUD and reordering for all content
	// collections: hero slides, events, testimonials, FAQs, social
	// media links, Umrah packages, contact messages and newsletter
	// subscribers.
	ActionManageContent Action = "manage-content"

	// ActionManageUsers covers creating, updating and deleting admin
	// panel accounts.
	ActionManageUsers Action = "manage-users"
)

// policy is the complete permission table. A role absent from an
// action's map has no grant.
var policy = map[Action]map[string]bool{
	ActionManageContent: {
		model.RoleSuperAdmin: true,
		model.RoleAdmin:      true,
	},
	ActionManageUsers: {
		model.RoleSuperAdmin: true,
		model.RoleAdmin:      true,
	},
}

// assignable lists which roles an actor may assign when creating or
// updating a user.
var assignable = map[string]map[string]bool{
	model.RoleSuperAdmin: {
		model.RoleSuperAdmin: true,
		model.RoleAdmin:      true,
		model.RoleEditor:     true,
	},
	model.RoleAdmin: {
		model.RoleEditor: true,
	},
}

// Can reports whether role holds the given action.
func Can(role string, action Action) bool {
	return policy[action][role]
}

// CanAssign reports whether an actor with actorRole may assign
// targetRole to a user account.
func CanAssign(actorRole, targetRole string) bool {
	return assignable[actorRole][targetRole]
}

// CanModifyUser reports whether an actor may edit or delete another
// user holding targetRole. Super admins may modify anyone; admins may
// only modify editors. Handlers allow self edits before consulting
// this.
func CanModifyUser(actorRole, targetRole string) bool {
	if actorRole == model.RoleSuperAdmin {
		return true
	}
	if actorRole == model.RoleAdmin {
		return targetRole == model.RoleEditor
	}
	return false
}
