// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Contact message statuses. A message starts at "new", moves to "read"
// the first time an editor opens it, and to "replied" by manual patch.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ValidContactStatuses contains all contact message statuses.
var ValidContactStatuses = []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied}

// IsValidContactStatus reports whether status is a known contact status.
func IsValidContactStatus(status string) bool {
	for _, s := range ValidContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}
