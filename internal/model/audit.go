// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Audit log severity levels.
const (
	AuditLevelInfo    = "info"
	AuditLevelWarning = "warning"
	AuditLevelError   = "error"
)

// Audit log categories.
const (
	AuditCategoryAuth       = "auth"
	AuditCategoryContent    = "content"
	AuditCategoryUser       = "user"
	AuditCategoryNewsletter = "newsletter"
	AuditCategoryContact    = "contact"
	AuditCategorySystem     = "system"
)
