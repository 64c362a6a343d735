// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic and service layer functionality.
package service

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer strips dangerous markup from rendered content. UGCPolicy
// allows the safe formatting tags while removing <script>, event
// handlers and similar vectors.
var htmlSanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts markdown to sanitized HTML. Editors author
// FAQ answers and package descriptions in markdown; the public API
// serves the rendered form.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// SanitizeHTML strips dangerous markup from an HTML fragment.
func SanitizeHTML(fragment string) string {
	return htmlSanitizer.Sanitize(fragment)
}
