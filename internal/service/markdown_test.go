// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "basic formatting",
			source:   "**Visa assistance** is included in the _Gold_ package.",
			contains: []string{"<strong>Visa assistance</strong>", "<em>Gold</em>"},
		},
		{
			name:     "lists",
			source:   "- Mecca hotel\n- Medina hotel",
			contains: []string{"<ul>", "<li>Mecca hotel</li>", "<li>Medina hotel</li>"},
		},
		{
			name:     "script stripped",
			source:   "Hello <script>alert('x')</script> world",
			contains: []string{"Hello"},
			excludes: []string{"<script>", "alert"},
		},
		{
			name:     "event handlers stripped",
			source:   `<a href="https://example.com" onclick="steal()">link</a>`,
			contains: []string{"link"},
			excludes: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderMarkdown(tt.source)
			if err != nil {
				t.Fatalf("RenderMarkdown failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, banned := range tt.excludes {
				if strings.Contains(got, banned) {
					t.Errorf("output contains %q:\n%s", banned, got)
				}
			}
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	got := SanitizeHTML(`<p onmouseover="x()">text</p><iframe src="https://evil.example"></iframe>`)
	if strings.Contains(got, "onmouseover") || strings.Contains(got, "iframe") {
		t.Errorf("sanitizer left dangerous markup: %s", got)
	}
	if !strings.Contains(got, "text") {
		t.Errorf("sanitizer dropped safe content: %s", got)
	}
}
