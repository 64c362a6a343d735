// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain filename", input: "kaaba.jpg", want: "kaaba.jpg"},
		{name: "filename with spaces", input: "hero slide 1.jpg", want: "hero slide 1.jpg"},
		{name: "traversal collapses to base", input: "../../../etc/passwd", want: "passwd"},
		{name: "directory prefix dropped", input: "slides/2026/photo.png", want: "photo.png"},
		{name: "absolute path", input: "/var/uploads/banner.webp", want: "banner.webp"},
		{name: "single dot", input: ".", wantErr: true},
		{name: "double dot", input: "..", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "dotfile kept", input: ".htaccess", want: ".htaccess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SanitizeFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsPathTraversal(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "plain relative path", path: "packages/file.jpg", want: false},
		{name: "leading double dot", path: "../etc/passwd", want: true},
		// "slides/../other/x" cleans to "other/x"; the traversal resolves
		// inside the path and never escapes the root.
		{name: "resolved middle traversal", path: "slides/../packages/x.jpg", want: false},
		{name: "stacked traversals", path: "../../../../etc/passwd", want: true},
		{name: "current dir prefix", path: "./slides/x.jpg", want: false},
		{name: "double dot inside filename", path: "photo..old.jpg", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsPathTraversal(tt.path); got != tt.want {
				t.Errorf("ContainsPathTraversal(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
