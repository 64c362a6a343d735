// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizeFilename strips any directory components from an uploaded
// filename, so names like "../../etc/passwd" collapse to their base.
func SanitizeFilename(filename string) (string, error) {
	safe := filepath.Base(filename)
	if safe == "." || safe == ".." || safe == "" || safe == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}
	return safe, nil
}

// ContainsPathTraversal reports whether a relative path still reaches
// outside its root after cleaning.
func ContainsPathTraversal(path string) bool {
	cleaned := filepath.Clean(path)
	return strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..")
}
