// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateToken returns a cryptographically random hex string of the
// given length. Length must be even since every byte encodes to two
// hex characters.
func GenerateToken(length int) (string, error) {
	if length <= 0 || length%2 != 0 {
		return "", fmt.Errorf("token length must be a positive even number, got %d", length)
	}

	buf := make([]byte, length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
