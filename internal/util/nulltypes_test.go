// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullStringFromValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  sql.NullString
	}{
		{name: "empty becomes NULL", input: "", want: sql.NullString{}},
		{name: "value kept", input: "Jeddah", want: sql.NullString{String: "Jeddah", Valid: true}},
		{name: "whitespace is a value", input: "  ", want: sql.NullString{String: "  ", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NullStringFromValue(tt.input); got != tt.want {
				t.Errorf("NullStringFromValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNullStringFromPtr(t *testing.T) {
	city := "Makkah"
	empty := ""

	if got := NullStringFromPtr(nil); got.Valid {
		t.Errorf("NullStringFromPtr(nil) = %v, want NULL", got)
	}
	if got := NullStringFromPtr(&city); !got.Valid || got.String != "Makkah" {
		t.Errorf("NullStringFromPtr(&city) = %v", got)
	}
	// A present-but-empty value is distinct from an absent one.
	if got := NullStringFromPtr(&empty); !got.Valid || got.String != "" {
		t.Errorf("NullStringFromPtr(&empty) = %v", got)
	}
}

func TestNullTimeFromPtr(t *testing.T) {
	if got := NullTimeFromPtr(nil); got.Valid {
		t.Errorf("NullTimeFromPtr(nil) = %v, want NULL", got)
	}

	departure := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	got := NullTimeFromPtr(&departure)
	if !got.Valid || !got.Time.Equal(departure) {
		t.Errorf("NullTimeFromPtr(&departure) = %v", got)
	}
}
