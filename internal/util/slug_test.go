package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Golden Umrah", "golden-umrah"},
		{"punctuation", "Makkah & Madinah, Deluxe!", "makkah-madinah-deluxe"},
		{"numbers", "Ramadan 2026", "ramadan-2026"},
		{"accents", "Café résumé", "cafe-resume"},
		{"repeated spaces", "Family   Package", "family-package"},
		{"hyphen with spaces", "Makkah - Madinah", "makkah-madinah"},
		{"surrounding spaces", "  Economy Umrah  ", "economy-umrah"},
		{"only symbols", "!@#$%^&*()", ""},
		{"umlauts", "Über München", "uber-munchen"},
		{"empty", "", ""},
		{"mixed case", "PreMIum HaJJ", "premium-hajj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyTransliterates(t *testing.T) {
	// Non-Latin titles must transliterate to a usable slug rather than
	// collapse to an empty string.
	for _, input := range []string{
		"باقة العمرة الذهبية",
		"Пакет Хадж",
	} {
		got := Slugify(input)
		if got == "" {
			t.Errorf("Slugify(%q) = empty, want transliterated slug", input)
			continue
		}
		if !IsValidSlug(got) {
			t.Errorf("Slugify(%q) = %q, not a valid slug", input, got)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"golden-umrah", true},
		{"ramadan-2026", true},
		{"umrah", true},
		{"2026", true},
		{"", false},
		{"Golden-Umrah", false},
		{"golden umrah", false},
		{"golden!umrah", false},
		{"-golden", false},
		{"golden-", false},
		{"golden--umrah", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidSlug(tt.input); got != tt.want {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
