// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

import "testing"

func TestLookup_Uninitialized(t *testing.T) {
	g := NewLookup()

	if g.IsEnabled() {
		t.Error("IsEnabled() = true before Init")
	}
	if got := g.LookupCountry("8.8.8.8"); got != "" {
		t.Errorf("LookupCountry before Init = %q, want empty", got)
	}
}

func TestLookup_InitEmptyPath(t *testing.T) {
	g := NewLookup()

	if err := g.Init(""); err != nil {
		t.Fatalf("Init(\"\") error: %v", err)
	}
	if g.IsEnabled() {
		t.Error("IsEnabled() = true with empty path")
	}

	// Private IPs still resolve to LOCAL without a database
	if got := g.LookupCountry("192.168.1.10"); got != "LOCAL" {
		t.Errorf("LookupCountry(private) = %q, want LOCAL", got)
	}
	if got := g.LookupCountry("127.0.0.1"); got != "LOCAL" {
		t.Errorf("LookupCountry(loopback) = %q, want LOCAL", got)
	}

	// Public IPs return empty without a database
	if got := g.LookupCountry("8.8.8.8"); got != "" {
		t.Errorf("LookupCountry(public) = %q, want empty", got)
	}
}

func TestLookup_InitMissingFile(t *testing.T) {
	g := NewLookup()

	if err := g.Init("/nonexistent/GeoLite2-Country.mmdb"); err == nil {
		t.Fatal("Init with missing file should return an error")
	}
	if g.IsEnabled() {
		t.Error("IsEnabled() = true after failed Init")
	}
}

func TestLookup_InvalidIP(t *testing.T) {
	g := NewLookup()
	_ = g.Init("")

	for _, ip := range []string{"", "not-an-ip", "999.1.1.1"} {
		if got := g.LookupCountry(ip); got != "" {
			t.Errorf("LookupCountry(%q) = %q, want empty", ip, got)
		}
	}
}

func TestCountryName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"SA", "Saudi Arabia"},
		{"AE", "United Arab Emirates"},
		{"ID", "Indonesia"},
		{"LOCAL", "Local Network"},
		{"", "Unknown"},
		{"XX", "XX"}, // unknown codes pass through
	}

	for _, tt := range tests {
		if got := CountryName(tt.code); got != tt.want {
			t.Errorf("CountryName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
