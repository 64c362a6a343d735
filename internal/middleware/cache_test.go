// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticCacheHeader(t *testing.T) {
	tests := []struct {
		name   string
		maxAge int
		want   string
	}{
		{name: "hour", maxAge: 3600, want: "public, max-age=3600"},
		{name: "week", maxAge: 604800, want: "public, max-age=604800"},
		{name: "zero", maxAge: 0, want: "public, max-age=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := StaticCache(tt.maxAge)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/packages/hero.webp", nil))

			if got := rr.Header().Get("Cache-Control"); got != tt.want {
				t.Errorf("Cache-Control = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStaticCachePassthrough(t *testing.T) {
	handler := StaticCache(604800)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("RIFF"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/slides/kaaba.webp", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/webp" {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := rr.Body.String(); body != "RIFF" {
		t.Errorf("Body = %q", body)
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "public, max-age=604800" {
		t.Errorf("Cache-Control = %q", cc)
	}
}
