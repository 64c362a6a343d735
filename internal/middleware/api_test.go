// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func rateLimitedHandler(rps float64, burst int) http.Handler {
	rl := NewGlobalRateLimiter(rps, burst)
	return rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func apiRequest(remoteAddr string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/faqs", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestGlobalRateLimiterExhaustsBurst(t *testing.T) {
	handler := rateLimitedHandler(2, 2)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, apiRequest("203.0.113.1:40001", nil))
		if rr.Code != http.StatusOK {
			t.Errorf("request %d: status = %d", i+1, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, apiRequest("203.0.113.1:40001", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestGlobalRateLimiterPerIP(t *testing.T) {
	handler := rateLimitedHandler(1, 1)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, apiRequest("203.0.113.1:40001", nil))

	// A different IP has its own bucket.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, apiRequest("203.0.113.2:40001", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("second IP status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestGlobalRateLimiterProxyHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "198.51.100.10"}},
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "198.51.100.20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := rateLimitedHandler(1, 1)

			// Same client IP behind the proxy shares one bucket even
			// though the proxy's RemoteAddr port differs per request.
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, apiRequest("127.0.0.1:40001", tt.headers))
			if rr.Code != http.StatusOK {
				t.Fatalf("first request status = %d", rr.Code)
			}

			rr = httptest.NewRecorder()
			handler.ServeHTTP(rr, apiRequest("127.0.0.1:40002", tt.headers))
			if rr.Code != http.StatusTooManyRequests {
				t.Errorf("second request status = %d, want %d", rr.Code, http.StatusTooManyRequests)
			}
		})
	}
}
