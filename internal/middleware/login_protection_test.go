// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func fastLoginProtection(maxAttempts int, lockout, window time.Duration) *LoginProtection {
	return NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       100,
		IPBurst:           100,
		MaxFailedAttempts: maxAttempts,
		LockoutDuration:   lockout,
		AttemptWindow:     window,
	})
}

func TestDefaultLoginProtectionConfig(t *testing.T) {
	cfg := DefaultLoginProtectionConfig()

	if cfg.IPRateLimit != 0.5 {
		t.Errorf("IPRateLimit = %v, want 0.5", cfg.IPRateLimit)
	}
	if cfg.IPBurst != 5 {
		t.Errorf("IPBurst = %d, want 5", cfg.IPBurst)
	}
	if cfg.MaxFailedAttempts != 5 {
		t.Errorf("MaxFailedAttempts = %d, want 5", cfg.MaxFailedAttempts)
	}
	if cfg.LockoutDuration != 15*time.Minute || cfg.AttemptWindow != 15*time.Minute {
		t.Errorf("durations = %v / %v, want 15m each", cfg.LockoutDuration, cfg.AttemptWindow)
	}
}

func TestNewLoginProtectionZeroConfigDefaults(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{})

	if lp.maxFailedAttempts != 5 {
		t.Errorf("maxFailedAttempts = %d, want 5", lp.maxFailedAttempts)
	}
	if lp.lockoutDuration != 15*time.Minute {
		t.Errorf("lockoutDuration = %v, want 15m", lp.lockoutDuration)
	}
}

func TestAccountLockout(t *testing.T) {
	lp := fastLoginProtection(3, time.Second, time.Minute)
	email := "editor@manarahtours.sa"

	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Fatal("fresh account reported locked")
	}

	for i := 0; i < 2; i++ {
		if locked, _ := lp.RecordFailedAttempt(email); locked {
			t.Fatalf("attempt %d locked the account early", i+1)
		}
	}
	locked, dur := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("third failure did not lock the account")
	}
	if dur <= 0 {
		t.Errorf("lockout duration = %v", dur)
	}

	locked, remaining := lp.IsAccountLocked(email)
	if !locked || remaining <= 0 {
		t.Errorf("IsAccountLocked = %v, %v", locked, remaining)
	}

	time.Sleep(time.Second + 100*time.Millisecond)
	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Error("account still locked after the lockout expired")
	}
}

func TestSuccessfulLoginClearsFailures(t *testing.T) {
	lp := fastLoginProtection(3, time.Minute, time.Minute)
	email := "admin@manarahtours.sa"

	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	lp.RecordSuccessfulLogin(email)

	if got := lp.GetRemainingAttempts(email); got != 3 {
		t.Errorf("GetRemainingAttempts = %d, want 3", got)
	}
}

func TestRemainingAttemptsCountDown(t *testing.T) {
	lp := fastLoginProtection(5, time.Minute, time.Minute)
	email := "admin@manarahtours.sa"

	if got := lp.GetRemainingAttempts(email); got != 5 {
		t.Fatalf("GetRemainingAttempts = %d, want 5", got)
	}

	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	if got := lp.GetRemainingAttempts(email); got != 3 {
		t.Errorf("GetRemainingAttempts = %d, want 3", got)
	}
}

func TestLockoutBackoffGrows(t *testing.T) {
	lp := fastLoginProtection(2, 100*time.Millisecond, time.Minute)
	email := "editor@manarahtours.sa"

	lp.RecordFailedAttempt(email)
	_, first := lp.RecordFailedAttempt(email)

	time.Sleep(first + 10*time.Millisecond)

	lp.RecordFailedAttempt(email)
	_, second := lp.RecordFailedAttempt(email)

	if second <= first {
		t.Errorf("second lockout %v not longer than first %v", second, first)
	}
}

func TestAttemptWindowExpiry(t *testing.T) {
	lp := fastLoginProtection(5, time.Minute, 100*time.Millisecond)
	email := "editor@manarahtours.sa"

	lp.RecordFailedAttempt(email)
	if got := lp.GetRemainingAttempts(email); got != 4 {
		t.Fatalf("GetRemainingAttempts = %d, want 4", got)
	}

	time.Sleep(150 * time.Millisecond)

	if got := lp.GetRemainingAttempts(email); got != 5 {
		t.Errorf("GetRemainingAttempts after window = %d, want 5", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xForwarded string
		xRealIP    string
		want       string
	}{
		{name: "remote addr only", remoteAddr: "203.0.113.7:51442", want: "203.0.113.7"},
		{name: "forwarded single", remoteAddr: "127.0.0.1:8080", xForwarded: "198.51.100.4", want: "198.51.100.4"},
		{name: "forwarded chain keeps first hop", remoteAddr: "127.0.0.1:8080", xForwarded: "198.51.100.4, 10.0.0.2, 10.0.0.3", want: "198.51.100.4"},
		{name: "real ip", remoteAddr: "127.0.0.1:8080", xRealIP: "198.51.100.9", want: "198.51.100.9"},
		{name: "forwarded beats real ip", remoteAddr: "127.0.0.1:8080", xForwarded: "198.51.100.4", xRealIP: "198.51.100.9", want: "198.51.100.4"},
		{name: "forwarded trimmed", remoteAddr: "127.0.0.1:8080", xForwarded: "  198.51.100.4  ", want: "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xForwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.xForwarded)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			if got := GetClientIP(req); got != tt.want {
				t.Errorf("GetClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginProtectionMiddlewarePassthrough(t *testing.T) {
	lp := fastLoginProtection(5, time.Minute, time.Minute)
	handler := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(method, "/admin/login", nil))
		if rr.Code != http.StatusOK {
			t.Errorf("%s status = %d, want %d", method, rr.Code, http.StatusOK)
		}
	}
}

func TestCheckIPRateLimitBurst(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       10,
		IPBurst:           5,
		MaxFailedAttempts: 5,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	for i := 0; i < 5; i++ {
		if !lp.CheckIPRateLimit("203.0.113.50") {
			t.Errorf("request %d rejected inside the burst allowance", i+1)
		}
	}
}
