// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"log/slog"
	"net/http"

	"filippo.io/csrf/gorilla"
)

// CSRFHeaderName is the request header the admin frontend sends the
// CSRF token in.
const CSRFHeaderName = "X-CSRF-Token"

// CSRFConfig configures cross-site request forgery protection. The
// underlying filippo.io/csrf library validates Fetch metadata headers
// rather than cookies, so no cookie options exist here.
type CSRFConfig struct {
	// AuthKey is a 32-byte key authenticating tokens. Sharing the
	// session secret is fine.
	AuthKey []byte

	// ErrorHandler runs when validation fails. Nil gets a logging 403
	// handler.
	ErrorHandler http.Handler

	// TrustedOrigins lists host:port values allowed to make
	// cross-origin requests.
	TrustedOrigins []string
}

// DefaultCSRFConfig returns the standard configuration. Development
// trusts the localhost origins the Vite dev server uses; the library
// wants bare host:port values, not URLs.
func DefaultCSRFConfig(authKey []byte, isDev bool) CSRFConfig {
	cfg := CSRFConfig{AuthKey: authKey}
	if isDev {
		cfg.TrustedOrigins = []string{
			"localhost:8080",
			"127.0.0.1:8080",
		}
	}
	return cfg
}

// CSRF builds the protection middleware from cfg.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	errorHandler := cfg.ErrorHandler
	if errorHandler == nil {
		errorHandler = http.HandlerFunc(csrfFailure)
	}

	opts := []csrf.Option{csrf.ErrorHandler(errorHandler)}
	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}

	return csrf.Protect(cfg.AuthKey, opts...)
}

// csrfFailure logs the rejection with the headers the check was made
// from, then returns a plain 403.
func csrfFailure(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	slog.Error("CSRF validation failed",
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
		"origin", r.Header.Get("Origin"),
		"sec_fetch_site", r.Header.Get("Sec-Fetch-Site"),
	)
	http.Error(w, "Forbidden - CSRF validation failed", http.StatusForbidden)
}

// SkipCSRF exempts exact request paths from CSRF checks. The public
// contact and newsletter endpoints take anonymous POSTs and rely on
// rate limiting instead.
func SkipCSRF(paths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(paths))
	for _, p := range paths {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				r = csrf.UnsafeSkipCheck(r)
			}
			next.ServeHTTP(w, r)
		})
	}
}
