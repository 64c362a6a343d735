// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// LoginProtectionConfig tunes brute-force protection on the login route.
type LoginProtectionConfig struct {
	// IPRateLimit is login POSTs per second allowed per client IP.
	IPRateLimit float64
	// IPBurst is the token bucket size for the per-IP limiter.
	IPBurst int
	// MaxFailedAttempts is the failure count that triggers a lockout.
	MaxFailedAttempts int
	// LockoutDuration is the first lockout length. Repeat lockouts
	// double it, capped at 24 hours.
	LockoutDuration time.Duration
	// AttemptWindow bounds how long failures accumulate before the
	// counter resets.
	AttemptWindow time.Duration
}

// DefaultLoginProtectionConfig allows one login POST per two seconds per
// IP and locks an account for 15 minutes after five failures.
func DefaultLoginProtectionConfig() LoginProtectionConfig {
	return LoginProtectionConfig{
		IPRateLimit:       0.5,
		IPBurst:           5,
		MaxFailedAttempts: 5,
		LockoutDuration:   15 * time.Minute,
		AttemptWindow:     15 * time.Minute,
	}
}

// attemptRecord tracks login failures for one account.
type attemptRecord struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
	lockouts    int
}

// LoginProtection combines per-IP rate limiting with per-account
// lockout. Both trackers live in memory; restarting the server clears
// them, which is acceptable for this attack surface.
type LoginProtection struct {
	ipLimiters *limiterCache[string]

	attemptsMu sync.RWMutex
	attempts   map[string]*attemptRecord

	maxFailedAttempts int
	lockoutDuration   time.Duration
	attemptWindow     time.Duration
}

// NewLoginProtection builds a LoginProtection, substituting defaults for
// any zero config field, and starts its background cleanup loop.
func NewLoginProtection(cfg LoginProtectionConfig) *LoginProtection {
	def := DefaultLoginProtectionConfig()
	if cfg.IPRateLimit <= 0 {
		cfg.IPRateLimit = def.IPRateLimit
	}
	if cfg.IPBurst <= 0 {
		cfg.IPBurst = def.IPBurst
	}
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = def.MaxFailedAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = def.LockoutDuration
	}
	if cfg.AttemptWindow <= 0 {
		cfg.AttemptWindow = def.AttemptWindow
	}

	lp := &LoginProtection{
		ipLimiters:        newLimiterCache[string](cfg.IPRateLimit, cfg.IPBurst),
		attempts:          make(map[string]*attemptRecord),
		maxFailedAttempts: cfg.MaxFailedAttempts,
		lockoutDuration:   cfg.LockoutDuration,
		attemptWindow:     cfg.AttemptWindow,
	}
	go lp.cleanupLoop()
	return lp
}

// CheckIPRateLimit reports whether a login POST from ip may proceed.
func (lp *LoginProtection) CheckIPRateLimit(ip string) bool {
	return lp.ipLimiters.get(ip).Allow()
}

// IsAccountLocked reports whether the account is locked and, if so, for
// how much longer.
func (lp *LoginProtection) IsAccountLocked(email string) (bool, time.Duration) {
	lp.attemptsMu.RLock()
	rec, ok := lp.attempts[email]
	lp.attemptsMu.RUnlock()

	if ok && time.Now().Before(rec.lockedUntil) {
		return true, time.Until(rec.lockedUntil)
	}
	return false, 0
}

// RecordFailedAttempt counts a login failure against the account. When
// the failure threshold is reached it locks the account and returns the
// lockout duration, which doubles with each successive lockout.
func (lp *LoginProtection) RecordFailedAttempt(email string) (bool, time.Duration) {
	lp.attemptsMu.Lock()
	defer lp.attemptsMu.Unlock()

	now := time.Now()
	rec, ok := lp.attempts[email]
	if !ok {
		lp.attempts[email] = &attemptRecord{count: 1, firstFailed: now}
		slog.Debug("login failure recorded", "email", email, "count", 1)
		return false, 0
	}

	if now.Sub(rec.firstFailed) > lp.attemptWindow {
		rec.count = 1
		rec.firstFailed = now
		slog.Debug("login failure window reset", "email", email)
		return false, 0
	}

	rec.count++
	slog.Debug("login failure recorded", "email", email, "count", rec.count)

	if rec.count < lp.maxFailedAttempts {
		return false, 0
	}

	lockFor := lp.lockoutDuration
	for i := 0; i < rec.lockouts; i++ {
		lockFor *= 2
		if lockFor >= 24*time.Hour {
			lockFor = 24 * time.Hour
			break
		}
	}

	rec.lockedUntil = now.Add(lockFor)
	rec.lockouts++
	rec.count = 0

	slog.Warn("account locked after repeated login failures",
		"email", email,
		"lockouts", rec.lockouts,
		"duration", lockFor,
	)
	return true, lockFor
}

// RecordSuccessfulLogin drops all failure state for the account.
func (lp *LoginProtection) RecordSuccessfulLogin(email string) {
	lp.attemptsMu.Lock()
	delete(lp.attempts, email)
	lp.attemptsMu.Unlock()
	slog.Debug("login failures cleared", "email", email)
}

// GetRemainingAttempts returns how many more failures the account can
// absorb before lockout.
func (lp *LoginProtection) GetRemainingAttempts(email string) int {
	lp.attemptsMu.RLock()
	rec, ok := lp.attempts[email]
	lp.attemptsMu.RUnlock()

	if !ok || time.Since(rec.firstFailed) > lp.attemptWindow {
		return lp.maxFailedAttempts
	}
	if remaining := lp.maxFailedAttempts - rec.count; remaining > 0 {
		return remaining
	}
	return 0
}

func (lp *LoginProtection) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		lp.removeStaleEntries()
	}
}

func (lp *LoginProtection) removeStaleEntries() {
	if lp.ipLimiters.clearIfExceeds(10000) {
		slog.Info("reset login IP limiters, size cap reached")
	}

	now := time.Now()
	lp.attemptsMu.Lock()
	for email, rec := range lp.attempts {
		if now.After(rec.lockedUntil) && now.Sub(rec.firstFailed) > lp.attemptWindow {
			delete(lp.attempts, email)
		}
	}
	lp.attemptsMu.Unlock()
}

// Middleware rate-limits login POSTs by client IP. Non-POST requests
// pass through untouched.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := GetClientIP(r)
			if !lp.CheckIPRateLimit(ip) {
				slog.Warn("login rate limit exceeded", "ip", ip)
				writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts. Please wait a moment and try again.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
