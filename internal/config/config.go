// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"MANARAH_DB_PATH" envDefault:"./data/manarah.db"`
	SessionSecret string `env:"MANARAH_SESSION_SECRET,required"`
	ServerHost    string `env:"MANARAH_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"MANARAH_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"MANARAH_ENV" envDefault:"development"`

	LogLevel   string `env:"MANARAH_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"MANARAH_UPLOADS_DIR" envDefault:"./uploads"`
	BaseURL    string `env:"MANARAH_BASE_URL" envDefault:"http://localhost:8080"`

	// Bootstrap account created on first start
	AdminEmail    string `env:"MANARAH_ADMIN_EMAIL"`
	AdminPassword string `env:"MANARAH_ADMIN_PASSWORD"`

	// Cache configuration
	RedisURL     string `env:"MANARAH_REDIS_URL"`                          // Optional Redis URL for distributed caching
	CachePrefix  string `env:"MANARAH_CACHE_PREFIX" envDefault:"manarah:"` // Redis key prefix
	CacheTTL     int    `env:"MANARAH_CACHE_TTL" envDefault:"300"`         // Default cache TTL in seconds
	CacheMaxSize int    `env:"MANARAH_CACHE_MAX_SIZE" envDefault:"10000"`  // Max memory cache entries

	// GeoIP configuration
	GeoIPDBPath string `env:"MANARAH_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// SMTP configuration for contact form notifications
	SMTPHost        string `env:"MANARAH_SMTP_HOST"`
	SMTPPort        int    `env:"MANARAH_SMTP_PORT" envDefault:"587"`
	SMTPUser        string `env:"MANARAH_SMTP_USER"`
	SMTPPassword    string `env:"MANARAH_SMTP_PASSWORD"`
	SMTPFrom        string `env:"MANARAH_SMTP_FROM"`
	ContactNotifyTo string `env:"MANARAH_CONTACT_NOTIFY_TO"` // Inbox for contact form notifications

	// NewsletterRetentionDays controls how long soft deleted subscribers
	// are kept before the nightly purge removes them.
	NewsletterRetentionDays int `env:"MANARAH_NEWSLETTER_RETENTION_DAYS" envDefault:"30"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// MailEnabled returns true if SMTP delivery is configured.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.ContactNotifyTo != ""
}

// SMTPAddr returns the SMTP server address in host:port format.
func (c Config) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.SMTPHost, c.SMTPPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("MANARAH_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("MANARAH_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("MANARAH_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.NewsletterRetentionDays < 1 {
		return nil, fmt.Errorf("MANARAH_NEWSLETTER_RETENTION_DAYS must be at least 1, got %d",
			cfg.NewsletterRetentionDays)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
