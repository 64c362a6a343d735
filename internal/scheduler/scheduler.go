// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the application's periodic maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manarahtours/manarah/internal/geoip"
	"github.com/manarahtours/manarah/internal/store"
)

// AuditLogRetentionDays is how long persisted audit entries are kept.
const AuditLogRetentionDays = 90

// Scheduler handles scheduled maintenance tasks: purging soft-deleted
// newsletter subscribers past their retention window, trimming the
// audit log and refreshing the GeoIP database.
type Scheduler struct {
	db            *sql.DB
	cron          *cron.Cron
	logger        *slog.Logger
	geo           *geoip.Lookup
	retentionDays int
}

// New creates a new scheduler instance. geo may be nil when GeoIP is
// not configured. retentionDays controls how long soft-deleted
// subscribers are kept before the hard purge.
func New(db *sql.DB, logger *slog.Logger, geo *geoip.Lookup, retentionDays int) *Scheduler {
	return &Scheduler{
		db:            db,
		cron:          cron.New(),
		logger:        logger,
		geo:           geo,
		retentionDays: retentionDays,
	}
}

// Start registers the maintenance jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	// Nightly at 03:00: purge subscribers soft-deleted past retention.
	if _, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.purgeDeletedSubscribers(); err != nil {
			s.logger.Error("failed to purge deleted subscribers", "error", err)
		}
	}); err != nil {
		return err
	}

	// Nightly at 03:30: trim old audit log entries.
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.purgeAuditLog(); err != nil {
			s.logger.Error("failed to purge audit log", "error", err)
		}
	}); err != nil {
		return err
	}

	// Nightly at 04:00: pick up a refreshed GeoIP database file.
	if s.geo != nil {
		if _, err := s.cron.AddFunc("0 4 * * *", func() {
			if err := s.geo.Reload(); err != nil {
				s.logger.Error("failed to reload GeoIP database", "error", err)
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// purgeDeletedSubscribers hard-deletes subscribers whose soft-delete
// timestamp is older than the retention window.
func (s *Scheduler) purgeDeletedSubscribers() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	queries := store.New(s.db)
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	purged, err := queries.PurgeDeletedNewsletterSubscribers(ctx, cutoff)
	if err != nil {
		return err
	}

	if purged > 0 {
		s.logger.Info("purged deleted newsletter subscribers",
			"count", purged,
			"retention_days", s.retentionDays,
		)
	}
	return nil
}

// purgeAuditLog trims audit entries past the retention window.
func (s *Scheduler) purgeAuditLog() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	queries := store.New(s.db)
	cutoff := time.Now().AddDate(0, 0, -AuditLogRetentionDays)

	purged, err := queries.PurgeAuditLog(ctx, cutoff)
	if err != nil {
		return err
	}

	if purged > 0 {
		s.logger.Info("purged audit log entries", "count", purged)
	}
	return nil
}
