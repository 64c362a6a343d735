// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/testutil"
	"github.com/manarahtours/manarah/internal/util"
)

func newsletterTestQueries(t *testing.T) *store.Queries {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	return store.New(db)
}

func createSubscriber(t *testing.T, q *store.Queries, email string) store.NewsletterSubscriber {
	t.Helper()
	token, err := util.GenerateToken(model.UnsubscribeTokenLength)
	require.NoError(t, err)

	now := time.Now()
	sub, err := q.CreateNewsletterSubscriber(context.Background(), store.CreateNewsletterSubscriberParams{
		Email:            email,
		Status:           model.SubscriberStatusActive,
		UnsubscribeToken: token,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	require.NoError(t, err)
	return sub
}

func TestNewsletterSubscriberLifecycle(t *testing.T) {
	q := newsletterTestQueries(t)
	ctx := context.Background()

	sub := createSubscriber(t, q, "reader@example.com")
	assert.Equal(t, model.SubscriberStatusActive, sub.Status)

	byToken, err := q.GetNewsletterSubscriberByToken(ctx, sub.UnsubscribeToken)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, byToken.ID)

	now := time.Now()
	require.NoError(t, q.UnsubscribeNewsletterSubscriber(ctx, store.UnsubscribeNewsletterSubscriberParams{
		UnsubscribedAt: sql.NullTime{Time: now, Valid: true},
		UpdatedAt:      now,
		ID:             sub.ID,
	}))

	after, err := q.GetNewsletterSubscriber(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriberStatusUnsubscribed, after.Status)
	assert.True(t, after.UnsubscribedAt.Valid)

	// The token only resolves while the subscription is active.
	_, err = q.GetNewsletterSubscriberByToken(ctx, sub.UnsubscribeToken)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestNewsletterUnsubscribeOnlyTouchesActive(t *testing.T) {
	q := newsletterTestQueries(t)
	ctx := context.Background()

	sub := createSubscriber(t, q, "reader@example.com")

	now := time.Now()
	require.NoError(t, q.UnsubscribeNewsletterSubscriber(ctx, store.UnsubscribeNewsletterSubscriberParams{
		UnsubscribedAt: sql.NullTime{Time: now, Valid: true},
		UpdatedAt:      now,
		ID:             sub.ID,
	}))

	first, err := q.GetNewsletterSubscriber(ctx, sub.ID)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, q.UnsubscribeNewsletterSubscriber(ctx, store.UnsubscribeNewsletterSubscriberParams{
		UnsubscribedAt: sql.NullTime{Time: later, Valid: true},
		UpdatedAt:      later,
		ID:             sub.ID,
	}))

	second, err := q.GetNewsletterSubscriber(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, first.UnsubscribedAt.Time.Unix(), second.UnsubscribedAt.Time.Unix(),
		"repeat unsubscribe must not move the timestamp")
}

func TestNewsletterReactivateRotatesToken(t *testing.T) {
	q := newsletterTestQueries(t)
	ctx := context.Background()

	sub := createSubscriber(t, q, "reader@example.com")

	now := time.Now()
	require.NoError(t, q.UnsubscribeNewsletterSubscriber(ctx, store.UnsubscribeNewsletterSubscriberParams{
		UnsubscribedAt: sql.NullTime{Time: now, Valid: true},
		UpdatedAt:      now,
		ID:             sub.ID,
	}))

	fresh, err := util.GenerateToken(model.UnsubscribeTokenLength)
	require.NoError(t, err)

	reactivated, err := q.ReactivateNewsletterSubscriber(ctx, store.ReactivateNewsletterSubscriberParams{
		UnsubscribeToken: fresh,
		UpdatedAt:        time.Now(),
		ID:               sub.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.SubscriberStatusActive, reactivated.Status)
	assert.Equal(t, fresh, reactivated.UnsubscribeToken)
	assert.False(t, reactivated.UnsubscribedAt.Valid)
}

func TestNewsletterSoftDeleteAndPurge(t *testing.T) {
	q := newsletterTestQueries(t)
	ctx := context.Background()

	keep := createSubscriber(t, q, "keep@example.com")
	purge := createSubscriber(t, q, "purge@example.com")

	old := time.Now().Add(-40 * 24 * time.Hour)
	require.NoError(t, q.SoftDeleteNewsletterSubscriber(ctx, store.SoftDeleteNewsletterSubscriberParams{
		DeletedAt: sql.NullTime{Time: old, Valid: true},
		UpdatedAt: old,
		ID:        purge.ID,
	}))

	// Soft-deleted rows disappear from listings immediately.
	count, err := q.CountNewsletterSubscribers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	removed, err := q.PurgeDeletedNewsletterSubscribers(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, err = q.GetNewsletterSubscriber(ctx, purge.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = q.GetNewsletterSubscriber(ctx, keep.ID)
	assert.NoError(t, err)
}

func TestNewsletterSearch(t *testing.T) {
	q := newsletterTestQueries(t)
	ctx := context.Background()

	createSubscriber(t, q, "amina@example.com")
	createSubscriber(t, q, "youssef@example.org")

	count, err := q.CountSearchNewsletterSubscribers(ctx, "example.org")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	rows, err := q.SearchNewsletterSubscribers(ctx, store.SearchNewsletterSubscribersParams{
		Query:  "example.org",
		Limit:  10,
		Offset: 0,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "youssef@example.org", rows[0].Email)
}
