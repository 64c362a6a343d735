package store

import (
	"context"
	"database/sql"
	"time"
)

const createNewsletterSubscriber = `-- name: CreateNewsletterSubscriber :one
INSERT INTO newsletter_subscribers (email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
`

// CreateNewsletterSubscriberParams holds the fields for CreateNewsletterSubscriber.
type CreateNewsletterSubscriberParams struct {
	Email            string
	Status           string
	UnsubscribeToken string
	IpAddress        sql.NullString
	CountryCode      sql.NullString
	Source           sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateNewsletterSubscriber inserts a subscription and returns the created row.
func (q *Queries) CreateNewsletterSubscriber(ctx context.Context, arg CreateNewsletterSubscriberParams) (NewsletterSubscriber, error) {
	row := q.db.QueryRowContext(ctx, createNewsletterSubscriber,
		arg.Email,
		arg.Status,
		arg.UnsubscribeToken,
		arg.IpAddress,
		arg.CountryCode,
		arg.Source,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i NewsletterSubscriber
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Status,
		&i.UnsubscribeToken,
		&i.IpAddress,
		&i.CountryCode,
		&i.Source,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.UnsubscribedAt,
		&i.DeletedAt,
	)
	return i, err
}

const getNewsletterSubscriber = `-- name: GetNewsletterSubscriber :one
SELECT id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
FROM newsletter_subscribers
WHERE id = ? AND deleted_at IS NULL
`

// GetNewsletterSubscriber fetches a subscriber by primary key.
func (q *Queries) GetNewsletterSubscriber(ctx context.Context, id int64) (NewsletterSubscriber, error) {
	row := q.db.QueryRowContext(ctx, getNewsletterSubscriber, id)
	var i NewsletterSubscriber
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Status,
		&i.UnsubscribeToken,
		&i.IpAddress,
		&i.CountryCode,
		&i.Source,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.UnsubscribedAt,
		&i.DeletedAt,
	)
	return i, err
}

const getNewsletterSubscriberByEmail = `-- name: GetNewsletterSubscriberByEmail :one
SELECT id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
FROM newsletter_subscribers
WHERE email = ? AND deleted_at IS NULL
`

// GetNewsletterSubscriberByEmail fetches a subscriber by email address.
func (q *Queries) GetNewsletterSubscriberByEmail(ctx context.Context, email string) (NewsletterSubscriber, error) {
	row := q.db.QueryRowContext(ctx, getNewsletterSubscriberByEmail, email)
	var i NewsletterSubscriber
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Status,
		&i.UnsubscribeToken,
		&i.IpAddress,
		&i.CountryCode,
		&i.Source,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.UnsubscribedAt,
		&i.DeletedAt,
	)
	return i, err
}

const getNewsletterSubscriberByToken = `-- name: GetNewsletterSubscriberByToken :one
SELECT id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
FROM newsletter_subscribers
WHERE unsubscribe_token = ? AND status = 'active' AND deleted_at IS NULL
`

// GetNewsletterSubscriberByToken fetches an active subscriber by
// unsubscribe token. A spent token returns sql.ErrNoRows, the same as a
// token that never existed.
func (q *Queries) GetNewsletterSubscriberByToken(ctx context.Context, token string) (NewsletterSubscriber, error) {
	row := q.db.QueryRowContext(ctx, getNewsletterSubscriberByToken, token)
	var i NewsletterSubscriber
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Status,
		&i.UnsubscribeToken,
		&i.IpAddress,
		&i.CountryCode,
		&i.Source,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.UnsubscribedAt,
		&i.DeletedAt,
	)
	return i, err
}

const listNewsletterSubscribers = `-- name: ListNewsletterSubscribers :many
SELECT id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
FROM newsletter_subscribers
WHERE deleted_at IS NULL
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// ListNewsletterSubscribersParams holds the fields for ListNewsletterSubscribers.
type ListNewsletterSubscribersParams struct {
	Limit  int64
	Offset int64
}

// ListNewsletterSubscribers returns a page of subscribers, newest first.
func (q *Queries) ListNewsletterSubscribers(ctx context.Context, arg ListNewsletterSubscribersParams) ([]NewsletterSubscriber, error) {
	rows, err := q.db.QueryContext(ctx, listNewsletterSubscribers, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NewsletterSubscriber
	for rows.Next() {
		var i NewsletterSubscriber
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Status,
			&i.UnsubscribeToken,
			&i.IpAddress,
			&i.CountryCode,
			&i.Source,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.UnsubscribedAt,
			&i.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const searchNewsletterSubscribers = `-- name: SearchNewsletterSubscribers :many
SELECT id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
FROM newsletter_subscribers
WHERE deleted_at IS NULL AND email LIKE '%' || ? || '%'
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// SearchNewsletterSubscribersParams holds the fields for SearchNewsletterSubscribers.
type SearchNewsletterSubscribersParams struct {
	Query  string
	Limit  int64
	Offset int64
}

// SearchNewsletterSubscribers returns subscribers whose email contains the query.
func (q *Queries) SearchNewsletterSubscribers(ctx context.Context, arg SearchNewsletterSubscribersParams) ([]NewsletterSubscriber, error) {
	rows, err := q.db.QueryContext(ctx, searchNewsletterSubscribers, arg.Query, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NewsletterSubscriber
	for rows.Next() {
		var i NewsletterSubscriber
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Status,
			&i.UnsubscribeToken,
			&i.IpAddress,
			&i.CountryCode,
			&i.Source,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.UnsubscribedAt,
			&i.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countNewsletterSubscribers = `-- name: CountNewsletterSubscribers :one
SELECT COUNT(*) FROM newsletter_subscribers WHERE deleted_at IS NULL
`

// CountNewsletterSubscribers returns the number of non-deleted subscribers.
func (q *Queries) CountNewsletterSubscribers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countNewsletterSubscribers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countSearchNewsletterSubscribers = `-- name: CountSearchNewsletterSubscribers :one
SELECT COUNT(*) FROM newsletter_subscribers
WHERE deleted_at IS NULL AND email LIKE '%' || ? || '%'
`

// CountSearchNewsletterSubscribers returns the number of non-deleted
// subscribers whose email contains the query.
func (q *Queries) CountSearchNewsletterSubscribers(ctx context.Context, query string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSearchNewsletterSubscribers, query)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const reactivateNewsletterSubscriber = `-- name: ReactivateNewsletterSubscriber :one
UPDATE newsletter_subscribers
SET status = 'active', unsubscribe_token = ?, unsubscribed_at = NULL, updated_at = ?
WHERE id = ?
RETURNING id, email, status, unsubscribe_token, ip_address, country_code, source, created_at, updated_at, unsubscribed_at, deleted_at
`

// ReactivateNewsletterSubscriberParams holds the fields for ReactivateNewsletterSubscriber.
type ReactivateNewsletterSubscriberParams struct {
	UnsubscribeToken string
	UpdatedAt        time.Time
	ID               int64
}

// ReactivateNewsletterSubscriber restores an unsubscribed address with a
// fresh token.
func (q *Queries) ReactivateNewsletterSubscriber(ctx context.Context, arg ReactivateNewsletterSubscriberParams) (NewsletterSubscriber, error) {
	row := q.db.QueryRowContext(ctx, reactivateNewsletterSubscriber, arg.UnsubscribeToken, arg.UpdatedAt, arg.ID)
	var i NewsletterSubscriber
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Status,
		&i.UnsubscribeToken,
		&i.IpAddress,
		&i.CountryCode,
		&i.Source,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.UnsubscribedAt,
		&i.DeletedAt,
	)
	return i, err
}

const unsubscribeNewsletterSubscriber = `-- name: UnsubscribeNewsletterSubscriber :exec
UPDATE newsletter_subscribers
SET status = 'unsubscribed', unsubscribed_at = ?, updated_at = ?
WHERE id = ? AND status = 'active'
`

// UnsubscribeNewsletterSubscriberParams holds the fields for UnsubscribeNewsletterSubscriber.
type UnsubscribeNewsletterSubscriberParams struct {
	UnsubscribedAt sql.NullTime
	UpdatedAt      time.Time
	ID             int64
}

// UnsubscribeNewsletterSubscriber marks an active subscriber as
// unsubscribed. Already unsubscribed rows are left untouched.
func (q *Queries) UnsubscribeNewsletterSubscriber(ctx context.Context, arg UnsubscribeNewsletterSubscriberParams) error {
	_, err := q.db.ExecContext(ctx, unsubscribeNewsletterSubscriber, arg.UnsubscribedAt, arg.UpdatedAt, arg.ID)
	return err
}

const softDeleteNewsletterSubscriber = `-- name: SoftDeleteNewsletterSubscriber :exec
UPDATE newsletter_subscribers
SET deleted_at = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL
`

// SoftDeleteNewsletterSubscriberParams holds the fields for SoftDeleteNewsletterSubscriber.
type SoftDeleteNewsletterSubscriberParams struct {
	DeletedAt sql.NullTime
	UpdatedAt time.Time
	ID        int64
}

// SoftDeleteNewsletterSubscriber hides a subscriber from all queries
// until the retention purge removes the row.
func (q *Queries) SoftDeleteNewsletterSubscriber(ctx context.Context, arg SoftDeleteNewsletterSubscriberParams) error {
	_, err := q.db.ExecContext(ctx, softDeleteNewsletterSubscriber, arg.DeletedAt, arg.UpdatedAt, arg.ID)
	return err
}

const purgeDeletedNewsletterSubscribers = `-- name: PurgeDeletedNewsletterSubscribers :execrows
DELETE FROM newsletter_subscribers
WHERE deleted_at IS NOT NULL AND deleted_at < ?
`

// PurgeDeletedNewsletterSubscribers permanently removes rows soft
// deleted before the cutoff and reports how many were purged.
func (q *Queries) PurgeDeletedNewsletterSubscribers(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, purgeDeletedNewsletterSubscribers, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
