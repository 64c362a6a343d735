package store

import (
	"context"
	"database/sql"
	"time"
)

const createSocialMedium = `-- name: CreateSocialMedium :one
INSERT INTO social_media (name, url, icon_path, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, url, icon_path, is_active, sort_order, created_at, updated_at
`

// CreateSocialMediumParams holds the fields for CreateSocialMedium.
type CreateSocialMediumParams struct {
	Name      string
	Url       string
	IconPath  sql.NullString
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSocialMedium inserts a new social media link and returns the created row.
func (q *Queries) CreateSocialMedium(ctx context.Context, arg CreateSocialMediumParams) (SocialMedium, error) {
	row := q.db.QueryRowContext(ctx, createSocialMedium,
		arg.Name,
		arg.Url,
		arg.IconPath,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i SocialMedium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Url,
		&i.IconPath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getSocialMedium = `-- name: GetSocialMedium :one
SELECT id, name, url, icon_path, is_active, sort_order, created_at, updated_at
FROM social_media
WHERE id = ?
`

// GetSocialMedium fetches a social media link by primary key.
func (q *Queries) GetSocialMedium(ctx context.Context, id int64) (SocialMedium, error) {
	row := q.db.QueryRowContext(ctx, getSocialMedium, id)
	var i SocialMedium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Url,
		&i.IconPath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSocialMedia = `-- name: ListSocialMedia :many
SELECT id, name, url, icon_path, is_active, sort_order, created_at, updated_at
FROM social_media
ORDER BY sort_order, id
`

// ListSocialMedia returns all social media links in display order.
func (q *Queries) ListSocialMedia(ctx context.Context) ([]SocialMedium, error) {
	rows, err := q.db.QueryContext(ctx, listSocialMedia)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SocialMedium
	for rows.Next() {
		var i SocialMedium
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Url,
			&i.IconPath,
			&i.IsActive,
			&i.SortOrder,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const listActiveSocialMedia = `-- name: ListActiveSocialMedia :many
SELECT id, name, url, icon_path, is_active, sort_order, created_at, updated_at
FROM social_media
WHERE is_active = 1
ORDER BY sort_order, id
`

// ListActiveSocialMedia returns active social media links in display order.
func (q *Queries) ListActiveSocialMedia(ctx context.Context) ([]SocialMedium, error) {
	rows, err := q.db.QueryContext(ctx, listActiveSocialMedia)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SocialMedium
	for rows.Next() {
		var i SocialMedium
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Url,
			&i.IconPath,
			&i.IsActive,
			&i.SortOrder,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const nextSocialMediumSortOrder = `-- name: NextSocialMediumSortOrder :one
SELECT COALESCE(MAX(sort_order), -1) + 1 FROM social_media
`

// NextSocialMediumSortOrder returns the sort order for a newly appended link.
func (q *Queries) NextSocialMediumSortOrder(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextSocialMediumSortOrder)
	var next int64
	err := row.Scan(&next)
	return next, err
}

const updateSocialMedium = `-- name: UpdateSocialMedium :one
UPDATE social_media
SET name = ?, url = ?, icon_path = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, name, url, icon_path, is_active, sort_order, created_at, updated_at
`

// UpdateSocialMediumParams holds the fields for UpdateSocialMedium.
type UpdateSocialMediumParams struct {
	Name      string
	Url       string
	IconPath  sql.NullString
	IsActive  bool
	UpdatedAt time.Time
	ID        int64
}

// UpdateSocialMedium modifies a social media link and returns the updated row.
func (q *Queries) UpdateSocialMedium(ctx context.Context, arg UpdateSocialMediumParams) (SocialMedium, error) {
	row := q.db.QueryRowContext(ctx, updateSocialMedium,
		arg.Name,
		arg.Url,
		arg.IconPath,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i SocialMedium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Url,
		&i.IconPath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateSocialMediumSortOrder = `-- name: UpdateSocialMediumSortOrder :exec
UPDATE social_media
SET sort_order = ?, updated_at = ?
WHERE id = ?
`

// UpdateSocialMediumSortOrderParams holds the fields for UpdateSocialMediumSortOrder.
type UpdateSocialMediumSortOrderParams struct {
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateSocialMediumSortOrder sets the display position of a single link.
func (q *Queries) UpdateSocialMediumSortOrder(ctx context.Context, arg UpdateSocialMediumSortOrderParams) error {
	_, err := q.db.ExecContext(ctx, updateSocialMediumSortOrder, arg.SortOrder, arg.UpdatedAt, arg.ID)
	return err
}

const deleteSocialMedium = `-- name: DeleteSocialMedium :exec
DELETE FROM social_media WHERE id = ?
`

// DeleteSocialMedium removes a social media link.
func (q *Queries) DeleteSocialMedium(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSocialMedium, id)
	return err
}
