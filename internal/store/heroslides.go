package store

import (
	"context"
	"database/sql"
	"time"
)

const createHeroSlide = `-- name: CreateHeroSlide :one
INSERT INTO hero_slides (title, subtitle, button_text, button_url, image_path, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, subtitle, button_text, button_url, image_path, is_active, sort_order, created_at, updated_at
`

// CreateHeroSlideParams holds the fields for CreateHeroSlide.
type CreateHeroSlideParams struct {
	Title      string
	Subtitle   sql.NullString
	ButtonText sql.NullString
	ButtonUrl  sql.NullString
	ImagePath  string
	IsActive   bool
	SortOrder  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateHeroSlide inserts a new hero slide and returns the created row.
func (q *Queries) CreateHeroSlide(ctx context.Context, arg CreateHeroSlideParams) (HeroSlide, error) {
	row := q.db.QueryRowContext(ctx, createHeroSlide,
		arg.Title,
		arg.Subtitle,
		arg.ButtonText,
		arg.ButtonUrl,
		arg.ImagePath,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i HeroSlide
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ButtonText,
		&i.ButtonUrl,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getHeroSlide = `-- name: GetHeroSlide :one
SELECT id, title, subtitle, button_text, button_url, image_path, is_active, sort_order, created_at, updated_at
FROM hero_slides
WHERE id = ?
`

// GetHeroSlide fetches a hero slide by primary key.
func (q *Queries) GetHeroSlide(ctx context.Context, id int64) (HeroSlide, error) {
	row := q.db.QueryRowContext(ctx, getHeroSlide, id)
	var i HeroSlide
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ButtonText,
		&i.ButtonUrl,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listHeroSlides = `-- name: ListHeroSlides :many
SELECT id, title, subtitle, button_text, button_url, image_path, is_active, sort_order, created_at, updated_at
FROM hero_slides
ORDER BY sort_order, id
`

// ListHeroSlides returns all hero slides in display order.
func (q *Queries) ListHeroSlides(ctx context.Context) ([]HeroSlide, error) {
	rows, err := q.db.QueryContext(ctx, listHeroSlides)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HeroSlide
	for rows.Next() {
		var i HeroSlide
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Subtitle,
			&i.ButtonText,
			&i.ButtonUrl,
			&i.ImagePath,
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

const listActiveHeroSlides = `-- name: ListActiveHeroSlides :many
SELECT id, title, subtitle, button_text, button_url, image_path, is_active, sort_order, created_at, updated_at
FROM hero_slides
WHERE is_active = 1
ORDER BY sort_order, id
`

// ListActiveHeroSlides returns active hero slides in display order.
func (q *Queries) ListActiveHeroSlides(ctx context.Context) ([]HeroSlide, error) {
	rows, err := q.db.QueryContext(ctx, listActiveHeroSlides)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HeroSlide
	for rows.Next() {
		var i HeroSlide
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Subtitle,
			&i.ButtonText,
			&i.ButtonUrl,
			&i.ImagePath,
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

const nextHeroSlideSortOrder = `-- name: NextHeroSlideSortOrder :one
SELECT COALESCE(MAX(sort_order), -1) + 1 FROM hero_slides
`

// NextHeroSlideSortOrder returns the sort order for a newly appended slide.
func (q *Queries) NextHeroSlideSortOrder(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextHeroSlideSortOrder)
	var next int64
	err := row.Scan(&next)
	return next, err
}

const updateHeroSlide = `-- name: UpdateHeroSlide :one
UPDATE hero_slides
SET title = ?, subtitle = ?, button_text = ?, button_url = ?, image_path = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, subtitle, button_text, button_url, image_path, is_active, sort_order, created_at, updated_at
`

// UpdateHeroSlideParams holds the fields for UpdateHeroSlide.
type UpdateHeroSlideParams struct {
	Title      string
	Subtitle   sql.NullString
	ButtonText sql.NullString
	ButtonUrl  sql.NullString
	ImagePath  string
	IsActive   bool
	UpdatedAt  time.Time
	ID         int64
}

// UpdateHeroSlide modifies a hero slide and returns the updated row.
func (q *Queries) UpdateHeroSlide(ctx context.Context, arg UpdateHeroSlideParams) (HeroSlide, error) {
	row := q.db.QueryRowContext(ctx, updateHeroSlide,
		arg.Title,
		arg.Subtitle,
		arg.ButtonText,
		arg.ButtonUrl,
		arg.ImagePath,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i HeroSlide
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Subtitle,
		&i.ButtonText,
		&i.ButtonUrl,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateHeroSlideSortOrder = `-- name: UpdateHeroSlideSortOrder :exec
UPDATE hero_slides
SET sort_order = ?, updated_at = ?
WHERE id = ?
`

// UpdateHeroSlideSortOrderParams holds the fields for UpdateHeroSlideSortOrder.
type UpdateHeroSlideSortOrderParams struct {
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateHeroSlideSortOrder sets the display position of a single slide.
func (q *Queries) UpdateHeroSlideSortOrder(ctx context.Context, arg UpdateHeroSlideSortOrderParams) error {
	_, err := q.db.ExecContext(ctx, updateHeroSlideSortOrder, arg.SortOrder, arg.UpdatedAt, arg.ID)
	return err
}

const deleteHeroSlide = `-- name: DeleteHeroSlide :exec
DELETE FROM hero_slides WHERE id = ?
`

// DeleteHeroSlide removes a hero slide.
func (q *Queries) DeleteHeroSlide(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteHeroSlide, id)
	return err
}
