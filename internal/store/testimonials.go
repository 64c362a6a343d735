package store

import (
	"context"
	"database/sql"
	"time"
)

const createTestimonial = `-- name: CreateTestimonial :one
INSERT INTO testimonials (name, country, rating, content, image_path, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, country, rating, content, image_path, is_active, sort_order, created_at, updated_at
`

// CreateTestimonialParams holds the fields for CreateTestimonial.
type CreateTestimonialParams struct {
	Name      string
	Country   sql.NullString
	Rating    int64
	Content   string
	ImagePath sql.NullString
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTestimonial inserts a new testimonial and returns the created row.
func (q *Queries) CreateTestimonial(ctx context.Context, arg CreateTestimonialParams) (Testimonial, error) {
	row := q.db.QueryRowContext(ctx, createTestimonial,
		arg.Name,
		arg.Country,
		arg.Rating,
		arg.Content,
		arg.ImagePath,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Testimonial
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Country,
		&i.Rating,
		&i.Content,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTestimonial = `-- name: GetTestimonial :one
SELECT id, name, country, rating, content, image_path, is_active, sort_order, created_at, updated_at
FROM testimonials
WHERE id = ?
`

// GetTestimonial fetches a testimonial by primary key.
func (q *Queries) GetTestimonial(ctx context.Context, id int64) (Testimonial, error) {
	row := q.db.QueryRowContext(ctx, getTestimonial, id)
	var i Testimonial
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Country,
		&i.Rating,
		&i.Content,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTestimonials = `-- name: ListTestimonials :many
SELECT id, name, country, rating, content, image_path, is_active, sort_order, created_at, updated_at
FROM testimonials
ORDER BY sort_order, id
`

// ListTestimonials returns all testimonials in display order.
func (q *Queries) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, listTestimonials)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Testimonial
	for rows.Next() {
		var i Testimonial
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Country,
			&i.Rating,
			&i.Content,
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

const listActiveTestimonials = `-- name: ListActiveTestimonials :many
SELECT id, name, country, rating, content, image_path, is_active, sort_order, created_at, updated_at
FROM testimonials
WHERE is_active = 1
ORDER BY sort_order, id
LIMIT ? OFFSET ?
`

// ListActiveTestimonialsParams holds the fields for ListActiveTestimonials.
type ListActiveTestimonialsParams struct {
	Limit  int64
	Offset int64
}

// ListActiveTestimonials returns a page of active testimonials in display order.
func (q *Queries) ListActiveTestimonials(ctx context.Context, arg ListActiveTestimonialsParams) ([]Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, listActiveTestimonials, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Testimonial
	for rows.Next() {
		var i Testimonial
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Country,
			&i.Rating,
			&i.Content,
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

const countActiveTestimonials = `-- name: CountActiveTestimonials :one
SELECT COUNT(*) FROM testimonials WHERE is_active = 1
`

// CountActiveTestimonials returns the number of active testimonials.
func (q *Queries) CountActiveTestimonials(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countActiveTestimonials)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const nextTestimonialSortOrder = `-- name: NextTestimonialSortOrder :one
SELECT COALESCE(MAX(sort_order), -1) + 1 FROM testimonials
`

// NextTestimonialSortOrder returns the sort order for a newly appended testimonial.
func (q *Queries) NextTestimonialSortOrder(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextTestimonialSortOrder)
	var next int64
	err := row.Scan(&next)
	return next, err
}

const updateTestimonial = `-- name: UpdateTestimonial :one
UPDATE testimonials
SET name = ?, country = ?, rating = ?, content = ?, image_path = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, name, country, rating, content, image_path, is_active, sort_order, created_at, updated_at
`

// UpdateTestimonialParams holds the fields for UpdateTestimonial.
type UpdateTestimonialParams struct {
	Name      string
	Country   sql.NullString
	Rating    int64
	Content   string
	ImagePath sql.NullString
	IsActive  bool
	UpdatedAt time.Time
	ID        int64
}

// UpdateTestimonial modifies a testimonial and returns the updated row.
func (q *Queries) UpdateTestimonial(ctx context.Context, arg UpdateTestimonialParams) (Testimonial, error) {
	row := q.db.QueryRowContext(ctx, updateTestimonial,
		arg.Name,
		arg.Country,
		arg.Rating,
		arg.Content,
		arg.ImagePath,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i Testimonial
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Country,
		&i.Rating,
		&i.Content,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateTestimonialSortOrder = `-- name: UpdateTestimonialSortOrder :exec
UPDATE testimonials
SET sort_order = ?, updated_at = ?
WHERE id = ?
`

// UpdateTestimonialSortOrderParams holds the fields for UpdateTestimonialSortOrder.
type UpdateTestimonialSortOrderParams struct {
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateTestimonialSortOrder sets the display position of a single testimonial.
func (q *Queries) UpdateTestimonialSortOrder(ctx context.Context, arg UpdateTestimonialSortOrderParams) error {
	_, err := q.db.ExecContext(ctx, updateTestimonialSortOrder, arg.SortOrder, arg.UpdatedAt, arg.ID)
	return err
}

const deleteTestimonial = `-- name: DeleteTestimonial :exec
DELETE FROM testimonials WHERE id = ?
`

// DeleteTestimonial removes a testimonial.
func (q *Queries) DeleteTestimonial(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTestimonial, id)
	return err
}
