package store

import (
	"context"
	"time"
)

const createFaq = `-- name: CreateFaq :one
INSERT INTO faqs (question, answer, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, question, answer, is_active, sort_order, created_at, updated_at
`

// CreateFaqParams holds the fields for CreateFaq.
type CreateFaqParams struct {
	Question  string
	Answer    string
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateFaq inserts a new FAQ entry and returns the created row.
func (q *Queries) CreateFaq(ctx context.Context, arg CreateFaqParams) (Faq, error) {
	row := q.db.QueryRowContext(ctx, createFaq,
		arg.Question,
		arg.Answer,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Faq
	err := row.Scan(
		&i.ID,
		&i.Question,
		&i.Answer,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getFaq = `-- name: GetFaq :one
SELECT id, question, answer, is_active, sort_order, created_at, updated_at
FROM faqs
WHERE id = ?
`

// GetFaq fetches a FAQ entry by primary key.
func (q *Queries) GetFaq(ctx context.Context, id int64) (Faq, error) {
	row := q.db.QueryRowContext(ctx, getFaq, id)
	var i Faq
	err := row.Scan(
		&i.ID,
		&i.Question,
		&i.Answer,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listFaqs = `-- name: ListFaqs :many
SELECT id, question, answer, is_active, sort_order, created_at, updated_at
FROM faqs
ORDER BY sort_order, id
`

// ListFaqs returns all FAQ entries in display order.
func (q *Queries) ListFaqs(ctx context.Context) ([]Faq, error) {
	rows, err := q.db.QueryContext(ctx, listFaqs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Faq
	for rows.Next() {
		var i Faq
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
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

const listActiveFaqs = `-- name: ListActiveFaqs :many
SELECT id, question, answer, is_active, sort_order, created_at, updated_at
FROM faqs
WHERE is_active = 1
ORDER BY sort_order, id
`

// ListActiveFaqs returns active FAQ entries in display order.
func (q *Queries) ListActiveFaqs(ctx context.Context) ([]Faq, error) {
	rows, err := q.db.QueryContext(ctx, listActiveFaqs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Faq
	for rows.Next() {
		var i Faq
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
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

const nextFaqSortOrder = `-- name: NextFaqSortOrder :one
SELECT COALESCE(MAX(sort_order), -1) + 1 FROM faqs
`

// NextFaqSortOrder returns the sort order for a newly appended FAQ entry.
func (q *Queries) NextFaqSortOrder(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextFaqSortOrder)
	var next int64
	err := row.Scan(&next)
	return next, err
}

const updateFaq = `-- name: UpdateFaq :one
UPDATE faqs
SET question = ?, answer = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, question, answer, is_active, sort_order, created_at, updated_at
`

// UpdateFaqParams holds the fields for UpdateFaq.
type UpdateFaqParams struct {
	Question  string
	Answer    string
	IsActive  bool
	UpdatedAt time.Time
	ID        int64
}

// UpdateFaq modifies a FAQ entry and returns the updated row.
func (q *Queries) UpdateFaq(ctx context.Context, arg UpdateFaqParams) (Faq, error) {
	row := q.db.QueryRowContext(ctx, updateFaq,
		arg.Question,
		arg.Answer,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i Faq
	err := row.Scan(
		&i.ID,
		&i.Question,
		&i.Answer,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateFaqSortOrder = `-- name: UpdateFaqSortOrder :exec
UPDATE faqs
SET sort_order = ?, updated_at = ?
WHERE id = ?
`

// UpdateFaqSortOrderParams holds the fields for UpdateFaqSortOrder.
type UpdateFaqSortOrderParams struct {
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateFaqSortOrder sets the display position of a single FAQ entry.
func (q *Queries) UpdateFaqSortOrder(ctx context.Context, arg UpdateFaqSortOrderParams) error {
	_, err := q.db.ExecContext(ctx, updateFaqSortOrder, arg.SortOrder, arg.UpdatedAt, arg.ID)
	return err
}

const deleteFaq = `-- name: DeleteFaq :exec
DELETE FROM faqs WHERE id = ?
`

// DeleteFaq removes a FAQ entry.
func (q *Queries) DeleteFaq(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteFaq, id)
	return err
}
