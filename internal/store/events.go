package store

import (
	"context"
	"database/sql"
	"time"
)

const createEvent = `-- name: CreateEvent :one
INSERT INTO events (title, description, location, starts_at, price, is_available, image_path, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, description, location, starts_at, price, is_available, image_path, sort_order, created_at, updated_at
`

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	Title       string
	Description string
	Location    sql.NullString
	StartsAt    sql.NullTime
	Price       float64
	IsAvailable bool
	ImagePath   sql.NullString
	SortOrder   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateEvent inserts a new event and returns the created row.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, createEvent,
		arg.Title,
		arg.Description,
		arg.Location,
		arg.StartsAt,
		arg.Price,
		arg.IsAvailable,
		arg.ImagePath,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Event
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.StartsAt,
		&i.Price,
		&i.IsAvailable,
		&i.ImagePath,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEvent = `-- name: GetEvent :one
SELECT id, title, description, location, starts_at, price, is_available, image_path, sort_order, created_at, updated_at
FROM events
WHERE id = ?
`

// GetEvent fetches an event by primary key.
func (q *Queries) GetEvent(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRowContext(ctx, getEvent, id)
	var i Event
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.StartsAt,
		&i.Price,
		&i.IsAvailable,
		&i.ImagePath,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listEvents = `-- name: ListEvents :many
SELECT id, title, description, location, starts_at, price, is_available, image_path, sort_order, created_at, updated_at
FROM events
ORDER BY sort_order, id
`

// ListEvents returns all events in display order.
func (q *Queries) ListEvents(ctx context.Context) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Event
	for rows.Next() {
		var i Event
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Location,
			&i.StartsAt,
			&i.Price,
			&i.IsAvailable,
			&i.ImagePath,
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

const listAvailableEvents = `-- name: ListAvailableEvents :many
SELECT id, title, description, location, starts_at, price, is_available, image_path, sort_order, created_at, updated_at
FROM events
WHERE is_available = 1
ORDER BY sort_order, id
`

// ListAvailableEvents returns bookable events in display order.
func (q *Queries) ListAvailableEvents(ctx context.Context) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listAvailableEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Event
	for rows.Next() {
		var i Event
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Location,
			&i.StartsAt,
			&i.Price,
			&i.IsAvailable,
			&i.ImagePath,
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

const nextEventSortOrder = `-- name: NextEventSortOrder :one
SELECT COALESCE(MAX(sort_order), -1) + 1 FROM events
`

// NextEventSortOrder returns the sort order for a newly appended event.
func (q *Queries) NextEventSortOrder(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextEventSortOrder)
	var next int64
	err := row.Scan(&next)
	return next, err
}

const updateEvent = `-- name: UpdateEvent :one
UPDATE events
SET title = ?, description = ?, location = ?, starts_at = ?, price = ?, is_available = ?, image_path = ?, updated_at = ?
WHERE id = ?
RETURNING id, title, description, location, starts_at, price, is_available, image_path, sort_order, created_at, updated_at
`

// UpdateEventParams holds the fields for UpdateEvent.
type UpdateEventParams struct {
	Title       string
	Description string
	Location    sql.NullString
	StartsAt    sql.NullTime
	Price       float64
	IsAvailable bool
	ImagePath   sql.NullString
	UpdatedAt   time.Time
	ID          int64
}

// UpdateEvent modifies an event and returns the updated row.
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, updateEvent,
		arg.Title,
		arg.Description,
		arg.Location,
		arg.StartsAt,
		arg.Price,
		arg.IsAvailable,
		arg.ImagePath,
		arg.UpdatedAt,
		arg.ID,
	)
	var i Event
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Location,
		&i.StartsAt,
		&i.Price,
		&i.IsAvailable,
		&i.ImagePath,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateEventSortOrder = `-- name: UpdateEventSortOrder :exec
UPDATE events
SET sort_order = ?, updated_at = ?
WHERE id = ?
`

// UpdateEventSortOrderParams holds the fields for UpdateEventSortOrder.
type UpdateEventSortOrderParams struct {
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateEventSortOrder sets the display position of a single event.
func (q *Queries) UpdateEventSortOrder(ctx context.Context, arg UpdateEventSortOrderParams) error {
	_, err := q.db.ExecContext(ctx, updateEventSortOrder, arg.SortOrder, arg.UpdatedAt, arg.ID)
	return err
}

const deleteEvent = `-- name: DeleteEvent :exec
DELETE FROM events WHERE id = ?
`

// DeleteEvent removes an event.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteEvent, id)
	return err
}
