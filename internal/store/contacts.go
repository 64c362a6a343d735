package store

import (
	"context"
	"database/sql"
	"time"
)

const createContactMessage = `-- name: CreateContactMessage :one
INSERT INTO contact_messages (name, email, phone, subject, message, status, user_agent, ip_address, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, email, phone, subject, message, status, user_agent, ip_address, created_at, updated_at
`

// CreateContactMessageParams holds the fields for CreateContactMessage.
type CreateContactMessageParams struct {
	Name      string
	Email     string
	Phone     sql.NullString
	Subject   sql.NullString
	Message   string
	Status    string
	UserAgent sql.NullString
	IpAddress sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateContactMessage inserts a submission and returns the created row.
func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, createContactMessage,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Subject,
		arg.Message,
		arg.Status,
		arg.UserAgent,
		arg.IpAddress,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i ContactMessage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Subject,
		&i.Message,
		&i.Status,
		&i.UserAgent,
		&i.IpAddress,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getContactMessage = `-- name: GetContactMessage :one
SELECT id, name, email, phone, subject, message, status, user_agent, ip_address, created_at, updated_at
FROM contact_messages
WHERE id = ?
`

// GetContactMessage fetches a contact message by primary key.
func (q *Queries) GetContactMessage(ctx context.Context, id int64) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, getContactMessage, id)
	var i ContactMessage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Subject,
		&i.Message,
		&i.Status,
		&i.UserAgent,
		&i.IpAddress,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listContactMessages = `-- name: ListContactMessages :many
SELECT id, name, email, phone, subject, message, status, user_agent, ip_address, created_at, updated_at
FROM contact_messages
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// ListContactMessagesParams holds the fields for ListContactMessages.
type ListContactMessagesParams struct {
	Limit  int64
	Offset int64
}

// ListContactMessages returns a page of messages, newest first.
func (q *Queries) ListContactMessages(ctx context.Context, arg ListContactMessagesParams) ([]ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx, listContactMessages, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContactMessage
	for rows.Next() {
		var i ContactMessage
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Subject,
			&i.Message,
			&i.Status,
			&i.UserAgent,
			&i.IpAddress,
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

const listContactMessagesByStatus = `-- name: ListContactMessagesByStatus :many
SELECT id, name, email, phone, subject, message, status, user_agent, ip_address, created_at, updated_at
FROM contact_messages
WHERE status = ?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// ListContactMessagesByStatusParams holds the fields for ListContactMessagesByStatus.
type ListContactMessagesByStatusParams struct {
	Status string
	Limit  int64
	Offset int64
}

// ListContactMessagesByStatus returns a page of messages in one status, newest first.
func (q *Queries) ListContactMessagesByStatus(ctx context.Context, arg ListContactMessagesByStatusParams) ([]ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx, listContactMessagesByStatus, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContactMessage
	for rows.Next() {
		var i ContactMessage
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Subject,
			&i.Message,
			&i.Status,
			&i.UserAgent,
			&i.IpAddress,
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

const countContactMessages = `-- name: CountContactMessages :one
SELECT COUNT(*) FROM contact_messages
`

// CountContactMessages returns the total number of messages.
func (q *Queries) CountContactMessages(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countContactMessages)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countContactMessagesByStatus = `-- name: CountContactMessagesByStatus :one
SELECT COUNT(*) FROM contact_messages WHERE status = ?
`

// CountContactMessagesByStatus returns the number of messages in one status.
func (q *Queries) CountContactMessagesByStatus(ctx context.Context, status string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countContactMessagesByStatus, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const markContactMessageRead = `-- name: MarkContactMessageRead :exec
UPDATE contact_messages
SET status = 'read', updated_at = ?
WHERE id = ? AND status = 'new'
`

// MarkContactMessageReadParams holds the fields for MarkContactMessageRead.
type MarkContactMessageReadParams struct {
	UpdatedAt time.Time
	ID        int64
}

// MarkContactMessageRead moves a message from new to read. Messages in
// any other status are left untouched.
func (q *Queries) MarkContactMessageRead(ctx context.Context, arg MarkContactMessageReadParams) error {
	_, err := q.db.ExecContext(ctx, markContactMessageRead, arg.UpdatedAt, arg.ID)
	return err
}

const updateContactMessageStatus = `-- name: UpdateContactMessageStatus :one
UPDATE contact_messages
SET status = ?, updated_at = ?
WHERE id = ?
RETURNING id, name, email, phone, subject, message, status, user_agent, ip_address, created_at, updated_at
`

// UpdateContactMessageStatusParams holds the fields for UpdateContactMessageStatus.
type UpdateContactMessageStatusParams struct {
	Status    string
	UpdatedAt time.Time
	ID        int64
}

// UpdateContactMessageStatus sets a message status and returns the updated row.
func (q *Queries) UpdateContactMessageStatus(ctx context.Context, arg UpdateContactMessageStatusParams) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, updateContactMessageStatus, arg.Status, arg.UpdatedAt, arg.ID)
	var i ContactMessage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Subject,
		&i.Message,
		&i.Status,
		&i.UserAgent,
		&i.IpAddress,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteContactMessage = `-- name: DeleteContactMessage :exec
DELETE FROM contact_messages WHERE id = ?
`

// DeleteContactMessage removes a contact message.
func (q *Queries) DeleteContactMessage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteContactMessage, id)
	return err
}
