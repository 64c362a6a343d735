package store

import (
	"context"
	"database/sql"
	"time"
)

const createAuditLog = `-- name: CreateAuditLog :one
INSERT INTO audit_log (level, category, message, user_id, ip_address, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, level, category, message, user_id, ip_address, metadata, created_at
`

// CreateAuditLogParams holds the fields for CreateAuditLog.
type CreateAuditLogParams struct {
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	IpAddress sql.NullString
	Metadata  sql.NullString
	CreatedAt time.Time
}

// CreateAuditLog records an application event.
func (q *Queries) CreateAuditLog(ctx context.Context, arg CreateAuditLogParams) (AuditLog, error) {
	row := q.db.QueryRowContext(ctx, createAuditLog,
		arg.Level,
		arg.Category,
		arg.Message,
		arg.UserID,
		arg.IpAddress,
		arg.Metadata,
		arg.CreatedAt,
	)
	var i AuditLog
	err := row.Scan(
		&i.ID,
		&i.Level,
		&i.Category,
		&i.Message,
		&i.UserID,
		&i.IpAddress,
		&i.Metadata,
		&i.CreatedAt,
	)
	return i, err
}

const listAuditLog = `-- name: ListAuditLog :many
SELECT id, level, category, message, user_id, ip_address, metadata, created_at
FROM audit_log
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// ListAuditLogParams holds the fields for ListAuditLog.
type ListAuditLogParams struct {
	Limit  int64
	Offset int64
}

// ListAuditLog returns a page of audit entries, newest first.
func (q *Queries) ListAuditLog(ctx context.Context, arg ListAuditLogParams) ([]AuditLog, error) {
	rows, err := q.db.QueryContext(ctx, listAuditLog, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuditLog
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(
			&i.ID,
			&i.Level,
			&i.Category,
			&i.Message,
			&i.UserID,
			&i.IpAddress,
			&i.Metadata,
			&i.CreatedAt,
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

const listAuditLogByCategory = `-- name: ListAuditLogByCategory :many
SELECT id, level, category, message, user_id, ip_address, metadata, created_at
FROM audit_log
WHERE category = ?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// ListAuditLogByCategoryParams holds the fields for ListAuditLogByCategory.
type ListAuditLogByCategoryParams struct {
	Category string
	Limit    int64
	Offset   int64
}

// ListAuditLogByCategory returns a page of audit entries in one category.
func (q *Queries) ListAuditLogByCategory(ctx context.Context, arg ListAuditLogByCategoryParams) ([]AuditLog, error) {
	rows, err := q.db.QueryContext(ctx, listAuditLogByCategory, arg.Category, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuditLog
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(
			&i.ID,
			&i.Level,
			&i.Category,
			&i.Message,
			&i.UserID,
			&i.IpAddress,
			&i.Metadata,
			&i.CreatedAt,
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

const countAuditLog = `-- name: CountAuditLog :one
SELECT COUNT(*) FROM audit_log
`

// CountAuditLog returns the total number of audit entries.
func (q *Queries) CountAuditLog(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAuditLog)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countAuditLogByCategory = `-- name: CountAuditLogByCategory :one
SELECT COUNT(*) FROM audit_log WHERE category = ?
`

// CountAuditLogByCategory returns the number of audit entries in one category.
func (q *Queries) CountAuditLogByCategory(ctx context.Context, category string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAuditLogByCategory, category)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const purgeAuditLog = `-- name: PurgeAuditLog :execrows
DELETE FROM audit_log WHERE created_at < ?
`

// PurgeAuditLog removes entries older than the cutoff and reports how
// many were purged.
func (q *Queries) PurgeAuditLog(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, purgeAuditLog, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
