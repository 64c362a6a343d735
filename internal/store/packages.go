package store

import (
	"context"
	"database/sql"
	"time"
)

const createUmrahPackage = `-- name: CreateUmrahPackage :one
INSERT INTO umrah_packages (name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at
`

// CreateUmrahPackageParams holds the fields for CreateUmrahPackage.
type CreateUmrahPackageParams struct {
	Name          string
	Slug          string
	Description   string
	Price         float64
	DurationDays  int64
	DepartureCity sql.NullString
	ImagePath     sql.NullString
	IsActive      bool
	SortOrder     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateUmrahPackage inserts a new package and returns the created row.
func (q *Queries) CreateUmrahPackage(ctx context.Context, arg CreateUmrahPackageParams) (UmrahPackage, error) {
	row := q.db.QueryRowContext(ctx, createUmrahPackage,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.Price,
		arg.DurationDays,
		arg.DepartureCity,
		arg.ImagePath,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i UmrahPackage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Price,
		&i.DurationDays,
		&i.DepartureCity,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUmrahPackage = `-- name: GetUmrahPackage :one
SELECT id, name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at
FROM umrah_packages
WHERE id = ?
`

// GetUmrahPackage fetches a package by primary key.
func (q *Queries) GetUmrahPackage(ctx context.Context, id int64) (UmrahPackage, error) {
	row := q.db.QueryRowContext(ctx, getUmrahPackage, id)
	var i UmrahPackage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Price,
		&i.DurationDays,
		&i.DepartureCity,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUmrahPackageBySlug = `-- name: GetUmrahPackageBySlug :one
SELECT id, name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at
FROM umrah_packages
WHERE slug = ?
`

// GetUmrahPackageBySlug fetches a package by its URL slug.
func (q *Queries) GetUmrahPackageBySlug(ctx context.Context, slug string) (UmrahPackage, error) {
	row := q.db.QueryRowContext(ctx, getUmrahPackageBySlug, slug)
	var i UmrahPackage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Price,
		&i.DurationDays,
		&i.DepartureCity,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countUmrahPackageBySlug = `-- name: CountUmrahPackageBySlug :one
SELECT COUNT(*) FROM umrah_packages WHERE slug = ? AND id != ?
`

// CountUmrahPackageBySlugParams holds the fields for CountUmrahPackageBySlug.
type CountUmrahPackageBySlugParams struct {
	Slug string
	ID   int64
}

// CountUmrahPackageBySlug counts packages other than ID using slug.
// Pass ID 0 when checking a new package.
func (q *Queries) CountUmrahPackageBySlug(ctx context.Context, arg CountUmrahPackageBySlugParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUmrahPackageBySlug, arg.Slug, arg.ID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listUmrahPackages = `-- name: ListUmrahPackages :many
SELECT id, name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at
FROM umrah_packages
ORDER BY sort_order, id
`

// ListUmrahPackages returns all packages in display order.
func (q *Queries) ListUmrahPackages(ctx context.Context) ([]UmrahPackage, error) {
	rows, err := q.db.QueryContext(ctx, listUmrahPackages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UmrahPackage
	for rows.Next() {
		var i UmrahPackage
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Slug,
			&i.Description,
			&i.Price,
			&i.DurationDays,
			&i.DepartureCity,
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

const listActiveUmrahPackages = `-- name: ListActiveUmrahPackages :many
SELECT id, name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at
FROM umrah_packages
WHERE is_active = 1
ORDER BY sort_order, id
LIMIT ? OFFSET ?
`

// ListActiveUmrahPackagesParams holds the fields for ListActiveUmrahPackages.
type ListActiveUmrahPackagesParams struct {
	Limit  int64
	Offset int64
}

// ListActiveUmrahPackages returns a page of active packages in display order.
func (q *Queries) ListActiveUmrahPackages(ctx context.Context, arg ListActiveUmrahPackagesParams) ([]UmrahPackage, error) {
	rows, err := q.db.QueryContext(ctx, listActiveUmrahPackages, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UmrahPackage
	for rows.Next() {
		var i UmrahPackage
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Slug,
			&i.Description,
			&i.Price,
			&i.DurationDays,
			&i.DepartureCity,
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

const countActiveUmrahPackages = `-- name: CountActiveUmrahPackages :one
SELECT COUNT(*) FROM umrah_packages WHERE is_active = 1
`

// CountActiveUmrahPackages returns the number of active packages.
func (q *Queries) CountActiveUmrahPackages(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countActiveUmrahPackages)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const nextUmrahPackageSortOrder = `-- name: NextUmrahPackageSortOrder :one
SELECT COALESCE(MAX(sort_order), -1) + 1 FROM umrah_packages
`

// NextUmrahPackageSortOrder returns the sort order for a newly appended package.
func (q *Queries) NextUmrahPackageSortOrder(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextUmrahPackageSortOrder)
	var next int64
	err := row.Scan(&next)
	return next, err
}

const updateUmrahPackage = `-- name: UpdateUmrahPackage :one
UPDATE umrah_packages
SET name = ?, slug = ?, description = ?, price = ?, duration_days = ?, departure_city = ?, image_path = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING id, name, slug, description, price, duration_days, departure_city, image_path, is_active, sort_order, created_at, updated_at
`

// UpdateUmrahPackageParams holds the fields for UpdateUmrahPackage.
type UpdateUmrahPackageParams struct {
	Name          string
	Slug          string
	Description   string
	Price         float64
	DurationDays  int64
	DepartureCity sql.NullString
	ImagePath     sql.NullString
	IsActive      bool
	UpdatedAt     time.Time
	ID            int64
}

// UpdateUmrahPackage modifies a package and returns the updated row.
func (q *Queries) UpdateUmrahPackage(ctx context.Context, arg UpdateUmrahPackageParams) (UmrahPackage, error) {
	row := q.db.QueryRowContext(ctx, updateUmrahPackage,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.Price,
		arg.DurationDays,
		arg.DepartureCity,
		arg.ImagePath,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	var i UmrahPackage
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Price,
		&i.DurationDays,
		&i.DepartureCity,
		&i.ImagePath,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateUmrahPackageSortOrder = `-- name: UpdateUmrahPackageSortOrder :exec
UPDATE umrah_packages
SET sort_order = ?, updated_at = ?
WHERE id = ?
`

// UpdateUmrahPackageSortOrderParams holds the fields for UpdateUmrahPackageSortOrder.
type UpdateUmrahPackageSortOrderParams struct {
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateUmrahPackageSortOrder sets the display position of a single package.
func (q *Queries) UpdateUmrahPackageSortOrder(ctx context.Context, arg UpdateUmrahPackageSortOrderParams) error {
	_, err := q.db.ExecContext(ctx, updateUmrahPackageSortOrder, arg.SortOrder, arg.UpdatedAt, arg.ID)
	return err
}

const deleteUmrahPackage = `-- name: DeleteUmrahPackage :exec
DELETE FROM umrah_packages WHERE id = ?
`

// DeleteUmrahPackage removes a package. Hotel and airline links cascade.
func (q *Queries) DeleteUmrahPackage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUmrahPackage, id)
	return err
}

const createUmrahHotel = `-- name: CreateUmrahHotel :one
INSERT INTO umrah_hotels (name, city, star_rating, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, name, city, star_rating, created_at, updated_at
`

// CreateUmrahHotelParams holds the fields for CreateUmrahHotel.
type CreateUmrahHotelParams struct {
	Name       string
	City       string
	StarRating int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateUmrahHotel inserts a new hotel and returns the created row.
func (q *Queries) CreateUmrahHotel(ctx context.Context, arg CreateUmrahHotelParams) (UmrahHotel, error) {
	row := q.db.QueryRowContext(ctx, createUmrahHotel,
		arg.Name,
		arg.City,
		arg.StarRating,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i UmrahHotel
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.StarRating,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUmrahHotel = `-- name: GetUmrahHotel :one
SELECT id, name, city, star_rating, created_at, updated_at
FROM umrah_hotels
WHERE id = ?
`

// GetUmrahHotel fetches a hotel by primary key.
func (q *Queries) GetUmrahHotel(ctx context.Context, id int64) (UmrahHotel, error) {
	row := q.db.QueryRowContext(ctx, getUmrahHotel, id)
	var i UmrahHotel
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.StarRating,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listUmrahHotels = `-- name: ListUmrahHotels :many
SELECT id, name, city, star_rating, created_at, updated_at
FROM umrah_hotels
ORDER BY name COLLATE NOCASE
`

// ListUmrahHotels returns all hotels ordered by name.
func (q *Queries) ListUmrahHotels(ctx context.Context) ([]UmrahHotel, error) {
	rows, err := q.db.QueryContext(ctx, listUmrahHotels)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UmrahHotel
	for rows.Next() {
		var i UmrahHotel
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.City,
			&i.StarRating,
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

const updateUmrahHotel = `-- name: UpdateUmrahHotel :one
UPDATE umrah_hotels
SET name = ?, city = ?, star_rating = ?, updated_at = ?
WHERE id = ?
RETURNING id, name, city, star_rating, created_at, updated_at
`

// UpdateUmrahHotelParams holds the fields for UpdateUmrahHotel.
type UpdateUmrahHotelParams struct {
	Name       string
	City       string
	StarRating int64
	UpdatedAt  time.Time
	ID         int64
}

// UpdateUmrahHotel modifies a hotel and returns the updated row.
func (q *Queries) UpdateUmrahHotel(ctx context.Context, arg UpdateUmrahHotelParams) (UmrahHotel, error) {
	row := q.db.QueryRowContext(ctx, updateUmrahHotel,
		arg.Name,
		arg.City,
		arg.StarRating,
		arg.UpdatedAt,
		arg.ID,
	)
	var i UmrahHotel
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.StarRating,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteUmrahHotel = `-- name: DeleteUmrahHotel :exec
DELETE FROM umrah_hotels WHERE id = ?
`

// DeleteUmrahHotel removes a hotel. Package links cascade.
func (q *Queries) DeleteUmrahHotel(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUmrahHotel, id)
	return err
}

const createUmrahAirline = `-- name: CreateUmrahAirline :one
INSERT INTO umrah_airlines (name, created_at, updated_at)
VALUES (?, ?, ?)
RETURNING id, name, created_at, updated_at
`

// CreateUmrahAirlineParams holds the fields for CreateUmrahAirline.
type CreateUmrahAirlineParams struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUmrahAirline inserts a new airline and returns the created row.
func (q *Queries) CreateUmrahAirline(ctx context.Context, arg CreateUmrahAirlineParams) (UmrahAirline, error) {
	row := q.db.QueryRowContext(ctx, createUmrahAirline, arg.Name, arg.CreatedAt, arg.UpdatedAt)
	var i UmrahAirline
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getUmrahAirline = `-- name: GetUmrahAirline :one
SELECT id, name, created_at, updated_at
FROM umrah_airlines
WHERE id = ?
`

// GetUmrahAirline fetches an airline by primary key.
func (q *Queries) GetUmrahAirline(ctx context.Context, id int64) (UmrahAirline, error) {
	row := q.db.QueryRowContext(ctx, getUmrahAirline, id)
	var i UmrahAirline
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listUmrahAirlines = `-- name: ListUmrahAirlines :many
SELECT id, name, created_at, updated_at
FROM umrah_airlines
ORDER BY name COLLATE NOCASE
`

// ListUmrahAirlines returns all airlines ordered by name.
func (q *Queries) ListUmrahAirlines(ctx context.Context) ([]UmrahAirline, error) {
	rows, err := q.db.QueryContext(ctx, listUmrahAirlines)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UmrahAirline
	for rows.Next() {
		var i UmrahAirline
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateUmrahAirline = `-- name: UpdateUmrahAirline :one
UPDATE umrah_airlines
SET name = ?, updated_at = ?
WHERE id = ?
RETURNING id, name, created_at, updated_at
`

// UpdateUmrahAirlineParams holds the fields for UpdateUmrahAirline.
type UpdateUmrahAirlineParams struct {
	Name      string
	UpdatedAt time.Time
	ID        int64
}

// UpdateUmrahAirline modifies an airline and returns the updated row.
func (q *Queries) UpdateUmrahAirline(ctx context.Context, arg UpdateUmrahAirlineParams) (UmrahAirline, error) {
	row := q.db.QueryRowContext(ctx, updateUmrahAirline, arg.Name, arg.UpdatedAt, arg.ID)
	var i UmrahAirline
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteUmrahAirline = `-- name: DeleteUmrahAirline :exec
DELETE FROM umrah_airlines WHERE id = ?
`

// DeleteUmrahAirline removes an airline. Package links cascade.
func (q *Queries) DeleteUmrahAirline(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUmrahAirline, id)
	return err
}

const addPackageHotel = `-- name: AddPackageHotel :exec
INSERT INTO umrah_package_hotels (package_id, hotel_id, display_order)
VALUES (?, ?, ?)
`

// AddPackageHotelParams holds the fields for AddPackageHotel.
type AddPackageHotelParams struct {
	PackageID    int64
	HotelID      int64
	DisplayOrder int64
}

// AddPackageHotel links a hotel to a package at the given position.
func (q *Queries) AddPackageHotel(ctx context.Context, arg AddPackageHotelParams) error {
	_, err := q.db.ExecContext(ctx, addPackageHotel, arg.PackageID, arg.HotelID, arg.DisplayOrder)
	return err
}

const deletePackageHotels = `-- name: DeletePackageHotels :exec
DELETE FROM umrah_package_hotels WHERE package_id = ?
`

// DeletePackageHotels removes all hotel links for a package.
func (q *Queries) DeletePackageHotels(ctx context.Context, packageID int64) error {
	_, err := q.db.ExecContext(ctx, deletePackageHotels, packageID)
	return err
}

const listPackageHotels = `-- name: ListPackageHotels :many
SELECT h.id, h.name, h.city, h.star_rating, ph.package_id, ph.display_order
FROM umrah_hotels h
JOIN umrah_package_hotels ph ON ph.hotel_id = h.id
WHERE ph.package_id = ?
ORDER BY ph.display_order, h.id
`

// ListPackageHotelsRow is the joined result of ListPackageHotels.
type ListPackageHotelsRow struct {
	ID           int64
	Name         string
	City         string
	StarRating   int64
	PackageID    int64
	DisplayOrder int64
}

// ListPackageHotels returns a package's hotels in itinerary order.
func (q *Queries) ListPackageHotels(ctx context.Context, packageID int64) ([]ListPackageHotelsRow, error) {
	rows, err := q.db.QueryContext(ctx, listPackageHotels, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListPackageHotelsRow
	for rows.Next() {
		var i ListPackageHotelsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.City,
			&i.StarRating,
			&i.PackageID,
			&i.DisplayOrder,
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

const addPackageAirline = `-- name: AddPackageAirline :exec
INSERT INTO umrah_package_airlines (package_id, airline_id)
VALUES (?, ?)
`

// AddPackageAirlineParams holds the fields for AddPackageAirline.
type AddPackageAirlineParams struct {
	PackageID int64
	AirlineID int64
}

// AddPackageAirline links an airline to a package.
func (q *Queries) AddPackageAirline(ctx context.Context, arg AddPackageAirlineParams) error {
	_, err := q.db.ExecContext(ctx, addPackageAirline, arg.PackageID, arg.AirlineID)
	return err
}

const deletePackageAirlines = `-- name: DeletePackageAirlines :exec
DELETE FROM umrah_package_airlines WHERE package_id = ?
`

// DeletePackageAirlines removes all airline links for a package.
func (q *Queries) DeletePackageAirlines(ctx context.Context, packageID int64) error {
	_, err := q.db.ExecContext(ctx, deletePackageAirlines, packageID)
	return err
}

const listPackageAirlines = `-- name: ListPackageAirlines :many
SELECT a.id, a.name, pa.package_id
FROM umrah_airlines a
JOIN umrah_package_airlines pa ON pa.airline_id = a.id
WHERE pa.package_id = ?
ORDER BY a.name COLLATE NOCASE
`

// ListPackageAirlinesRow is the joined result of ListPackageAirlines.
type ListPackageAirlinesRow struct {
	ID        int64
	Name      string
	PackageID int64
}

// ListPackageAirlines returns a package's airlines ordered by name.
func (q *Queries) ListPackageAirlines(ctx context.Context, packageID int64) ([]ListPackageAirlinesRow, error) {
	rows, err := q.db.QueryContext(ctx, listPackageAirlines, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListPackageAirlinesRow
	for rows.Next() {
		var i ListPackageAirlinesRow
		if err := rows.Scan(&i.ID, &i.Name, &i.PackageID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
