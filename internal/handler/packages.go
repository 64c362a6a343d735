// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/manarahtours/manarah/internal/cache"
	"github.com/manarahtours/manarah/internal/service"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/util"
)

const packagesFolder = "packages"

// PackagesHandler handles Umrah package management routes, including
// hotel and airline associations.
type PackagesHandler struct {
	db      *sql.DB
	queries *store.Queries
	media   *service.MediaService
	cache   cache.Cacher
}

// NewPackagesHandler creates a new PackagesHandler.
func NewPackagesHandler(db *sql.DB, media *service.MediaService, c cache.Cacher) *PackagesHandler {
	return &PackagesHandler{db: db, queries: store.New(db), media: media, cache: c}
}

type packageHotelResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	StarRating int64  `json:"star_rating"`
}

type packageAirlineResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type packageResponse struct {
	ID            int64                    `json:"id"`
	Name          string                   `json:"name"`
	Slug          string                   `json:"slug"`
	Description   string                   `json:"description"`
	Price         float64                  `json:"price"`
	DurationDays  int64                    `json:"duration_days"`
	DepartureCity string                   `json:"departure_city,omitempty"`
	ImageURL      string                   `json:"image_url,omitempty"`
	IsActive      bool                     `json:"is_active"`
	Order         int64                    `json:"order"`
	Hotels        []packageHotelResponse   `json:"hotels"`
	Airlines      []packageAirlineResponse `json:"airlines"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// packageResponseFrom builds the JSON projection of a package together
// with its associations.
func (h *PackagesHandler) packageResponseFrom(ctx context.Context, p store.UmrahPackage) (packageResponse, error) {
	resp := packageResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		DurationDays:  p.DurationDays,
		DepartureCity: p.DepartureCity.String,
		IsActive:      p.IsActive,
		Order:         p.SortOrder,
		Hotels:        []packageHotelResponse{},
		Airlines:      []packageAirlineResponse{},
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.ImagePath.Valid {
		resp.ImageURL = h.media.PublicURL(p.ImagePath.String)
	}

	hotels, err := h.queries.ListPackageHotels(ctx, p.ID)
	if err != nil {
		return resp, fmt.Errorf("listing package hotels: %w", err)
	}
	for _, hotel := range hotels {
		resp.Hotels = append(resp.Hotels, packageHotelResponse{
			ID:         hotel.ID,
			Name:       hotel.Name,
			City:       hotel.City,
			StarRating: hotel.StarRating,
		})
	}

	airlines, err := h.queries.ListPackageAirlines(ctx, p.ID)
	if err != nil {
		return resp, fmt.Errorf("listing package airlines: %w", err)
	}
	for _, airline := range airlines {
		resp.Airlines = append(resp.Airlines, packageAirlineResponse{
			ID:   airline.ID,
			Name: airline.Name,
		})
	}

	return resp, nil
}

// List handles GET /admin/umrah-packages.
func (h *PackagesHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.queries.ListUmrahPackages(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list packages", "error", err)
		return
	}

	data := make([]packageResponse, 0, len(packages))
	for _, p := range packages {
		resp, err := h.packageResponseFrom(r.Context(), p)
		if err != nil {
			logAndInternalError(w, "failed to load package associations", "error", err)
			return
		}
		data = append(data, resp)
	}
	writeJSONSuccess(w, map[string]any{"data": data})
}

// Get handles GET /admin/umrah-packages/{id}.
func (h *PackagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	pkg, ok := requireEntity(w, r, "package", func(id int64) (store.UmrahPackage, error) {
		return h.queries.GetUmrahPackage(r.Context(), id)
	})
	if !ok {
		return
	}
	resp, err := h.packageResponseFrom(r.Context(), pkg)
	if err != nil {
		logAndInternalError(w, "failed to load package associations", "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"data": resp})
}

// packageForm holds parsed and validated package form values.
type packageForm struct {
	name          string
	slug          string
	description   string
	price         float64
	durationDays  int64
	departureCity string
	isActive      bool
	hotelIDs      []int64
	airlineIDs    []int64
}

// parsePackageForm validates the multipart form fields for package
// create/update. existingID is 0 for create; it is excluded from the
// slug uniqueness check on update.
func (h *PackagesHandler) parsePackageForm(r *http.Request, existingID int64) (packageForm, fieldErrors, error) {
	fe := fieldErrors{}
	form := packageForm{
		name:          r.FormValue("name"),
		description:   r.FormValue("description"),
		departureCity: r.FormValue("departure_city"),
		isActive:      formBool(r, "is_active"),
	}

	fe.requireString("name", form.name, 255)
	fe.requireString("description", form.description, 20000)
	fe.capString("departure_city", form.departureCity, 100)

	var err error
	form.price, err = formFloat(r, "price")
	if err != nil {
		fe.add("price", "The price must be a number.")
	} else {
		fe.requireNonNegative("price", form.price)
	}

	form.durationDays, err = formInt(r, "duration_days")
	if err != nil || form.durationDays < 0 {
		fe.add("duration_days", "The duration_days must be a non-negative integer.")
	}

	form.slug = r.FormValue("slug")
	if form.slug == "" {
		form.slug = util.Slugify(form.name)
	}
	if form.slug == "" || !util.IsValidSlug(form.slug) {
		fe.add("slug", "The slug may only contain lowercase letters, digits, and hyphens.")
	} else {
		count, err := h.queries.CountUmrahPackageBySlug(r.Context(), store.CountUmrahPackageBySlugParams{
			Slug: form.slug,
			ID:   existingID,
		})
		if err != nil {
			return form, fe, fmt.Errorf("checking slug uniqueness: %w", err)
		}
		if count > 0 {
			fe.add("slug", "The slug has already been taken.")
		}
	}

	form.hotelIDs, err = parseIDList(r.Form["hotel_ids"])
	if err != nil {
		fe.add("hotel_ids", "The hotel_ids must be a list of IDs.")
	}
	form.airlineIDs, err = parseIDList(r.Form["airline_ids"])
	if err != nil {
		fe.add("airline_ids", "The airline_ids must be a list of IDs.")
	}

	return form, fe, nil
}

// parseIDList parses repeated form values into int64 IDs.
func parseIDList(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// saveAssociations replaces a package's hotel and airline links inside
// one transaction. Hotel order follows the submitted list; airlines are
// unordered.
func (h *PackagesHandler) saveAssociations(ctx context.Context, packageID int64, hotelIDs, airlineIDs []int64) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := h.queries.WithTx(tx)

	if err := qtx.DeletePackageHotels(ctx, packageID); err != nil {
		return fmt.Errorf("clearing hotel links: %w", err)
	}
	for i, hotelID := range hotelIDs {
		if err := qtx.AddPackageHotel(ctx, store.AddPackageHotelParams{
			PackageID:    packageID,
			HotelID:      hotelID,
			DisplayOrder: int64(i),
		}); err != nil {
			return fmt.Errorf("linking hotel %d: %w", hotelID, err)
		}
	}

	if err := qtx.DeletePackageAirlines(ctx, packageID); err != nil {
		return fmt.Errorf("clearing airline links: %w", err)
	}
	for _, airlineID := range airlineIDs {
		if err := qtx.AddPackageAirline(ctx, store.AddPackageAirlineParams{
			PackageID: packageID,
			AirlineID: airlineID,
		}); err != nil {
			return fmt.Errorf("linking airline %d: %w", airlineID, err)
		}
	}

	return tx.Commit()
}

// Create handles POST /admin/umrah-packages (multipart form).
func (h *PackagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	imagePath, ok := storeFormImage(w, r, h.media, "image", packagesFolder)
	if !ok {
		return
	}

	form, fe, err := h.parsePackageForm(r, 0)
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to validate package", "error", err)
		return
	}
	order := parseCreateOrder(r.FormValue("order"), fe)
	if fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	sortOrder, err := resolveSortOrder(r.Context(), order, h.queries.NextUmrahPackageSortOrder)
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to compute sort order", "error", err)
		return
	}

	now := time.Now()
	pkg, err := h.queries.CreateUmrahPackage(r.Context(), store.CreateUmrahPackageParams{
		Name:          form.name,
		Slug:          form.slug,
		Description:   form.description,
		Price:         form.price,
		DurationDays:  form.durationDays,
		DepartureCity: util.NullStringFromValue(form.departureCity),
		ImagePath:     util.NullStringFromValue(imagePath),
		IsActive:      form.isActive,
		SortOrder:     sortOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to create package", "error", err)
		return
	}

	if err := h.saveAssociations(r.Context(), pkg.ID, form.hotelIDs, form.airlineIDs); err != nil {
		logAndInternalError(w, "failed to save package associations", "error", err, "package_id", pkg.ID)
		return
	}

	slog.Info("package created", "category", "content", "package_id", pkg.ID, "slug", pkg.Slug)
	flushPublicCache(r.Context(), h.cache)

	resp, err := h.packageResponseFrom(r.Context(), pkg)
	if err != nil {
		logAndInternalError(w, "failed to load package associations", "error", err)
		return
	}
	writeJSONCreated(w, map[string]any{"data": resp})
}

// Update handles PUT /admin/umrah-packages/{id}.
func (h *PackagesHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntity(w, r, "package", func(id int64) (store.UmrahPackage, error) {
		return h.queries.GetUmrahPackage(r.Context(), id)
	})
	if !ok {
		return
	}

	imagePath, ok := storeFormImage(w, r, h.media, "image", packagesFolder)
	if !ok {
		return
	}

	form, fe, err := h.parsePackageForm(r, existing.ID)
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to validate package", "error", err)
		return
	}
	if fe.any() {
		discardUpload(h.media, imagePath)
		writeValidationErrors(w, fe)
		return
	}

	newImage := existing.ImagePath
	if imagePath != "" {
		if existing.ImagePath.Valid {
			if err := h.media.Delete(existing.ImagePath.String); err != nil {
				slog.Warn("failed to delete previous package image",
					"error", err, "path", existing.ImagePath.String)
			}
		}
		newImage = util.NullStringFromValue(imagePath)
	}

	pkg, err := h.queries.UpdateUmrahPackage(r.Context(), store.UpdateUmrahPackageParams{
		Name:          form.name,
		Slug:          form.slug,
		Description:   form.description,
		Price:         form.price,
		DurationDays:  form.durationDays,
		DepartureCity: util.NullStringFromValue(form.departureCity),
		ImagePath:     newImage,
		IsActive:      form.isActive,
		UpdatedAt:     time.Now(),
		ID:            existing.ID,
	})
	if err != nil {
		discardUpload(h.media, imagePath)
		logAndInternalError(w, "failed to update package", "error", err)
		return
	}

	if err := h.saveAssociations(r.Context(), pkg.ID, form.hotelIDs, form.airlineIDs); err != nil {
		logAndInternalError(w, "failed to save package associations", "error", err, "package_id", pkg.ID)
		return
	}

	flushPublicCache(r.Context(), h.cache)

	resp, err := h.packageResponseFrom(r.Context(), pkg)
	if err != nil {
		logAndInternalError(w, "failed to load package associations", "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"data": resp})
}

// Delete handles DELETE /admin/umrah-packages/{id}. Hotel and airline
// join rows are removed by foreign-key cascade.
func (h *PackagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pkg, ok := requireEntity(w, r, "package", func(id int64) (store.UmrahPackage, error) {
		return h.queries.GetUmrahPackage(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteUmrahPackage(r.Context(), pkg.ID); err != nil {
		logAndInternalError(w, "failed to delete package", "error", err)
		return
	}

	if pkg.ImagePath.Valid {
		if err := h.media.Delete(pkg.ImagePath.String); err != nil {
			slog.Warn("failed to delete package image",
				"error", err, "path", pkg.ImagePath.String)
		}
	}

	slog.Info("package deleted", "category", "content", "package_id", pkg.ID)
	flushPublicCache(r.Context(), h.cache)

	writeJSONSuccess(w, nil)
}

// Reorder handles POST /admin/umrah-packages/reorder.
func (h *PackagesHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	defer flushPublicCache(r.Context(), h.cache)
	reorderCollection(w, r, func(ctx context.Context, id, order int64, now time.Time) error {
		return h.queries.UpdateUmrahPackageSortOrder(ctx, store.UpdateUmrahPackageSortOrderParams{
			SortOrder: order,
			UpdatedAt: now,
			ID:        id,
		})
	})
}
