// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manarahtours/manarah/internal/handler"
	"github.com/manarahtours/manarah/internal/store"
)

// PackagesPerPage is the default public page size.
const PackagesPerPage = 10

type packageHotelItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	StarRating int64  `json:"star_rating"`
}

type packageAirlineItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type packageItem struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Description   string               `json:"description"`
	Price         float64              `json:"price"`
	DurationDays  int64                `json:"duration_days"`
	DepartureCity string               `json:"departure_city,omitempty"`
	ImageURL      string               `json:"image_url,omitempty"`
	Hotels        []packageHotelItem   `json:"hotels"`
	Airlines      []packageAirlineItem `json:"airlines"`
}

// packageMeta mirrors the pagination block used by the packages listing.
type packageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          int    `json:"to"`
	Total       int64  `json:"total"`
}

// packageLinks holds absolute page URLs for the packages listing.
type packageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// ListPackages handles GET /api/umrah-packages.
func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, PackagesPerPage, 50)

	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		total, err := h.queries.CountActiveUmrahPackages(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting packages: %w", err)
		}

		packages, err := h.queries.ListActiveUmrahPackages(ctx, store.ListActiveUmrahPackagesParams{
			Limit:  int64(perPage),
			Offset: int64((page - 1) * perPage),
		})
		if err != nil {
			return nil, fmt.Errorf("listing packages: %w", err)
		}

		data := make([]packageItem, 0, len(packages))
		for _, p := range packages {
			item, err := h.packageItemFrom(ctx, p)
			if err != nil {
				return nil, err
			}
			data = append(data, item)
		}

		pg := handler.NewPagination(page, perPage, total)
		path := h.baseURL + "/api/umrah-packages"
		return map[string]any{
			"success": true,
			"data":    data,
			"meta": packageMeta{
				CurrentPage: pg.CurrentPage,
				From:        pg.From,
				LastPage:    pg.LastPage,
				Path:        path,
				PerPage:     pg.PerPage,
				To:          pg.To,
				Total:       pg.Total,
			},
			"links": buildPackageLinks(path, pg, perPage),
		}, nil
	})
}

// GetPackage handles GET /api/umrah-packages/{slug}.
func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	h.respondCached(w, r, func(ctx context.Context) (any, error) {
		pkg, err := h.queries.GetUmrahPackageBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if !pkg.IsActive {
			return nil, sql.ErrNoRows
		}
		item, err := h.packageItemFrom(ctx, pkg)
		if err != nil {
			return nil, err
		}
		return dataPayload(item), nil
	})
}

func (h *Handler) packageItemFrom(ctx context.Context, p store.UmrahPackage) (packageItem, error) {
	item := packageItem{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Hotels:       []packageHotelItem{},
		Airlines:     []packageAirlineItem{},
	}
	if p.DepartureCity.Valid {
		item.DepartureCity = p.DepartureCity.String
	}
	if p.ImagePath.Valid {
		item.ImageURL = h.media.PublicURL(p.ImagePath.String)
	}

	hotels, err := h.queries.ListPackageHotels(ctx, p.ID)
	if err != nil {
		return packageItem{}, fmt.Errorf("listing package hotels: %w", err)
	}
	for _, hotel := range hotels {
		item.Hotels = append(item.Hotels, packageHotelItem{
			ID:         hotel.ID,
			Name:       hotel.Name,
			City:       hotel.City,
			StarRating: hotel.StarRating,
		})
	}

	airlines, err := h.queries.ListPackageAirlines(ctx, p.ID)
	if err != nil {
		return packageItem{}, fmt.Errorf("listing package airlines: %w", err)
	}
	for _, airline := range airlines {
		item.Airlines = append(item.Airlines, packageAirlineItem{
			ID:   airline.ID,
			Name: airline.Name,
		})
	}

	return item, nil
}

func buildPackageLinks(path string, pg handler.Pagination, perPage int) packageLinks {
	pageURL := func(page int) string {
		return fmt.Sprintf("%s?page=%d&per_page=%d", path, page, perPage)
	}

	links := packageLinks{
		First: pageURL(1),
		Last:  pageURL(pg.LastPage),
	}
	if pg.CurrentPage > 1 {
		prev := pageURL(pg.CurrentPage - 1)
		links.Prev = &prev
	}
	if pg.HasMore {
		next := pageURL(pg.CurrentPage + 1)
		links.Next = &next
	}
	return links
}
