// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int64
		want    Pagination
	}{
		{
			name: "first page of many", page: 1, perPage: 10, total: 25,
			want: Pagination{CurrentPage: 1, LastPage: 3, PerPage: 10, Total: 25, From: 1, To: 10, HasMore: true},
		},
		{
			name: "middle page", page: 2, perPage: 10, total: 25,
			want: Pagination{CurrentPage: 2, LastPage: 3, PerPage: 10, Total: 25, From: 11, To: 20, HasMore: true},
		},
		{
			name: "last partial page", page: 3, perPage: 10, total: 25,
			want: Pagination{CurrentPage: 3, LastPage: 3, PerPage: 10, Total: 25, From: 21, To: 25, HasMore: false},
		},
		{
			name: "page past the end clamps", page: 9, perPage: 10, total: 25,
			want: Pagination{CurrentPage: 3, LastPage: 3, PerPage: 10, Total: 25, From: 21, To: 25, HasMore: false},
		},
		{
			name: "empty collection", page: 1, perPage: 10, total: 0,
			want: Pagination{CurrentPage: 1, LastPage: 1, PerPage: 10, Total: 0, From: 0, To: 0, HasMore: false},
		},
		{
			name: "exact multiple", page: 2, perPage: 5, total: 10,
			want: Pagination{CurrentPage: 2, LastPage: 2, PerPage: 5, Total: 10, From: 6, To: 10, HasMore: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.perPage, tt.total)
			if got != tt.want {
				t.Errorf("NewPagination(%d, %d, %d) = %+v; want %+v",
					tt.page, tt.perPage, tt.total, got, tt.want)
			}
		})
	}
}

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=abc", 1},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		if got := ParsePageParam(r); got != tt.want {
			t.Errorf("ParsePageParam(%q) = %d; want %d", tt.query, got, tt.want)
		}
	}
}

func TestParsePerPageParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"per_page=25", 25},
		{"per_page=100", 100},
		{"per_page=0", 10},
		{"per_page=500", 100},
		{"per_page=junk", 10},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		if got := ParsePerPageParam(r, 10, 100); got != tt.want {
			t.Errorf("ParsePerPageParam(%q) = %d; want %d", tt.query, got, tt.want)
		}
	}
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		wantID  int64
		wantErr bool
	}{
		{"7", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/admin/faqs/"+tt.raw, nil)
		r = requestWithURLParams(r, map[string]string{"id": tt.raw})
		id, err := ParseIDParam(r)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseIDParam(%q) error = %v; wantErr %v", tt.raw, err, tt.wantErr)
		}
		if id != tt.wantID {
			t.Errorf("ParseIDParam(%q) = %d; want %d", tt.raw, id, tt.wantID)
		}
	}
}
