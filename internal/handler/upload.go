// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/manarahtours/manarah/internal/service"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing.
const maxMultipartMemory = 8 << 20

// formImage extracts an optional uploaded file from a multipart form.
// Returns (nil, nil, nil) when the field is absent.
func formImage(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return file, header, nil
}

// storeFormImage parses the multipart form, stores an uploaded image if
// one was submitted, and returns its storage path ("" when no file was
// sent). A false second return means the error response is already
// written.
func storeFormImage(w http.ResponseWriter, r *http.Request, media *service.MediaService, field, folder string) (string, bool) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid form data")
		return "", false
	}

	file, header, err := formImage(r, field)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid file upload")
		return "", false
	}
	if file == nil {
		return "", true
	}
	defer func() { _ = file.Close() }()

	path, err := media.Store(file, header, folder)
	if err != nil {
		writeValidationErrors(w, fieldErrors{field: {err.Error()}})
		return "", false
	}
	return path, true
}

// formBool interprets a checkbox-style form value.
func formBool(r *http.Request, field string) bool {
	switch r.FormValue(field) {
	case "1", "true", "on":
		return true
	}
	return false
}

// formFloat parses a decimal form value, returning 0 for empty input
// and an error for malformed input.
func formFloat(r *http.Request, field string) (float64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// formInt parses an integer form value, returning 0 for empty input.
func formInt(r *http.Request, field string) (int64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// discardUpload removes a freshly stored file after a failed create or
// update, so aborted requests do not leave orphans behind.
func discardUpload(media *service.MediaService, path string) {
	if path == "" {
		return
	}
	if err := media.Delete(path); err != nil {
		slog.Warn("failed to remove orphaned upload", "error", err, "path", path)
	}
}
