// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// maxJSONBodySize caps admin request bodies at 1 MB.
const maxJSONBodySize = 1 << 20

// decodeJSON decodes a JSON request body into dst. Unknown fields are
// rejected so client typos surface as errors instead of silently
// dropped data.
func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxJSONBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

// writeJSONSuccess writes a JSON success response.
func writeJSONSuccess(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	_ = json.NewEncoder(w).Encode(data)
}

// writeJSONCreated writes a 201 JSON success response.
func writeJSONCreated(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	_ = json.NewEncoder(w).Encode(data)
}

// writeValidationErrors writes a 422 response carrying per-field error messages.
func writeValidationErrors(w http.ResponseWriter, fieldErrors map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": "The given data was invalid.",
		"errors":  fieldErrors,
	})
}

// logAndInternalError logs a server-side failure and answers with a generic 500.
func logAndInternalError(w http.ResponseWriter, msg string, args ...any) {
	slog.Error(msg, args...)
	writeJSONError(w, http.StatusInternalServerError, "Internal server error")
}

// badRequestOnDecode answers 400 for malformed request bodies.
func badRequestOnDecode(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	writeJSONError(w, http.StatusBadRequest, "Invalid request body")
}
