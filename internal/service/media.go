// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/manarahtours/manarah/internal/imaging"
	"github.com/manarahtours/manarah/internal/model"
	"github.com/manarahtours/manarah/internal/util"
)

// Upload limits
const (
	MaxUploadSize    = 10 * 1024 * 1024 // 10MB
	DefaultUploadDir = "./uploads"
)

// MediaService stores uploaded images on disk and generates resized
// variants. Files are keyed by a random UUID directory so concurrent
// uploads of identically named files never collide.
type MediaService struct {
	uploadDir string
	processor *imaging.Processor
}

// NewMediaService creates a new media service rooted at uploadDir.
func NewMediaService(uploadDir string) *MediaService {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &MediaService{
		uploadDir: uploadDir,
		processor: imaging.NewProcessor(uploadDir),
	}
}

// Store validates and saves an uploaded image under the given folder
// (e.g. "slides", "packages"). It normalizes EXIF orientation, writes
// the processed original plus resized variants, and returns the
// storage path of the original relative to the uploads root.
func (s *MediaService) Store(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}
	if folder == "" || util.ContainsPathTraversal(folder) {
		return "", fmt.Errorf("invalid upload folder %q", folder)
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}

	// Trust the sniffed content, not the client-supplied Content-Type.
	mimeType := s.processor.DetectMimeType(data)
	if !model.IsSupportedImageType(mimeType) {
		return "", fmt.Errorf("file type %s is not allowed", mimeType)
	}

	filename, err := util.SanitizeFilename(header.Filename)
	if err != nil {
		return "", fmt.Errorf("invalid filename: %w", err)
	}
	filename = normalizeFilename(filename)

	key := path.Join(folder, uuid.New().String())

	result, err := s.processor.ProcessImage(bytes.NewReader(data), key, filename)
	if err != nil {
		return "", fmt.Errorf("failed to process image: %w", err)
	}

	if _, err := s.processor.CreateAllVariants(result.FilePath, key, filename); err != nil {
		// The original is saved; missing variants degrade to full-size serving.
		slog.Warn("failed to create image variants", "key", key, "error", err)
	}

	return path.Join("originals", key, filename), nil
}

// Delete removes the original and all variants for a stored image.
// relPath is the value returned by Store.
func (s *MediaService) Delete(relPath string) error {
	key, ok := storageKey(relPath)
	if !ok {
		return fmt.Errorf("invalid media path %q", relPath)
	}
	return s.processor.DeleteMediaFiles(key)
}

// PublicURL returns the URL path under which a stored image is served.
func (s *MediaService) PublicURL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return "/uploads/" + path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
}

// VariantURL returns the URL for a resized variant of a stored image.
// It falls back to the original URL when relPath has an unexpected shape.
func (s *MediaService) VariantURL(relPath, variant string) string {
	key, ok := storageKey(relPath)
	if !ok {
		return s.PublicURL(relPath)
	}
	if _, known := model.ImageVariants[variant]; !known {
		return s.PublicURL(relPath)
	}
	return "/uploads/" + path.Join(variant, key, path.Base(relPath))
}

// storageKey extracts the "<folder>/<uuid>" key from a stored original
// path of the form "originals/<folder>/<uuid>/<filename>".
func storageKey(relPath string) (string, bool) {
	clean := path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	if util.ContainsPathTraversal(clean) {
		return "", false
	}
	parts := strings.Split(clean, "/")
	if len(parts) != 4 || parts[0] != "originals" {
		return "", false
	}
	return path.Join(parts[1], parts[2]), true
}

// normalizeFilename replaces characters that are awkward in URLs.
func normalizeFilename(filename string) string {
	replacer := strings.NewReplacer(
		" ", "-",
		"'", "",
		"\"", "",
		"<", "",
		">", "",
		"&", "",
		"#", "",
		"?", "",
		"%", "",
	)
	filename = replacer.Replace(filename)

	if filepath.Ext(filename) == "" {
		filename += ".img"
	}
	return filename
}
