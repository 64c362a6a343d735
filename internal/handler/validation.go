// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// fieldErrors collects validation messages per field, preserving the
// order messages were added within a field.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe fieldErrors) any() bool {
	return len(fe) > 0
}

// requireString validates a required string field with a length cap.
func (fe fieldErrors) requireString(field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		fe.add(field, "The "+field+" field is required.")
		return
	}
	fe.capString(field, value, maxLen)
}

// capString validates an optional string field against a length cap.
func (fe fieldErrors) capString(field, value string, maxLen int) {
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		fe.add(field, "The "+field+" may not be longer than "+strconv.Itoa(maxLen)+" characters.")
	}
}

// requireEmail validates a required, well-formed email address.
func (fe fieldErrors) requireEmail(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe.add(field, "The "+field+" field is required.")
		return
	}
	if !isValidEmail(value) {
		fe.add(field, "The "+field+" must be a valid email address.")
	}
}

// requireURL validates an http(s) URL field; empty values are allowed
// when required is false.
func (fe fieldErrors) requireURL(field, value string, required bool) {
	if strings.TrimSpace(value) == "" {
		if required {
			fe.add(field, "The "+field+" field is required.")
		}
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fe.add(field, "The "+field+" must be a valid URL.")
	}
}

// requireRange validates an integer field within [lo, hi].
func (fe fieldErrors) requireRange(field string, value, lo, hi int64) {
	if value < lo || value > hi {
		fe.add(field, "The "+field+" must be between "+strconv.Itoa(int(lo))+" and "+strconv.Itoa(int(hi))+".")
	}
}

// requireNonNegative validates a non-negative decimal field.
func (fe fieldErrors) requireNonNegative(field string, value float64) {
	if value < 0 {
		fe.add(field, "The "+field+" may not be negative.")
	}
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

