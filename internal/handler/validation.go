// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/olegiv/folio-go/internal/util"
)

// ValidationErrors collects field-level validation failures. Fields are
// checked independently so one response can report every problem at once.
type ValidationErrors map[string]string

// Ok reports whether no validation errors were recorded.
func (v ValidationErrors) Ok() bool {
	return len(v) == 0
}

// Require records an error when the trimmed value is empty.
func (v ValidationErrors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v[field] = "This field is required"
	}
}

// MaxLen records an error when the value exceeds max characters.
func (v ValidationErrors) MaxLen(field, value string, max int) {
	if len(value) > max {
		v[field] = "Must be at most " + strconv.Itoa(max) + " characters"
	}
}

// Email records an error when the value is not a valid email address.
func (v ValidationErrors) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v[field] = "Invalid email address"
	}
}

// OneOf records an error when the value is not in the allowed set. An
// empty value is accepted so optional fields can use it.
func (v ValidationErrors) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "Must be one of: " + strings.Join(allowed, ", ")
}

// Slug records an error when the value is not a valid slug.
func (v ValidationErrors) Slug(field, value string) {
	if value == "" {
		v[field] = "Slug is required"
		return
	}
	if !util.IsValidSlug(value) {
		v[field] = "Invalid slug format (use lowercase letters, numbers, and hyphens)"
	}
}
