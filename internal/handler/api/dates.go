// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// parseDate parses a required date field, recording a validation error
// on failure.
func parseDate(v handler.ValidationErrors, field, value string) time.Time {
	if value == "" {
		v[field] = "This field is required"
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		v[field] = "Must be a date in YYYY-MM-DD format"
		return time.Time{}
	}
	return t
}

// parseDatePtr parses an optional date field into a nullable time.
func parseDatePtr(v handler.ValidationErrors, field string, value *string) sql.NullTime {
	if value == nil || *value == "" {
		return sql.NullTime{}
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		v[field] = "Must be a date in YYYY-MM-DD format"
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// formatDatePtr renders a nullable time as a date string pointer.
func formatDatePtr(nt sql.NullTime) *string {
	if !nt.Valid {
		return nil
	}
	s := nt.Time.Format(dateLayout)
	return &s
}
