// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Certification types.
const (
	CertTypeCertification = "certification"
	CertTypeAward         = "award"
	CertTypeRecognition   = "recognition"
	CertTypePublication   = "publication"
)

// CertTypes lists all valid certification types.
var CertTypes = []string{
	CertTypeCertification,
	CertTypeAward,
	CertTypeRecognition,
	CertTypePublication,
}

// IsValidCertType reports whether t is a known certification type.
func IsValidCertType(t string) bool {
	return contains(CertTypes, t)
}

// IsExpired reports whether a certification with the given expiry date has
// expired as of today. A missing expiry date never expires, and an expiry
// date equal to today's date is not yet expired.
func IsExpired(expiry sql.NullTime, today time.Time) bool {
	if !expiry.Valid {
		return false
	}
	ey, em, ed := expiry.Time.Date()
	ty, tm, td := today.Date()
	expiryDay := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	todayDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return expiryDay.Before(todayDay)
}
