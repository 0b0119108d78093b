package model

import (
	"database/sql"
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry sql.NullTime
		want   bool
	}{
		{"no expiry", sql.NullTime{}, false},
		{"expires today", sql.NullTime{Time: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), Valid: true}, false},
		{"expired yesterday", sql.NullTime{Time: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Valid: true}, true},
		{"expires tomorrow", sql.NullTime{Time: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Valid: true}, false},
		{"expired years ago", sql.NullTime{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExpired(tt.expiry, today); got != tt.want {
				t.Errorf("IsExpired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidCertType(t *testing.T) {
	for _, valid := range []string{CertTypeCertification, CertTypeAward, CertTypeRecognition, CertTypePublication} {
		if !IsValidCertType(valid) {
			t.Errorf("IsValidCertType(%q) = false, want true", valid)
		}
	}
	if IsValidCertType("diploma") {
		t.Error(`IsValidCertType("diploma") = true, want false`)
	}
}
