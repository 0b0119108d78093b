// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Default values used when the settings singleton is created on demand.
const (
	DefaultSiteTitle    = "Portfolio"
	DefaultContactEmail = "contact@example.com"
)

// SiteSettings represents the global site configuration singleton.
type SiteSettings struct {
	ID                int64
	SiteTitle         string
	SiteTagline       string
	SiteDescription   sql.NullString
	MetaKeywords      string
	GoogleAnalyticsID sql.NullString
	ContactEmail      string
	ContactPhone      sql.NullString
	GithubURL         sql.NullString
	LinkedinURL       sql.NullString
	TwitterURL        sql.NullString
	EnableBlog        bool
	EnableContactForm bool
	MaintenanceMode   bool
	IsActive          bool
}

const settingsColumns = `id, site_title, site_tagline, site_description, meta_keywords,
	google_analytics_id, contact_email, contact_phone, github_url, linkedin_url, twitter_url,
	enable_blog, enable_contact_form, maintenance_mode, is_active`

func scanSettings(row rowScanner) (SiteSettings, error) {
	var s SiteSettings
	err := row.Scan(
		&s.ID, &s.SiteTitle, &s.SiteTagline, &s.SiteDescription, &s.MetaKeywords,
		&s.GoogleAnalyticsID, &s.ContactEmail, &s.ContactPhone, &s.GithubURL, &s.LinkedinURL, &s.TwitterURL,
		&s.EnableBlog, &s.EnableContactForm, &s.MaintenanceMode, &s.IsActive,
	)
	return s, err
}

// GetActiveSettings fetches the active settings row.
func (q *Queries) GetActiveSettings(ctx context.Context) (SiteSettings, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+settingsColumns+` FROM site_settings WHERE is_active = 1 LIMIT 1`)
	return scanSettings(row)
}

// UpdateSettingsParams holds the fields for UpdateSettings.
type UpdateSettingsParams struct {
	ID                int64
	SiteTitle         string
	SiteTagline       string
	SiteDescription   sql.NullString
	MetaKeywords      string
	GoogleAnalyticsID sql.NullString
	ContactEmail      string
	ContactPhone      sql.NullString
	GithubURL         sql.NullString
	LinkedinURL       sql.NullString
	TwitterURL        sql.NullString
	EnableBlog        bool
	EnableContactForm bool
	MaintenanceMode   bool
}

// UpdateSettings updates all mutable settings fields.
func (q *Queries) UpdateSettings(ctx context.Context, arg UpdateSettingsParams) (SiteSettings, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE site_settings SET
		site_title = ?, site_tagline = ?, site_description = ?, meta_keywords = ?,
		google_analytics_id = ?, contact_email = ?, contact_phone = ?,
		github_url = ?, linkedin_url = ?, twitter_url = ?,
		enable_blog = ?, enable_contact_form = ?, maintenance_mode = ?
	WHERE id = ?
	RETURNING `+settingsColumns,
		arg.SiteTitle, arg.SiteTagline, arg.SiteDescription, arg.MetaKeywords,
		arg.GoogleAnalyticsID, arg.ContactEmail, arg.ContactPhone,
		arg.GithubURL, arg.LinkedinURL, arg.TwitterURL,
		arg.EnableBlog, arg.EnableContactForm, arg.MaintenanceMode, arg.ID,
	)
	s, err := scanSettings(row)
	return s, wrapWriteErr(err)
}

func (q *Queries) deactivateSettings(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `UPDATE site_settings SET is_active = 0 WHERE is_active = 1`)
	return err
}

func (q *Queries) activateSettings(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE site_settings SET is_active = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) insertDefaultSettings(ctx context.Context) (SiteSettings, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO site_settings (site_title, contact_email, is_active)
		VALUES (?, ?, 1)
		RETURNING `+settingsColumns,
		DefaultSiteTitle, DefaultContactEmail,
	)
	s, err := scanSettings(row)
	return s, wrapWriteErr(err)
}

// GetSettings returns the active site settings, creating a default row if
// none exists. It never fails on absence, only on database errors. The
// get-or-create runs in one transaction so concurrent callers cannot
// create two active rows.
func GetSettings(ctx context.Context, db *sql.DB) (SiteSettings, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SiteSettings{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := New(tx)
	settings, err := q.GetActiveSettings(ctx)
	if err == nil {
		return settings, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SiteSettings{}, err
	}

	settings, err = q.insertDefaultSettings(ctx)
	if err != nil {
		return SiteSettings{}, fmt.Errorf("creating default settings: %w", err)
	}
	return settings, tx.Commit()
}

// SetActiveSettings marks the given settings row as the single active one,
// flipping every other row inside one transaction.
func SetActiveSettings(ctx context.Context, db *sql.DB, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := New(tx)
	if err := q.deactivateSettings(ctx); err != nil {
		return fmt.Errorf("deactivating settings: %w", err)
	}
	n, err := q.activateSettings(ctx, id)
	if err != nil {
		return fmt.Errorf("activating settings: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
