// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Profile represents a personal profile row. At most one row is active at
// any time.
type Profile struct {
	ID              int64
	Name            string
	JobTitle        string
	Bio             string
	Summary         string
	Email           string
	Phone           string
	Location        string
	ProfileImageURL sql.NullString
	ResumeURL       sql.NullString
	GithubURL       sql.NullString
	LinkedinURL     sql.NullString
	TwitterURL      sql.NullString
	WebsiteURL      sql.NullString
	MetaDescription string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const profileColumns = `id, name, job_title, bio, summary, email, phone, location,
	profile_image_url, resume_url, github_url, linkedin_url, twitter_url, website_url,
	meta_description, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.JobTitle, &p.Bio, &p.Summary, &p.Email, &p.Phone, &p.Location,
		&p.ProfileImageURL, &p.ResumeURL, &p.GithubURL, &p.LinkedinURL, &p.TwitterURL, &p.WebsiteURL,
		&p.MetaDescription, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreateProfileParams holds the fields for CreateProfile.
type CreateProfileParams struct {
	Name            string
	JobTitle        string
	Bio             string
	Summary         string
	Email           string
	Phone           string
	Location        string
	ProfileImageURL sql.NullString
	ResumeURL       sql.NullString
	GithubURL       sql.NullString
	LinkedinURL     sql.NullString
	TwitterURL      sql.NullString
	WebsiteURL      sql.NullString
	MetaDescription string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateProfile inserts a new profile row.
func (q *Queries) CreateProfile(ctx context.Context, arg CreateProfileParams) (Profile, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO profiles (
		name, job_title, bio, summary, email, phone, location,
		profile_image_url, resume_url, github_url, linkedin_url, twitter_url, website_url,
		meta_description, is_active, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+profileColumns,
		arg.Name, arg.JobTitle, arg.Bio, arg.Summary, arg.Email, arg.Phone, arg.Location,
		arg.ProfileImageURL, arg.ResumeURL, arg.GithubURL, arg.LinkedinURL, arg.TwitterURL, arg.WebsiteURL,
		arg.MetaDescription, arg.IsActive, arg.CreatedAt, arg.UpdatedAt,
	)
	p, err := scanProfile(row)
	return p, wrapWriteErr(err)
}

// GetProfileByID fetches a profile by primary key.
func (q *Queries) GetProfileByID(ctx context.Context, id int64) (Profile, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	return scanProfile(row)
}

// GetActiveProfile fetches the single active profile.
func (q *Queries) GetActiveProfile(ctx context.Context) (Profile, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE is_active = 1 LIMIT 1`)
	return scanProfile(row)
}

// ListProfiles returns all profiles ordered by ID.
func (q *Queries) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdateProfileParams holds the fields for UpdateProfile.
type UpdateProfileParams struct {
	ID              int64
	Name            string
	JobTitle        string
	Bio             string
	Summary         string
	Email           string
	Phone           string
	Location        string
	ProfileImageURL sql.NullString
	ResumeURL       sql.NullString
	GithubURL       sql.NullString
	LinkedinURL     sql.NullString
	TwitterURL      sql.NullString
	WebsiteURL      sql.NullString
	MetaDescription string
	UpdatedAt       time.Time
}

// UpdateProfile updates all mutable profile fields. The active flag is
// managed separately through SetActiveProfile.
func (q *Queries) UpdateProfile(ctx context.Context, arg UpdateProfileParams) (Profile, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE profiles SET
		name = ?, job_title = ?, bio = ?, summary = ?, email = ?, phone = ?, location = ?,
		profile_image_url = ?, resume_url = ?, github_url = ?, linkedin_url = ?, twitter_url = ?, website_url = ?,
		meta_description = ?, updated_at = ?
	WHERE id = ?
	RETURNING `+profileColumns,
		arg.Name, arg.JobTitle, arg.Bio, arg.Summary, arg.Email, arg.Phone, arg.Location,
		arg.ProfileImageURL, arg.ResumeURL, arg.GithubURL, arg.LinkedinURL, arg.TwitterURL, arg.WebsiteURL,
		arg.MetaDescription, arg.UpdatedAt, arg.ID,
	)
	p, err := scanProfile(row)
	return p, wrapWriteErr(err)
}

// DeleteProfile deletes a profile row.
func (q *Queries) DeleteProfile(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	return err
}

func (q *Queries) deactivateProfiles(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `UPDATE profiles SET is_active = 0 WHERE is_active = 1`)
	return err
}

func (q *Queries) activateProfile(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE profiles SET is_active = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SetActiveProfile marks the given profile as the single active one. The
// flip runs in one transaction so two concurrent activations can never
// leave more than one active row.
func SetActiveProfile(ctx context.Context, db *sql.DB, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := New(tx)
	if err := q.deactivateProfiles(ctx); err != nil {
		return fmt.Errorf("deactivating profiles: %w", err)
	}
	n, err := q.activateProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("activating profile: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
