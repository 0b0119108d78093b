// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// Certification represents a certification, license, or training record.
type Certification struct {
	ID               int64
	Title            string
	CertType         string
	IssuingAuthority string
	AuthorityWebsite sql.NullString
	IssueDate        time.Time
	ExpiryDate       sql.NullTime
	CredentialID     string
	CredentialURL    sql.NullString
	Description      sql.NullString
	IconClass        string
	ColorClass       string
	IsFeatured       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const certificationColumns = `c.id, c.title, c.cert_type, c.issuing_authority, c.authority_website,
	c.issue_date, c.expiry_date, c.credential_id, c.credential_url, c.description,
	c.icon_class, c.color_class, c.is_featured, c.created_at, c.updated_at`

const certificationReturning = `id, title, cert_type, issuing_authority, authority_website,
	issue_date, expiry_date, credential_id, credential_url, description,
	icon_class, color_class, is_featured, created_at, updated_at`

func scanCertification(row rowScanner) (Certification, error) {
	var c Certification
	err := row.Scan(
		&c.ID, &c.Title, &c.CertType, &c.IssuingAuthority, &c.AuthorityWebsite,
		&c.IssueDate, &c.ExpiryDate, &c.CredentialID, &c.CredentialURL, &c.Description,
		&c.IconClass, &c.ColorClass, &c.IsFeatured, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func collectCertifications(rows *sql.Rows) ([]Certification, error) {
	var certs []Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// CreateCertificationParams holds the fields for CreateCertification.
type CreateCertificationParams struct {
	Title            string
	CertType         string
	IssuingAuthority string
	AuthorityWebsite sql.NullString
	IssueDate        time.Time
	ExpiryDate       sql.NullTime
	CredentialID     string
	CredentialURL    sql.NullString
	Description      sql.NullString
	IconClass        string
	ColorClass       string
	IsFeatured       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateCertification inserts a new certification.
func (q *Queries) CreateCertification(ctx context.Context, arg CreateCertificationParams) (Certification, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO certifications (
		title, cert_type, issuing_authority, authority_website,
		issue_date, expiry_date, credential_id, credential_url, description,
		icon_class, color_class, is_featured, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+certificationReturning,
		arg.Title, arg.CertType, arg.IssuingAuthority, arg.AuthorityWebsite,
		arg.IssueDate, arg.ExpiryDate, arg.CredentialID, arg.CredentialURL, arg.Description,
		arg.IconClass, arg.ColorClass, arg.IsFeatured, arg.CreatedAt, arg.UpdatedAt,
	)
	c, err := scanCertification(row)
	return c, wrapWriteErr(err)
}

// GetCertificationByID fetches a certification by primary key.
func (q *Queries) GetCertificationByID(ctx context.Context, id int64) (Certification, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+certificationColumns+` FROM certifications c WHERE c.id = ?`, id)
	return scanCertification(row)
}

// ListCertifications returns certifications, optionally filtered by type,
// most recently issued first.
func (q *Queries) ListCertifications(ctx context.Context, certType string) ([]Certification, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+certificationColumns+` FROM certifications c
		WHERE (? = '' OR c.cert_type = ?)
		ORDER BY c.issue_date DESC`, certType, certType)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectCertifications(rows)
}

// ListFeaturedCertifications returns featured certifications, most
// recently issued first.
func (q *Queries) ListFeaturedCertifications(ctx context.Context) ([]Certification, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+certificationColumns+` FROM certifications c
		WHERE c.is_featured = 1
		ORDER BY c.issue_date DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectCertifications(rows)
}

// ListAllCertifications returns every certification ordered by ID, for export.
func (q *Queries) ListAllCertifications(ctx context.Context) ([]Certification, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+certificationColumns+` FROM certifications c ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectCertifications(rows)
}

// UpdateCertificationParams holds the fields for UpdateCertification.
type UpdateCertificationParams struct {
	ID               int64
	Title            string
	CertType         string
	IssuingAuthority string
	AuthorityWebsite sql.NullString
	IssueDate        time.Time
	ExpiryDate       sql.NullTime
	CredentialID     string
	CredentialURL    sql.NullString
	Description      sql.NullString
	IconClass        string
	ColorClass       string
	IsFeatured       bool
	UpdatedAt        time.Time
}

// UpdateCertification updates a certification's mutable fields.
func (q *Queries) UpdateCertification(ctx context.Context, arg UpdateCertificationParams) (Certification, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE certifications SET
		title = ?, cert_type = ?, issuing_authority = ?, authority_website = ?,
		issue_date = ?, expiry_date = ?, credential_id = ?, credential_url = ?, description = ?,
		icon_class = ?, color_class = ?, is_featured = ?, updated_at = ?
	WHERE id = ?
	RETURNING `+certificationReturning,
		arg.Title, arg.CertType, arg.IssuingAuthority, arg.AuthorityWebsite,
		arg.IssueDate, arg.ExpiryDate, arg.CredentialID, arg.CredentialURL, arg.Description,
		arg.IconClass, arg.ColorClass, arg.IsFeatured, arg.UpdatedAt, arg.ID,
	)
	c, err := scanCertification(row)
	return c, wrapWriteErr(err)
}

// DeleteCertification deletes a certification; skill links are removed by
// cascade.
func (q *Queries) DeleteCertification(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM certifications WHERE id = ?`, id)
	return err
}
