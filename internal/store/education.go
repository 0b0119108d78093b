// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// Education represents a formal education entry.
type Education struct {
	ID           int64
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      sql.NullTime
	IsCurrent    bool
	Description  sql.NullString
	Gpa          sql.NullFloat64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const educationColumns = `e.id, e.institution, e.degree, e.field_of_study, e.start_date, e.end_date,
	e.is_current, e.description, e.gpa, e.created_at, e.updated_at`

const educationReturning = `id, institution, degree, field_of_study, start_date, end_date,
	is_current, description, gpa, created_at, updated_at`

func scanEducation(row rowScanner) (Education, error) {
	var e Education
	err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate,
		&e.IsCurrent, &e.Description, &e.Gpa, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectEducation(rows *sql.Rows) ([]Education, error) {
	var entries []Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateEducationParams holds the fields for CreateEducation.
type CreateEducationParams struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      sql.NullTime
	IsCurrent    bool
	Description  sql.NullString
	Gpa          sql.NullFloat64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateEducation inserts a new education entry.
func (q *Queries) CreateEducation(ctx context.Context, arg CreateEducationParams) (Education, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO education (
		institution, degree, field_of_study, start_date, end_date,
		is_current, description, gpa, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+educationReturning,
		arg.Institution, arg.Degree, arg.FieldOfStudy, arg.StartDate, arg.EndDate,
		arg.IsCurrent, arg.Description, arg.Gpa, arg.CreatedAt, arg.UpdatedAt,
	)
	e, err := scanEducation(row)
	return e, wrapWriteErr(err)
}

// GetEducationByID fetches an education entry by primary key.
func (q *Queries) GetEducationByID(ctx context.Context, id int64) (Education, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+educationColumns+` FROM education e WHERE e.id = ?`, id)
	return scanEducation(row)
}

// ListEducation returns all education entries, most recent start first.
func (q *Queries) ListEducation(ctx context.Context) ([]Education, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+educationColumns+` FROM education e
		ORDER BY e.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectEducation(rows)
}

// UpdateEducationParams holds the fields for UpdateEducation.
type UpdateEducationParams struct {
	ID           int64
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      sql.NullTime
	IsCurrent    bool
	Description  sql.NullString
	Gpa          sql.NullFloat64
	UpdatedAt    time.Time
}

// UpdateEducation updates an education entry.
func (q *Queries) UpdateEducation(ctx context.Context, arg UpdateEducationParams) (Education, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE education SET
		institution = ?, degree = ?, field_of_study = ?, start_date = ?, end_date = ?,
		is_current = ?, description = ?, gpa = ?, updated_at = ?
	WHERE id = ?
	RETURNING `+educationReturning,
		arg.Institution, arg.Degree, arg.FieldOfStudy, arg.StartDate, arg.EndDate,
		arg.IsCurrent, arg.Description, arg.Gpa, arg.UpdatedAt, arg.ID,
	)
	e, err := scanEducation(row)
	return e, wrapWriteErr(err)
}

// DeleteEducation deletes an education entry; skill links are removed by
// cascade.
func (q *Queries) DeleteEducation(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM education WHERE id = ?`, id)
	return err
}
