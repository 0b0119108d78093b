// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// Experience represents a professional work experience entry with STAR
// narrative fields.
type Experience struct {
	ID             int64
	Role           string
	Company        string
	CompanyURL     sql.NullString
	Location       string
	EmploymentType string
	StartDate      time.Time
	EndDate        sql.NullTime
	IsCurrent      bool
	Situation      string
	Task           string
	Action         string
	Result         string
	Position       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const experienceColumns = `id, role, company, company_url, location, employment_type,
	start_date, end_date, is_current, situation, task, action, result,
	position, created_at, updated_at`

func scanExperience(row rowScanner) (Experience, error) {
	var e Experience
	err := row.Scan(
		&e.ID, &e.Role, &e.Company, &e.CompanyURL, &e.Location, &e.EmploymentType,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Situation, &e.Task, &e.Action, &e.Result,
		&e.Position, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectExperiences(rows *sql.Rows) ([]Experience, error) {
	var entries []Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateExperienceParams holds the fields for CreateExperience.
type CreateExperienceParams struct {
	Role           string
	Company        string
	CompanyURL     sql.NullString
	Location       string
	EmploymentType string
	StartDate      time.Time
	EndDate        sql.NullTime
	IsCurrent      bool
	Situation      string
	Task           string
	Action         string
	Result         string
	Position       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateExperience inserts a new experience entry.
func (q *Queries) CreateExperience(ctx context.Context, arg CreateExperienceParams) (Experience, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO experiences (
		role, company, company_url, location, employment_type,
		start_date, end_date, is_current, situation, task, action, result,
		position, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+experienceColumns,
		arg.Role, arg.Company, arg.CompanyURL, arg.Location, arg.EmploymentType,
		arg.StartDate, arg.EndDate, arg.IsCurrent, arg.Situation, arg.Task, arg.Action, arg.Result,
		arg.Position, arg.CreatedAt, arg.UpdatedAt,
	)
	e, err := scanExperience(row)
	return e, wrapWriteErr(err)
}

// GetExperienceByID fetches an experience entry by primary key.
func (q *Queries) GetExperienceByID(ctx context.Context, id int64) (Experience, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id)
	return scanExperience(row)
}

// ListExperiences returns all experience entries, most recent start first,
// then display order.
func (q *Queries) ListExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+experienceColumns+` FROM experiences
		ORDER BY start_date DESC, position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectExperiences(rows)
}

// ListAllExperiences returns every experience entry ordered by ID, for export.
func (q *Queries) ListAllExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+experienceColumns+` FROM experiences ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectExperiences(rows)
}

// UpdateExperienceParams holds the fields for UpdateExperience.
type UpdateExperienceParams struct {
	ID             int64
	Role           string
	Company        string
	CompanyURL     sql.NullString
	Location       string
	EmploymentType string
	StartDate      time.Time
	EndDate        sql.NullTime
	IsCurrent      bool
	Situation      string
	Task           string
	Action         string
	Result         string
	Position       int64
	UpdatedAt      time.Time
}

// UpdateExperience updates an experience entry.
func (q *Queries) UpdateExperience(ctx context.Context, arg UpdateExperienceParams) (Experience, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE experiences SET
		role = ?, company = ?, company_url = ?, location = ?, employment_type = ?,
		start_date = ?, end_date = ?, is_current = ?, situation = ?, task = ?, action = ?, result = ?,
		position = ?, updated_at = ?
	WHERE id = ?
	RETURNING `+experienceColumns,
		arg.Role, arg.Company, arg.CompanyURL, arg.Location, arg.EmploymentType,
		arg.StartDate, arg.EndDate, arg.IsCurrent, arg.Situation, arg.Task, arg.Action, arg.Result,
		arg.Position, arg.UpdatedAt, arg.ID,
	)
	e, err := scanExperience(row)
	return e, wrapWriteErr(err)
}

// DeleteExperience deletes an experience entry; skill links are removed by
// cascade.
func (q *Queries) DeleteExperience(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	return err
}
