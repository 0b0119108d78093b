// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// SkillArea represents a skill grouping. Deleting an area cascades to its
// skills.
type SkillArea struct {
	ID          int64
	Name        string
	Slug        string
	Description sql.NullString
	Icon        string
	Color       string
	Position    int64
}

const skillAreaColumns = `id, name, slug, description, icon, color, position`

func scanSkillArea(row rowScanner) (SkillArea, error) {
	var a SkillArea
	err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.Description, &a.Icon, &a.Color, &a.Position)
	return a, err
}

// CreateSkillAreaParams holds the fields for CreateSkillArea.
type CreateSkillAreaParams struct {
	Name        string
	Slug        string
	Description sql.NullString
	Icon        string
	Color       string
	Position    int64
}

// CreateSkillArea inserts a new skill area.
func (q *Queries) CreateSkillArea(ctx context.Context, arg CreateSkillAreaParams) (SkillArea, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO skill_areas (name, slug, description, icon, color, position)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+skillAreaColumns,
		arg.Name, arg.Slug, arg.Description, arg.Icon, arg.Color, arg.Position,
	)
	a, err := scanSkillArea(row)
	return a, wrapWriteErr(err)
}

// GetSkillAreaByID fetches a skill area by primary key.
func (q *Queries) GetSkillAreaByID(ctx context.Context, id int64) (SkillArea, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+skillAreaColumns+` FROM skill_areas WHERE id = ?`, id)
	return scanSkillArea(row)
}

// GetSkillAreaBySlug fetches a skill area by slug.
func (q *Queries) GetSkillAreaBySlug(ctx context.Context, slug string) (SkillArea, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+skillAreaColumns+` FROM skill_areas WHERE slug = ?`, slug)
	return scanSkillArea(row)
}

// ListSkillAreas returns all skill areas in display order.
func (q *Queries) ListSkillAreas(ctx context.Context) ([]SkillArea, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+skillAreaColumns+` FROM skill_areas ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var areas []SkillArea
	for rows.Next() {
		a, err := scanSkillArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// UpdateSkillAreaParams holds the fields for UpdateSkillArea. The slug is
// immutable once set and deliberately absent.
type UpdateSkillAreaParams struct {
	ID          int64
	Name        string
	Description sql.NullString
	Icon        string
	Color       string
	Position    int64
}

// UpdateSkillArea updates a skill area's mutable fields.
func (q *Queries) UpdateSkillArea(ctx context.Context, arg UpdateSkillAreaParams) (SkillArea, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE skill_areas SET name = ?, description = ?, icon = ?, color = ?, position = ?
		WHERE id = ?
		RETURNING `+skillAreaColumns,
		arg.Name, arg.Description, arg.Icon, arg.Color, arg.Position, arg.ID,
	)
	a, err := scanSkillArea(row)
	return a, wrapWriteErr(err)
}

// DeleteSkillArea deletes a skill area. Its skills are removed by the
// ON DELETE CASCADE constraint.
func (q *Queries) DeleteSkillArea(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM skill_areas WHERE id = ?`, id)
	return err
}

// Skill represents an individual skill with SFIA classification.
type Skill struct {
	ID              int64
	AreaID          int64
	Name            string
	Slug            string
	SfiaLevel       string
	IndustryLevel   string
	Sector          string
	Description     string
	YearsExperience sql.NullFloat64
	Tags            string
	IsFeatured      bool
	Position        int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const skillColumns = `s.id, s.area_id, s.name, s.slug, s.sfia_level, s.industry_level, s.sector,
	s.description, s.years_experience, s.tags, s.is_featured, s.position, s.created_at, s.updated_at`

func scanSkill(row rowScanner) (Skill, error) {
	var s Skill
	err := row.Scan(
		&s.ID, &s.AreaID, &s.Name, &s.Slug, &s.SfiaLevel, &s.IndustryLevel, &s.Sector,
		&s.Description, &s.YearsExperience, &s.Tags, &s.IsFeatured, &s.Position, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// CreateSkillParams holds the fields for CreateSkill.
type CreateSkillParams struct {
	AreaID          int64
	Name            string
	Slug            string
	SfiaLevel       string
	IndustryLevel   string
	Sector          string
	Description     string
	YearsExperience sql.NullFloat64
	Tags            string
	IsFeatured      bool
	Position        int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateSkill inserts a new skill.
func (q *Queries) CreateSkill(ctx context.Context, arg CreateSkillParams) (Skill, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO skills (
		area_id, name, slug, sfia_level, industry_level, sector,
		description, years_experience, tags, is_featured, position, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id, area_id, name, slug, sfia_level, industry_level, sector,
		description, years_experience, tags, is_featured, position, created_at, updated_at`,
		arg.AreaID, arg.Name, arg.Slug, arg.SfiaLevel, arg.IndustryLevel, arg.Sector,
		arg.Description, arg.YearsExperience, arg.Tags, arg.IsFeatured, arg.Position, arg.CreatedAt, arg.UpdatedAt,
	)
	s, err := scanSkill(row)
	return s, wrapWriteErr(err)
}

// GetSkillByID fetches a skill by primary key.
func (q *Queries) GetSkillByID(ctx context.Context, id int64) (Skill, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills s WHERE s.id = ?`, id)
	return scanSkill(row)
}

// GetSkillBySlug fetches a skill by slug.
func (q *Queries) GetSkillBySlug(ctx context.Context, slug string) (Skill, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills s WHERE s.slug = ?`, slug)
	return scanSkill(row)
}

// ListSkillsParams holds the optional filters for ListSkills. Empty values
// mean "no filter".
type ListSkillsParams struct {
	SfiaLevel string
	Sector    string
	AreaSlug  string
}

// ListSkills returns skills matching the given filters, ordered by area
// display order, then skill order, then name.
func (q *Queries) ListSkills(ctx context.Context, arg ListSkillsParams) ([]Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills s
		JOIN skill_areas a ON a.id = s.area_id
		WHERE (? = '' OR s.sfia_level = ?)
		  AND (? = '' OR s.sector = ?)
		  AND (? = '' OR a.slug = ?)
		ORDER BY a.position, a.name, s.position, s.name`
	rows, err := q.db.QueryContext(ctx, query,
		arg.SfiaLevel, arg.SfiaLevel, arg.Sector, arg.Sector, arg.AreaSlug, arg.AreaSlug)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var skills []Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ListFeaturedSkills returns featured skills up to the given limit.
func (q *Queries) ListFeaturedSkills(ctx context.Context, limit int64) ([]Skill, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+skillColumns+` FROM skills s
		JOIN skill_areas a ON a.id = s.area_id
		WHERE s.is_featured = 1
		ORDER BY a.position, a.name, s.position, s.name
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var skills []Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// UpdateSkillParams holds the fields for UpdateSkill. The slug is immutable
// once set and deliberately absent.
type UpdateSkillParams struct {
	ID              int64
	AreaID          int64
	Name            string
	SfiaLevel       string
	IndustryLevel   string
	Sector          string
	Description     string
	YearsExperience sql.NullFloat64
	Tags            string
	IsFeatured      bool
	Position        int64
	UpdatedAt       time.Time
}

// UpdateSkill updates a skill's mutable fields.
func (q *Queries) UpdateSkill(ctx context.Context, arg UpdateSkillParams) (Skill, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE skills SET
		area_id = ?, name = ?, sfia_level = ?, industry_level = ?, sector = ?,
		description = ?, years_experience = ?, tags = ?, is_featured = ?, position = ?, updated_at = ?
	WHERE id = ?
	RETURNING id, area_id, name, slug, sfia_level, industry_level, sector,
		description, years_experience, tags, is_featured, position, created_at, updated_at`,
		arg.AreaID, arg.Name, arg.SfiaLevel, arg.IndustryLevel, arg.Sector,
		arg.Description, arg.YearsExperience, arg.Tags, arg.IsFeatured, arg.Position, arg.UpdatedAt, arg.ID,
	)
	s, err := scanSkill(row)
	return s, wrapWriteErr(err)
}

// DeleteSkill deletes a skill; evidence links are removed by cascade.
func (q *Queries) DeleteSkill(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	return err
}

// Evidence link operations. The join tables are pure associative relations.

// AddSkillProject links a skill to a project.
func (q *Queries) AddSkillProject(ctx context.Context, skillID, projectID int64) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO skill_projects (skill_id, project_id) VALUES (?, ?)`, skillID, projectID)
	return wrapWriteErr(err)
}

// RemoveSkillProject unlinks a skill from a project.
func (q *Queries) RemoveSkillProject(ctx context.Context, skillID, projectID int64) error {
	_, err := q.db.ExecContext(ctx,
		`DELETE FROM skill_projects WHERE skill_id = ? AND project_id = ?`, skillID, projectID)
	return err
}

// AddSkillCertification links a skill to a certification.
func (q *Queries) AddSkillCertification(ctx context.Context, skillID, certificationID int64) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO skill_certifications (skill_id, certification_id) VALUES (?, ?)`, skillID, certificationID)
	return wrapWriteErr(err)
}

// RemoveSkillCertification unlinks a skill from a certification.
func (q *Queries) RemoveSkillCertification(ctx context.Context, skillID, certificationID int64) error {
	_, err := q.db.ExecContext(ctx,
		`DELETE FROM skill_certifications WHERE skill_id = ? AND certification_id = ?`, skillID, certificationID)
	return err
}

// AddSkillEducation links a skill to an education entry.
func (q *Queries) AddSkillEducation(ctx context.Context, skillID, educationID int64) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO skill_education (skill_id, education_id) VALUES (?, ?)`, skillID, educationID)
	return wrapWriteErr(err)
}

// AddSkillExperience links a skill to an experience entry.
func (q *Queries) AddSkillExperience(ctx context.Context, skillID, experienceID int64) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO skill_experiences (skill_id, experience_id) VALUES (?, ?)`, skillID, experienceID)
	return wrapWriteErr(err)
}

// GetProjectsForSkill returns the projects linked to a skill, newest first.
func (q *Queries) GetProjectsForSkill(ctx context.Context, skillID int64) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects p
		JOIN skill_projects sp ON sp.project_id = p.id
		WHERE sp.skill_id = ?
		ORDER BY p.start_date DESC, p.position`, skillID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectProjects(rows)
}

// GetCertificationsForSkill returns the certifications linked to a skill.
func (q *Queries) GetCertificationsForSkill(ctx context.Context, skillID int64) ([]Certification, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+certificationColumns+` FROM certifications c
		JOIN skill_certifications sc ON sc.certification_id = c.id
		WHERE sc.skill_id = ?
		ORDER BY c.issue_date DESC`, skillID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectCertifications(rows)
}

// GetEducationForSkill returns the education entries linked to a skill.
func (q *Queries) GetEducationForSkill(ctx context.Context, skillID int64) ([]Education, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+educationColumns+` FROM education e
		JOIN skill_education se ON se.education_id = e.id
		WHERE se.skill_id = ?
		ORDER BY e.start_date DESC`, skillID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectEducation(rows)
}

// GetSkillsForProject returns the skills demonstrated by a project.
func (q *Queries) GetSkillsForProject(ctx context.Context, projectID int64) ([]Skill, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+skillColumns+` FROM skills s
		JOIN skill_projects sp ON sp.skill_id = s.id
		WHERE sp.project_id = ?
		ORDER BY s.position, s.name`, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var skills []Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
