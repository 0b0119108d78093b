// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// ProjectCategory represents a project category. Deleting one nulls the
// reference on its projects instead of deleting them.
type ProjectCategory struct {
	ID          int64
	Name        string
	Slug        string
	Description sql.NullString
}

func scanProjectCategory(row rowScanner) (ProjectCategory, error) {
	var c ProjectCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	return c, err
}

// CreateProjectCategoryParams holds the fields for CreateProjectCategory.
type CreateProjectCategoryParams struct {
	Name        string
	Slug        string
	Description sql.NullString
}

// CreateProjectCategory inserts a new project category.
func (q *Queries) CreateProjectCategory(ctx context.Context, arg CreateProjectCategoryParams) (ProjectCategory, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO project_categories (name, slug, description)
		VALUES (?, ?, ?)
		RETURNING id, name, slug, description`,
		arg.Name, arg.Slug, arg.Description,
	)
	c, err := scanProjectCategory(row)
	return c, wrapWriteErr(err)
}

// GetProjectCategoryBySlug fetches a project category by slug.
func (q *Queries) GetProjectCategoryBySlug(ctx context.Context, slug string) (ProjectCategory, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, name, slug, description FROM project_categories WHERE slug = ?`, slug)
	return scanProjectCategory(row)
}

// GetProjectCategoryByID fetches a project category by primary key.
func (q *Queries) GetProjectCategoryByID(ctx context.Context, id int64) (ProjectCategory, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, name, slug, description FROM project_categories WHERE id = ?`, id)
	return scanProjectCategory(row)
}

// ListProjectCategories returns all project categories ordered by name.
func (q *Queries) ListProjectCategories(ctx context.Context) ([]ProjectCategory, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name, slug, description FROM project_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var categories []ProjectCategory
	for rows.Next() {
		c, err := scanProjectCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteProjectCategory deletes a category; dependent projects keep
// existing with a null category (ON DELETE SET NULL).
func (q *Queries) DeleteProjectCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM project_categories WHERE id = ?`, id)
	return err
}

// Project represents a project showcase entry with STAR narrative.
type Project struct {
	ID           int64
	Title        string
	Slug         string
	Summary      string
	CategoryID   sql.NullInt64
	StartDate    time.Time
	EndDate      sql.NullTime
	IsOngoing    bool
	Situation    string
	Task         string
	Action       string
	Result       string
	Technologies string // JSON array of strings
	GithubURL    sql.NullString
	LiveDemoURL  sql.NullString
	CaseStudyURL sql.NullString
	ThumbnailURL sql.NullString
	IsFeatured   bool
	Position     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const projectColumns = `p.id, p.title, p.slug, p.summary, p.category_id, p.start_date, p.end_date, p.is_ongoing,
	p.situation, p.task, p.action, p.result, p.technologies,
	p.github_url, p.live_demo_url, p.case_study_url, p.thumbnail_url,
	p.is_featured, p.position, p.created_at, p.updated_at`

const projectReturning = `id, title, slug, summary, category_id, start_date, end_date, is_ongoing,
	situation, task, action, result, technologies,
	github_url, live_demo_url, case_study_url, thumbnail_url,
	is_featured, position, created_at, updated_at`

func scanProject(row rowScanner) (Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Summary, &p.CategoryID, &p.StartDate, &p.EndDate, &p.IsOngoing,
		&p.Situation, &p.Task, &p.Action, &p.Result, &p.Technologies,
		&p.GithubURL, &p.LiveDemoURL, &p.CaseStudyURL, &p.ThumbnailURL,
		&p.IsFeatured, &p.Position, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func collectProjects(rows *sql.Rows) ([]Project, error) {
	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateProjectParams holds the fields for CreateProject.
type CreateProjectParams struct {
	Title        string
	Slug         string
	Summary      string
	CategoryID   sql.NullInt64
	StartDate    time.Time
	EndDate      sql.NullTime
	IsOngoing    bool
	Situation    string
	Task         string
	Action       string
	Result       string
	Technologies string
	GithubURL    sql.NullString
	LiveDemoURL  sql.NullString
	CaseStudyURL sql.NullString
	ThumbnailURL sql.NullString
	IsFeatured   bool
	Position     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateProject inserts a new project.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO projects (
		title, slug, summary, category_id, start_date, end_date, is_ongoing,
		situation, task, action, result, technologies,
		github_url, live_demo_url, case_study_url, thumbnail_url,
		is_featured, position, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+projectReturning,
		arg.Title, arg.Slug, arg.Summary, arg.CategoryID, arg.StartDate, arg.EndDate, arg.IsOngoing,
		arg.Situation, arg.Task, arg.Action, arg.Result, arg.Technologies,
		arg.GithubURL, arg.LiveDemoURL, arg.CaseStudyURL, arg.ThumbnailURL,
		arg.IsFeatured, arg.Position, arg.CreatedAt, arg.UpdatedAt,
	)
	p, err := scanProject(row)
	return p, wrapWriteErr(err)
}

// GetProjectByID fetches a project by primary key.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (Project, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = ?`, id)
	return scanProject(row)
}

// GetProjectBySlug fetches a project by slug.
func (q *Queries) GetProjectBySlug(ctx context.Context, slug string) (Project, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.slug = ?`, slug)
	return scanProject(row)
}

// ListProjectsParams holds the optional filters for ListProjects. Empty
// values mean "no filter". Search matches title, situation, and action
// case-insensitively.
type ListProjectsParams struct {
	CategorySlug string
	Search       string
	Limit        int64
	Offset       int64
}

const projectFilterWhere = `
	WHERE (? = '' OR p.category_id IN (SELECT id FROM project_categories WHERE slug = ?))
	  AND (? = '' OR p.title LIKE '%' || ? || '%' COLLATE NOCASE
	       OR p.situation LIKE '%' || ? || '%' COLLATE NOCASE
	       OR p.action LIKE '%' || ? || '%' COLLATE NOCASE)`

// ListProjects returns projects matching the filters, newest start date
// first, then display order.
func (q *Queries) ListProjects(ctx context.Context, arg ListProjectsParams) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects p`+projectFilterWhere+`
		ORDER BY p.start_date DESC, p.position
		LIMIT ? OFFSET ?`,
		arg.CategorySlug, arg.CategorySlug,
		arg.Search, arg.Search, arg.Search, arg.Search,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectProjects(rows)
}

// CountProjects counts projects matching the same filters as ListProjects.
func (q *Queries) CountProjects(ctx context.Context, arg ListProjectsParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects p`+projectFilterWhere,
		arg.CategorySlug, arg.CategorySlug,
		arg.Search, arg.Search, arg.Search, arg.Search,
	).Scan(&count)
	return count, err
}

// ListFeaturedProjects returns featured projects up to the given limit.
func (q *Queries) ListFeaturedProjects(ctx context.Context, limit int64) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects p
		WHERE p.is_featured = 1
		ORDER BY p.start_date DESC, p.position
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectProjects(rows)
}

// ListAllProjects returns every project ordered by ID, for export.
func (q *Queries) ListAllProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects p ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectProjects(rows)
}

// UpdateProjectParams holds the fields for UpdateProject. The slug is
// immutable once set and deliberately absent.
type UpdateProjectParams struct {
	ID           int64
	Title        string
	Summary      string
	CategoryID   sql.NullInt64
	StartDate    time.Time
	EndDate      sql.NullTime
	IsOngoing    bool
	Situation    string
	Task         string
	Action       string
	Result       string
	Technologies string
	GithubURL    sql.NullString
	LiveDemoURL  sql.NullString
	CaseStudyURL sql.NullString
	ThumbnailURL sql.NullString
	IsFeatured   bool
	Position     int64
	UpdatedAt    time.Time
}

// UpdateProject updates a project's mutable fields.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE projects SET
		title = ?, summary = ?, category_id = ?, start_date = ?, end_date = ?, is_ongoing = ?,
		situation = ?, task = ?, action = ?, result = ?, technologies = ?,
		github_url = ?, live_demo_url = ?, case_study_url = ?, thumbnail_url = ?,
		is_featured = ?, position = ?, updated_at = ?
	WHERE id = ?
	RETURNING `+projectReturning,
		arg.Title, arg.Summary, arg.CategoryID, arg.StartDate, arg.EndDate, arg.IsOngoing,
		arg.Situation, arg.Task, arg.Action, arg.Result, arg.Technologies,
		arg.GithubURL, arg.LiveDemoURL, arg.CaseStudyURL, arg.ThumbnailURL,
		arg.IsFeatured, arg.Position, arg.UpdatedAt, arg.ID,
	)
	p, err := scanProject(row)
	return p, wrapWriteErr(err)
}

// DeleteProject deletes a project; its images are removed by cascade.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

// ProjectImage represents an additional gallery image for a project.
type ProjectImage struct {
	ID        int64
	ProjectID int64
	ImageURL  string
	Caption   string
	Position  int64
}

// CreateProjectImageParams holds the fields for CreateProjectImage.
type CreateProjectImageParams struct {
	ProjectID int64
	ImageURL  string
	Caption   string
	Position  int64
}

// CreateProjectImage inserts a gallery image for a project.
func (q *Queries) CreateProjectImage(ctx context.Context, arg CreateProjectImageParams) (ProjectImage, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO project_images (project_id, image_url, caption, position)
		VALUES (?, ?, ?, ?)
		RETURNING id, project_id, image_url, caption, position`,
		arg.ProjectID, arg.ImageURL, arg.Caption, arg.Position,
	)
	var img ProjectImage
	err := row.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.Caption, &img.Position)
	return img, wrapWriteErr(err)
}

// ListProjectImages returns a project's gallery images in display order.
func (q *Queries) ListProjectImages(ctx context.Context, projectID int64) ([]ProjectImage, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, project_id, image_url, caption, position
		FROM project_images WHERE project_id = ? ORDER BY position`, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var images []ProjectImage
	for rows.Next() {
		var img ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.Caption, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteProjectImage deletes a single gallery image.
func (q *Queries) DeleteProjectImage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM project_images WHERE id = ?`, id)
	return err
}
