// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// BlogSeries groups ordered posts into a multi-part series.
type BlogSeries struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Position    int64
}

func scanBlogSeries(row rowScanner) (BlogSeries, error) {
	var s BlogSeries
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Position)
	return s, err
}

// CreateBlogSeriesParams holds the fields for CreateBlogSeries.
type CreateBlogSeriesParams struct {
	Name        string
	Slug        string
	Description string
	Position    int64
}

// CreateBlogSeries inserts a new blog series.
func (q *Queries) CreateBlogSeries(ctx context.Context, arg CreateBlogSeriesParams) (BlogSeries, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO blog_series (name, slug, description, position)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, slug, description, position`,
		arg.Name, arg.Slug, arg.Description, arg.Position,
	)
	s, err := scanBlogSeries(row)
	return s, wrapWriteErr(err)
}

// GetBlogSeriesBySlug fetches a blog series by slug.
func (q *Queries) GetBlogSeriesBySlug(ctx context.Context, slug string) (BlogSeries, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, name, slug, description, position FROM blog_series WHERE slug = ?`, slug)
	return scanBlogSeries(row)
}

// ListBlogSeries returns all blog series in display order.
func (q *Queries) ListBlogSeries(ctx context.Context) ([]BlogSeries, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name, slug, description, position
		FROM blog_series ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var series []BlogSeries
	for rows.Next() {
		s, err := scanBlogSeries(rows)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, rows.Err()
}

// DeleteBlogSeries deletes a series; its posts keep existing with a null
// series (ON DELETE SET NULL).
func (q *Queries) DeleteBlogSeries(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM blog_series WHERE id = ?`, id)
	return err
}

// BlogCategory represents a blog post category.
type BlogCategory struct {
	ID          int64
	Name        string
	Slug        string
	Description sql.NullString
}

func scanBlogCategory(row rowScanner) (BlogCategory, error) {
	var c BlogCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	return c, err
}

// CreateBlogCategoryParams holds the fields for CreateBlogCategory.
type CreateBlogCategoryParams struct {
	Name        string
	Slug        string
	Description sql.NullString
}

// CreateBlogCategory inserts a new blog category.
func (q *Queries) CreateBlogCategory(ctx context.Context, arg CreateBlogCategoryParams) (BlogCategory, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO blog_categories (name, slug, description)
		VALUES (?, ?, ?)
		RETURNING id, name, slug, description`,
		arg.Name, arg.Slug, arg.Description,
	)
	c, err := scanBlogCategory(row)
	return c, wrapWriteErr(err)
}

// GetBlogCategoryBySlug fetches a blog category by slug.
func (q *Queries) GetBlogCategoryBySlug(ctx context.Context, slug string) (BlogCategory, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, name, slug, description FROM blog_categories WHERE slug = ?`, slug)
	return scanBlogCategory(row)
}

// ListBlogCategories returns all blog categories ordered by name.
func (q *Queries) ListBlogCategories(ctx context.Context) ([]BlogCategory, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name, slug, description FROM blog_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var categories []BlogCategory
	for rows.Next() {
		c, err := scanBlogCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteBlogCategory deletes a category; its posts keep existing with a
// null category (ON DELETE SET NULL).
func (q *Queries) DeleteBlogCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM blog_categories WHERE id = ?`, id)
	return err
}

// BlogTag represents a blog post tag.
type BlogTag struct {
	ID   int64
	Name string
	Slug string
}

// CreateBlogTagParams holds the fields for CreateBlogTag.
type CreateBlogTagParams struct {
	Name string
	Slug string
}

// CreateBlogTag inserts a new blog tag.
func (q *Queries) CreateBlogTag(ctx context.Context, arg CreateBlogTagParams) (BlogTag, error) {
	var t BlogTag
	err := q.db.QueryRowContext(ctx, `INSERT INTO blog_tags (name, slug)
		VALUES (?, ?)
		RETURNING id, name, slug`,
		arg.Name, arg.Slug,
	).Scan(&t.ID, &t.Name, &t.Slug)
	return t, wrapWriteErr(err)
}

// GetBlogTagBySlug fetches a blog tag by slug.
func (q *Queries) GetBlogTagBySlug(ctx context.Context, slug string) (BlogTag, error) {
	var t BlogTag
	err := q.db.QueryRowContext(ctx, `SELECT id, name, slug FROM blog_tags WHERE slug = ?`, slug).
		Scan(&t.ID, &t.Name, &t.Slug)
	return t, err
}

// ListBlogTags returns all blog tags ordered by name.
func (q *Queries) ListBlogTags(ctx context.Context) ([]BlogTag, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name, slug FROM blog_tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tags []BlogTag
	for rows.Next() {
		var t BlogTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// DeleteBlogTag deletes a tag; post links are removed by cascade.
func (q *Queries) DeleteBlogTag(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM blog_tags WHERE id = ?`, id)
	return err
}

// BlogPost represents a blog post. Only published posts with a published
// date in the past are publicly visible.
type BlogPost struct {
	ID              int64
	Title           string
	Slug            string
	SeriesID        sql.NullInt64
	CategoryID      sql.NullInt64
	Excerpt         string
	Content         string
	Status          string
	PublishedDate   sql.NullTime
	MetaDescription string
	ReadingTime     int64
	ViewCount       int64
	IsFeatured      bool
	Position        int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const blogPostColumns = `b.id, b.title, b.slug, b.series_id, b.category_id, b.excerpt, b.content,
	b.status, b.published_date, b.meta_description, b.reading_time, b.view_count,
	b.is_featured, b.position, b.created_at, b.updated_at`

const blogPostReturning = `id, title, slug, series_id, category_id, excerpt, content,
	status, published_date, meta_description, reading_time, view_count,
	is_featured, position, created_at, updated_at`

func scanBlogPost(row rowScanner) (BlogPost, error) {
	var b BlogPost
	err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.SeriesID, &b.CategoryID, &b.Excerpt, &b.Content,
		&b.Status, &b.PublishedDate, &b.MetaDescription, &b.ReadingTime, &b.ViewCount,
		&b.IsFeatured, &b.Position, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func collectBlogPosts(rows *sql.Rows) ([]BlogPost, error) {
	var posts []BlogPost
	for rows.Next() {
		b, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, b)
	}
	return posts, rows.Err()
}

// CreateBlogPostParams holds the fields for CreateBlogPost.
type CreateBlogPostParams struct {
	Title           string
	Slug            string
	SeriesID        sql.NullInt64
	CategoryID      sql.NullInt64
	Excerpt         string
	Content         string
	Status          string
	PublishedDate   sql.NullTime
	MetaDescription string
	ReadingTime     int64
	IsFeatured      bool
	Position        int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateBlogPost inserts a new blog post with a zero view count.
func (q *Queries) CreateBlogPost(ctx context.Context, arg CreateBlogPostParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO blog_posts (
		title, slug, series_id, category_id, excerpt, content,
		status, published_date, meta_description, reading_time,
		is_featured, position, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING `+blogPostReturning,
		arg.Title, arg.Slug, arg.SeriesID, arg.CategoryID, arg.Excerpt, arg.Content,
		arg.Status, arg.PublishedDate, arg.MetaDescription, arg.ReadingTime,
		arg.IsFeatured, arg.Position, arg.CreatedAt, arg.UpdatedAt,
	)
	b, err := scanBlogPost(row)
	return b, wrapWriteErr(err)
}

// GetBlogPostByID fetches a blog post by primary key regardless of status.
func (q *Queries) GetBlogPostByID(ctx context.Context, id int64) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts b WHERE b.id = ?`, id)
	return scanBlogPost(row)
}

// GetPublishedPostBySlug fetches a post by slug only if it is published
// with a non-future published date.
func (q *Queries) GetPublishedPostBySlug(ctx context.Context, slug string, now time.Time) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts b
		WHERE b.slug = ? AND b.status = 'published'
		  AND b.published_date IS NOT NULL AND b.published_date <= ?`, slug, now)
	return scanBlogPost(row)
}

// ListPublishedPostsParams holds the optional filters for
// ListPublishedPosts. Empty slugs mean "no filter".
type ListPublishedPostsParams struct {
	CategorySlug string
	TagSlug      string
	SeriesSlug   string
	Now          time.Time
	Limit        int64
	Offset       int64
}

const publishedPostWhere = `
	WHERE b.status = 'published'
	  AND b.published_date IS NOT NULL AND b.published_date <= ?
	  AND (? = '' OR b.category_id IN (SELECT id FROM blog_categories WHERE slug = ?))
	  AND (? = '' OR b.series_id IN (SELECT id FROM blog_series WHERE slug = ?))
	  AND (? = '' OR b.id IN (
		SELECT pt.post_id FROM blog_post_tags pt
		JOIN blog_tags t ON t.id = pt.tag_id
		WHERE t.slug = ?))`

// ListPublishedPosts returns publicly visible posts matching the filters,
// newest published first.
func (q *Queries) ListPublishedPosts(ctx context.Context, arg ListPublishedPostsParams) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts b`+publishedPostWhere+`
		ORDER BY b.published_date DESC, b.created_at DESC
		LIMIT ? OFFSET ?`,
		arg.Now,
		arg.CategorySlug, arg.CategorySlug,
		arg.SeriesSlug, arg.SeriesSlug,
		arg.TagSlug, arg.TagSlug,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectBlogPosts(rows)
}

// CountPublishedPosts counts posts matching the same filters as
// ListPublishedPosts.
func (q *Queries) CountPublishedPosts(ctx context.Context, arg ListPublishedPostsParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts b`+publishedPostWhere,
		arg.Now,
		arg.CategorySlug, arg.CategorySlug,
		arg.SeriesSlug, arg.SeriesSlug,
		arg.TagSlug, arg.TagSlug,
	).Scan(&count)
	return count, err
}

// ListPostsInSeries returns published posts of one series in series order.
func (q *Queries) ListPostsInSeries(ctx context.Context, seriesID int64, now time.Time) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts b
		WHERE b.series_id = ? AND b.status = 'published'
		  AND b.published_date IS NOT NULL AND b.published_date <= ?
		ORDER BY b.position, b.published_date`, seriesID, now)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectBlogPosts(rows)
}

// ListAllBlogPosts returns every post ordered by ID, for export.
func (q *Queries) ListAllBlogPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts b ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectBlogPosts(rows)
}

// UpdateBlogPostParams holds the fields for UpdateBlogPost. The slug is
// immutable once set and deliberately absent.
type UpdateBlogPostParams struct {
	ID              int64
	Title           string
	SeriesID        sql.NullInt64
	CategoryID      sql.NullInt64
	Excerpt         string
	Content         string
	Status          string
	PublishedDate   sql.NullTime
	MetaDescription string
	ReadingTime     int64
	IsFeatured      bool
	Position        int64
	UpdatedAt       time.Time
}

// UpdateBlogPost updates a post's mutable fields. The view count is
// managed separately through IncrementPostViewCount.
func (q *Queries) UpdateBlogPost(ctx context.Context, arg UpdateBlogPostParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, `UPDATE blog_posts SET
		title = ?, series_id = ?, category_id = ?, excerpt = ?, content = ?,
		status = ?, published_date = ?, meta_description = ?, reading_time = ?,
		is_featured = ?, position = ?, updated_at = ?
	WHERE id = ?
	RETURNING `+blogPostReturning,
		arg.Title, arg.SeriesID, arg.CategoryID, arg.Excerpt, arg.Content,
		arg.Status, arg.PublishedDate, arg.MetaDescription, arg.ReadingTime,
		arg.IsFeatured, arg.Position, arg.UpdatedAt, arg.ID,
	)
	b, err := scanBlogPost(row)
	return b, wrapWriteErr(err)
}

// IncrementPostViewCount bumps a post's view counter in a single UPDATE
// so concurrent reads never lose increments.
func (q *Queries) IncrementPostViewCount(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `UPDATE blog_posts SET view_count = view_count + 1 WHERE id = ?`, id)
	return err
}

// DeleteBlogPost deletes a post; tag links are removed by cascade.
func (q *Queries) DeleteBlogPost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	return err
}

// AddPostTag links a tag to a post. Adding an existing link is a no-op.
func (q *Queries) AddPostTag(ctx context.Context, postID, tagID int64) error {
	_, err := q.db.ExecContext(ctx, `INSERT OR IGNORE INTO blog_post_tags (post_id, tag_id) VALUES (?, ?)`, postID, tagID)
	return wrapWriteErr(err)
}

// RemovePostTag unlinks a tag from a post.
func (q *Queries) RemovePostTag(ctx context.Context, postID, tagID int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM blog_post_tags WHERE post_id = ? AND tag_id = ?`, postID, tagID)
	return err
}

// GetTagsForPost returns a post's tags ordered by name.
func (q *Queries) GetTagsForPost(ctx context.Context, postID int64) ([]BlogTag, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT t.id, t.name, t.slug FROM blog_tags t
		JOIN blog_post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = ?
		ORDER BY t.name`, postID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tags []BlogTag
	for rows.Next() {
		var t BlogTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
