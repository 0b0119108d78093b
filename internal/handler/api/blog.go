// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// BlogSeriesResponse is the JSON shape for a blog series.
type BlogSeriesResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Position    int64  `json:"position"`
}

// BlogCategoryResponse is the JSON shape for a blog category.
type BlogCategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// BlogTagResponse is the JSON shape for a blog tag.
type BlogTagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toBlogTagResponses(tags []store.BlogTag) []BlogTagResponse {
	resp := make([]BlogTagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, BlogTagResponse(t))
	}
	return resp
}

// BlogPostResponse is the JSON shape for a blog post. ContentHTML and
// Tags are filled only on single-post reads.
type BlogPostResponse struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	SeriesID        *int64            `json:"series_id"`
	CategoryID      *int64            `json:"category_id"`
	Excerpt         string            `json:"excerpt"`
	Content         string            `json:"content"`
	ContentHTML     string            `json:"content_html,omitempty"`
	Status          string            `json:"status"`
	PublishedDate   *string           `json:"published_date"`
	MetaDescription string            `json:"meta_description"`
	ReadingTime     int64             `json:"reading_time"`
	ViewCount       int64             `json:"view_count"`
	IsFeatured      bool              `json:"is_featured"`
	Position        int64             `json:"position"`
	Tags            []BlogTagResponse `json:"tags,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func toBlogPostResponse(b store.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:              b.ID,
		Title:           b.Title,
		Slug:            b.Slug,
		SeriesID:        util.NullInt64ToPtr(b.SeriesID),
		CategoryID:      util.NullInt64ToPtr(b.CategoryID),
		Excerpt:         b.Excerpt,
		Content:         b.Content,
		Status:          b.Status,
		PublishedDate:   formatDatePtr(b.PublishedDate),
		MetaDescription: b.MetaDescription,
		ReadingTime:     b.ReadingTime,
		ViewCount:       b.ViewCount,
		IsFeatured:      b.IsFeatured,
		Position:        b.Position,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBlogPostResponses(posts []store.BlogPost) []BlogPostResponse {
	resp := make([]BlogPostResponse, 0, len(posts))
	for _, b := range posts {
		resp = append(resp, toBlogPostResponse(b))
	}
	return resp
}

// BlogSeriesRequest is the JSON body for creating a blog series.
type BlogSeriesRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int64  `json:"position"`
}

// ListBlogSeries returns all blog series.
func (h *Handler) ListBlogSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.queries.ListBlogSeries(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list blog series")
		return
	}

	resp := make([]BlogSeriesResponse, 0, len(series))
	for _, s := range series {
		resp = append(resp, BlogSeriesResponse(s))
	}
	WriteSuccess(w, resp, nil)
}

// CreateBlogSeries creates a blog series.
func (h *Handler) CreateBlogSeries(w http.ResponseWriter, r *http.Request) {
	var req BlogSeriesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	series, err := h.queries.CreateBlogSeries(r.Context(), store.CreateBlogSeriesParams{
		Name:        req.Name,
		Slug:        util.Slugify(req.Name),
		Description: req.Description,
		Position:    req.Position,
	})
	if err != nil {
		writeStoreError(w, err, "blog series")
		return
	}
	WriteCreated(w, BlogSeriesResponse(series))
}

// DeleteBlogSeries deletes a blog series. Its posts stay and lose the
// series reference.
func (h *Handler) DeleteBlogSeries(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid blog series ID", nil)
		return
	}

	if err := h.queries.DeleteBlogSeries(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete blog series")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BlogCategoryRequest is the JSON body for creating a blog category.
type BlogCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ListBlogCategories returns all blog categories.
func (h *Handler) ListBlogCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.queries.ListBlogCategories(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list blog categories")
		return
	}

	resp := make([]BlogCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, BlogCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: util.NullStringToPtr(c.Description),
		})
	}
	WriteSuccess(w, resp, nil)
}

// CreateBlogCategory creates a blog category.
func (h *Handler) CreateBlogCategory(w http.ResponseWriter, r *http.Request) {
	var req BlogCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	category, err := h.queries.CreateBlogCategory(r.Context(), store.CreateBlogCategoryParams{
		Name:        req.Name,
		Slug:        util.Slugify(req.Name),
		Description: util.NullStringFromPtr(req.Description),
	})
	if err != nil {
		writeStoreError(w, err, "blog category")
		return
	}
	WriteCreated(w, BlogCategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: util.NullStringToPtr(category.Description),
	})
}

// DeleteBlogCategory deletes a blog category. Its posts stay and lose
// the category reference.
func (h *Handler) DeleteBlogCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid blog category ID", nil)
		return
	}

	if err := h.queries.DeleteBlogCategory(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete blog category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BlogTagRequest is the JSON body for creating a blog tag.
type BlogTagRequest struct {
	Name string `json:"name"`
}

// ListBlogTags returns all blog tags.
func (h *Handler) ListBlogTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.queries.ListBlogTags(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list blog tags")
		return
	}
	WriteSuccess(w, toBlogTagResponses(tags), nil)
}

// CreateBlogTag creates a blog tag.
func (h *Handler) CreateBlogTag(w http.ResponseWriter, r *http.Request) {
	var req BlogTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	tag, err := h.queries.CreateBlogTag(r.Context(), store.CreateBlogTagParams{
		Name: req.Name,
		Slug: util.Slugify(req.Name),
	})
	if err != nil {
		writeStoreError(w, err, "blog tag")
		return
	}
	WriteCreated(w, BlogTagResponse(tag))
}

// DeleteBlogTag deletes a blog tag and its post links.
func (h *Handler) DeleteBlogTag(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid blog tag ID", nil)
		return
	}

	if err := h.queries.DeleteBlogTag(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete blog tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPublishedPosts returns publicly visible posts with category, tag,
// and series filters and page-number pagination.
func (h *Handler) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, blogPostsPerPage, maxPerPage)

	params := store.ListPublishedPostsParams{
		CategorySlug: r.URL.Query().Get("category"),
		TagSlug:      r.URL.Query().Get("tag"),
		SeriesSlug:   r.URL.Query().Get("series"),
		Now:          time.Now(),
		Limit:        int64(perPage),
		Offset:       int64((page - 1) * perPage),
	}

	total, err := h.queries.CountPublishedPosts(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list blog posts")
		return
	}
	posts, err := h.queries.ListPublishedPosts(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list blog posts")
		return
	}

	WriteSuccess(w, toBlogPostResponses(posts), &Meta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   handler.CalculateTotalPages(int(total), perPage),
	})
}

// GetPublishedPost returns a published post by slug with rendered HTML
// content and tags, bumping its view counter.
func (h *Handler) GetPublishedPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.queries.GetPublishedPostBySlug(r.Context(), slug, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Post not found")
		} else {
			WriteInternalError(w, "Failed to retrieve post")
		}
		return
	}

	// A failed counter bump must not block the read.
	if err := h.queries.IncrementPostViewCount(r.Context(), post.ID); err != nil {
		slog.Warn("incrementing post view count", "post_id", post.ID, "error", err)
	} else {
		post.ViewCount++
	}

	resp := toBlogPostResponse(post)
	html, err := service.RenderMarkdown(post.Content)
	if err != nil {
		slog.Warn("rendering post content", "post_id", post.ID, "error", err)
	} else {
		resp.ContentHTML = html
	}

	tags, err := h.queries.GetTagsForPost(r.Context(), post.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve post tags")
		return
	}
	resp.Tags = toBlogTagResponses(tags)

	WriteSuccess(w, resp, nil)
}

// GetBlogPost returns one post by ID regardless of status.
func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := requireEntityByID(w, r, "post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(r.Context(), id)
	})
	if !ok {
		return
	}

	resp := toBlogPostResponse(post)
	tags, err := h.queries.GetTagsForPost(r.Context(), post.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve post tags")
		return
	}
	resp.Tags = toBlogTagResponses(tags)
	WriteSuccess(w, resp, nil)
}

// BlogPostRequest is the JSON body for creating or updating a blog post.
type BlogPostRequest struct {
	Title           string  `json:"title"`
	SeriesID        *int64  `json:"series_id"`
	CategoryID      *int64  `json:"category_id"`
	Excerpt         string  `json:"excerpt"`
	Content         string  `json:"content"`
	Status          string  `json:"status"`
	PublishedDate   *string `json:"published_date"`
	MetaDescription string  `json:"meta_description"`
	ReadingTime     int64   `json:"reading_time"`
	IsFeatured      bool    `json:"is_featured"`
	Position        int64   `json:"position"`
}

func (req BlogPostRequest) validate() (handler.ValidationErrors, sql.NullTime) {
	v := handler.ValidationErrors{}
	v.Require("title", req.Title)
	v.Require("content", req.Content)
	v.Require("status", req.Status)
	v.OneOf("status", req.Status, model.PostStatuses)

	publishedDate := parseDatePtr(v, "published_date", req.PublishedDate)
	return v, publishedDate
}

// resolvePublication fills in publication defaults: a post published
// without an explicit date gets the current time, and the reading time
// is estimated from the content when not provided.
func resolvePublication(req BlogPostRequest, publishedDate sql.NullTime, now time.Time) (sql.NullTime, int64) {
	if req.Status == model.PostStatusPublished && !publishedDate.Valid {
		publishedDate = sql.NullTime{Time: now, Valid: true}
	}
	readingTime := req.ReadingTime
	if readingTime <= 0 {
		readingTime = int64(service.EstimateReadingTime(req.Content))
	}
	return publishedDate, readingTime
}

// CreateBlogPost creates a blog post. The slug is derived from the title
// and never changes afterwards.
func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, publishedDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	now := time.Now()
	publishedDate, readingTime := resolvePublication(req, publishedDate, now)

	post, err := h.queries.CreateBlogPost(r.Context(), store.CreateBlogPostParams{
		Title:           req.Title,
		Slug:            util.Slugify(req.Title),
		SeriesID:        util.NullInt64FromPtr(req.SeriesID),
		CategoryID:      util.NullInt64FromPtr(req.CategoryID),
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Status:          req.Status,
		PublishedDate:   publishedDate,
		MetaDescription: req.MetaDescription,
		ReadingTime:     readingTime,
		IsFeatured:      req.IsFeatured,
		Position:        req.Position,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		writeStoreError(w, err, "post")
		return
	}
	WriteCreated(w, toBlogPostResponse(post))
}

// UpdateBlogPost updates a post's mutable fields. The slug stays fixed,
// and a publish date set on an earlier publish is never cleared by a
// later update that omits it.
func (h *Handler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, publishedDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	if !publishedDate.Valid && current.PublishedDate.Valid {
		publishedDate = current.PublishedDate
	}
	publishedDate, readingTime := resolvePublication(req, publishedDate, time.Now())

	post, err := h.queries.UpdateBlogPost(r.Context(), store.UpdateBlogPostParams{
		ID:              current.ID,
		Title:           req.Title,
		SeriesID:        util.NullInt64FromPtr(req.SeriesID),
		CategoryID:      util.NullInt64FromPtr(req.CategoryID),
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Status:          req.Status,
		PublishedDate:   publishedDate,
		MetaDescription: req.MetaDescription,
		ReadingTime:     readingTime,
		IsFeatured:      req.IsFeatured,
		Position:        req.Position,
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "post")
		return
	}
	WriteSuccess(w, toBlogPostResponse(post), nil)
}

// DeleteBlogPost deletes a post and its tag links.
func (h *Handler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := requireEntityByID(w, r, "post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteBlogPost(r.Context(), post.ID); err != nil {
		WriteInternalError(w, "Failed to delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostTagRequest names the tag to link to a post.
type PostTagRequest struct {
	TagID int64 `json:"tag_id"`
}

// AddPostTag links a tag to a post.
func (h *Handler) AddPostTag(w http.ResponseWriter, r *http.Request) {
	post, ok := requireEntityByID(w, r, "post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req PostTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.queries.AddPostTag(r.Context(), post.ID, req.TagID); err != nil {
		writeStoreError(w, err, "post tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemovePostTag unlinks a tag from a post.
func (h *Handler) RemovePostTag(w http.ResponseWriter, r *http.Request) {
	post, ok := requireEntityByID(w, r, "post", func(id int64) (store.BlogPost, error) {
		return h.queries.GetBlogPostByID(r.Context(), id)
	})
	if !ok {
		return
	}

	tagID, err := strconv.ParseInt(chi.URLParam(r, "tagID"), 10, 64)
	if err != nil || tagID < 1 {
		WriteBadRequest(w, "Invalid tag ID", nil)
		return
	}

	if err := h.queries.RemovePostTag(r.Context(), post.ID, tagID); err != nil {
		WriteInternalError(w, "Failed to remove post tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
