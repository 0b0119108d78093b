// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// ProjectCategoryResponse is the JSON shape for a project category.
type ProjectCategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func toProjectCategoryResponse(c store.ProjectCategory) ProjectCategoryResponse {
	return ProjectCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: util.NullStringToPtr(c.Description),
	}
}

// ProjectResponse is the JSON shape for a project.
type ProjectResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary"`
	CategoryID   *int64    `json:"category_id"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsOngoing    bool      `json:"is_ongoing"`
	Situation    string    `json:"situation"`
	Task         string    `json:"task"`
	Action       string    `json:"action"`
	Result       string    `json:"result"`
	Technologies []string  `json:"technologies"`
	GithubURL    *string   `json:"github_url"`
	LiveDemoURL  *string   `json:"live_demo_url"`
	CaseStudyURL *string   `json:"case_study_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	IsFeatured   bool      `json:"is_featured"`
	Position     int64     `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProjectResponse(p store.Project) ProjectResponse {
	var technologies []string
	_ = json.Unmarshal([]byte(p.Technologies), &technologies)
	if technologies == nil {
		technologies = []string{}
	}
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Summary:      p.Summary,
		CategoryID:   util.NullInt64ToPtr(p.CategoryID),
		StartDate:    p.StartDate.Format(dateLayout),
		EndDate:      formatDatePtr(p.EndDate),
		IsOngoing:    p.IsOngoing,
		Situation:    p.Situation,
		Task:         p.Task,
		Action:       p.Action,
		Result:       p.Result,
		Technologies: technologies,
		GithubURL:    util.NullStringToPtr(p.GithubURL),
		LiveDemoURL:  util.NullStringToPtr(p.LiveDemoURL),
		CaseStudyURL: util.NullStringToPtr(p.CaseStudyURL),
		ThumbnailURL: util.NullStringToPtr(p.ThumbnailURL),
		IsFeatured:   p.IsFeatured,
		Position:     p.Position,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProjectResponses(projects []store.Project) []ProjectResponse {
	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	return resp
}

// ProjectCategoryRequest is the JSON body for creating a project category.
type ProjectCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ListProjectCategories returns all project categories.
func (h *Handler) ListProjectCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.queries.ListProjectCategories(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list project categories")
		return
	}

	resp := make([]ProjectCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toProjectCategoryResponse(c))
	}
	WriteSuccess(w, resp, nil)
}

// CreateProjectCategory creates a project category.
func (h *Handler) CreateProjectCategory(w http.ResponseWriter, r *http.Request) {
	var req ProjectCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	category, err := h.queries.CreateProjectCategory(r.Context(), store.CreateProjectCategoryParams{
		Name:        req.Name,
		Slug:        util.Slugify(req.Name),
		Description: util.NullStringFromPtr(req.Description),
	})
	if err != nil {
		writeStoreError(w, err, "project category")
		return
	}
	WriteCreated(w, toProjectCategoryResponse(category))
}

// DeleteProjectCategory deletes a project category. Its projects stay and
// lose the category reference.
func (h *Handler) DeleteProjectCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := requireEntityByID(w, r, "project category", func(id int64) (store.ProjectCategory, error) {
		return h.queries.GetProjectCategoryByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteProjectCategory(r.Context(), category.ID); err != nil {
		WriteInternalError(w, "Failed to delete project category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListProjects returns projects with category and search filters and
// page-number pagination.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, projectsPerPage, maxPerPage)

	params := store.ListProjectsParams{
		CategorySlug: r.URL.Query().Get("category"),
		Search:       r.URL.Query().Get("q"),
		Limit:        int64(perPage),
		Offset:       int64((page - 1) * perPage),
	}

	total, err := h.queries.CountProjects(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list projects")
		return
	}
	projects, err := h.queries.ListProjects(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list projects")
		return
	}

	WriteSuccess(w, toProjectResponses(projects), &Meta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   handler.CalculateTotalPages(int(total), perPage),
	})
}

// ListFeaturedProjects returns the featured projects.
func (h *Handler) ListFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListFeaturedProjects(r.Context(), featuredLimit)
	if err != nil {
		WriteInternalError(w, "Failed to list featured projects")
		return
	}
	WriteSuccess(w, toProjectResponses(projects), nil)
}

// GetProject returns one project by ID.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toProjectResponse(project), nil)
}

// ProjectRequest is the JSON body for creating or updating a project.
type ProjectRequest struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	CategoryID   *int64   `json:"category_id"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsOngoing    bool     `json:"is_ongoing"`
	Situation    string   `json:"situation"`
	Task         string   `json:"task"`
	Action       string   `json:"action"`
	Result       string   `json:"result"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	LiveDemoURL  *string  `json:"live_demo_url"`
	CaseStudyURL *string  `json:"case_study_url"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	IsFeatured   bool     `json:"is_featured"`
	Position     int64    `json:"position"`
}

func (req ProjectRequest) validate() (handler.ValidationErrors, time.Time, sql.NullTime) {
	v := handler.ValidationErrors{}
	v.Require("title", req.Title)
	v.Require("summary", req.Summary)
	v.Require("situation", req.Situation)
	v.Require("task", req.Task)
	v.Require("action", req.Action)
	v.Require("result", req.Result)

	startDate := parseDate(v, "start_date", req.StartDate)
	endDate := parseDatePtr(v, "end_date", req.EndDate)
	if endDate.Valid && endDate.Time.Before(startDate) {
		v["end_date"] = "Must not be before start_date"
	}
	if req.IsOngoing && endDate.Valid {
		v["end_date"] = "An ongoing project cannot have an end date"
	}
	return v, startDate, endDate
}

func marshalTechnologies(technologies []string) string {
	if technologies == nil {
		technologies = []string{}
	}
	b, err := json.Marshal(technologies)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// CreateProject creates a project. The slug is derived from the title and
// never changes afterwards.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, startDate, endDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	now := time.Now()
	project, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:        req.Title,
		Slug:         util.Slugify(req.Title),
		Summary:      req.Summary,
		CategoryID:   util.NullInt64FromPtr(req.CategoryID),
		StartDate:    startDate,
		EndDate:      endDate,
		IsOngoing:    req.IsOngoing,
		Situation:    req.Situation,
		Task:         req.Task,
		Action:       req.Action,
		Result:       req.Result,
		Technologies: marshalTechnologies(req.Technologies),
		GithubURL:    util.NullStringFromPtr(req.GithubURL),
		LiveDemoURL:  util.NullStringFromPtr(req.LiveDemoURL),
		CaseStudyURL: util.NullStringFromPtr(req.CaseStudyURL),
		ThumbnailURL: util.NullStringFromPtr(req.ThumbnailURL),
		IsFeatured:   req.IsFeatured,
		Position:     req.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}
	WriteCreated(w, toProjectResponse(project))
}

// UpdateProject updates a project's mutable fields. The slug stays fixed.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, startDate, endDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	project, err := h.queries.UpdateProject(r.Context(), store.UpdateProjectParams{
		ID:           current.ID,
		Title:        req.Title,
		Summary:      req.Summary,
		CategoryID:   util.NullInt64FromPtr(req.CategoryID),
		StartDate:    startDate,
		EndDate:      endDate,
		IsOngoing:    req.IsOngoing,
		Situation:    req.Situation,
		Task:         req.Task,
		Action:       req.Action,
		Result:       req.Result,
		Technologies: marshalTechnologies(req.Technologies),
		GithubURL:    util.NullStringFromPtr(req.GithubURL),
		LiveDemoURL:  util.NullStringFromPtr(req.LiveDemoURL),
		CaseStudyURL: util.NullStringFromPtr(req.CaseStudyURL),
		ThumbnailURL: util.NullStringFromPtr(req.ThumbnailURL),
		IsFeatured:   req.IsFeatured,
		Position:     req.Position,
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}
	WriteSuccess(w, toProjectResponse(project), nil)
}

// DeleteProject deletes a project along with its images and skill links.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	project, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteProject(r.Context(), project.ID); err != nil {
		WriteInternalError(w, "Failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProjectImageResponse is the JSON shape for a project gallery image.
type ProjectImageResponse struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	Position  int64  `json:"position"`
}

// ProjectImageRequest is the JSON body for adding a project image.
type ProjectImageRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Position int64  `json:"position"`
}

// ListProjectImages returns a project's gallery images.
func (h *Handler) ListProjectImages(w http.ResponseWriter, r *http.Request) {
	project, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}

	images, err := h.queries.ListProjectImages(r.Context(), project.ID)
	if err != nil {
		WriteInternalError(w, "Failed to list project images")
		return
	}

	resp := make([]ProjectImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, ProjectImageResponse(img))
	}
	WriteSuccess(w, resp, nil)
}

// CreateProjectImage adds a gallery image to a project.
func (h *Handler) CreateProjectImage(w http.ResponseWriter, r *http.Request) {
	project, ok := requireEntityByID(w, r, "project", func(id int64) (store.Project, error) {
		return h.queries.GetProjectByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req ProjectImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("image_url", req.ImageURL)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	image, err := h.queries.CreateProjectImage(r.Context(), store.CreateProjectImageParams{
		ProjectID: project.ID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		Position:  req.Position,
	})
	if err != nil {
		writeStoreError(w, err, "project image")
		return
	}
	WriteCreated(w, ProjectImageResponse(image))
}
