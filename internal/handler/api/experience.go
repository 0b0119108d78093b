// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// ExperienceResponse is the JSON shape for an experience entry. Duration
// is derived from the date range at read time.
type ExperienceResponse struct {
	ID             int64     `json:"id"`
	Role           string    `json:"role"`
	Company        string    `json:"company"`
	CompanyURL     *string   `json:"company_url"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	IsCurrent      bool      `json:"is_current"`
	Duration       string    `json:"duration"`
	Situation      string    `json:"situation"`
	Task           string    `json:"task"`
	Action         string    `json:"action"`
	Result         string    `json:"result"`
	Position       int64     `json:"position"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toExperienceResponse(e store.Experience) ExperienceResponse {
	end := time.Now()
	if e.EndDate.Valid {
		end = e.EndDate.Time
	}
	return ExperienceResponse{
		ID:             e.ID,
		Role:           e.Role,
		Company:        e.Company,
		CompanyURL:     util.NullStringToPtr(e.CompanyURL),
		Location:       e.Location,
		EmploymentType: e.EmploymentType,
		StartDate:      e.StartDate.Format(dateLayout),
		EndDate:        formatDatePtr(e.EndDate),
		IsCurrent:      e.IsCurrent,
		Duration:       model.Duration(e.StartDate, end),
		Situation:      e.Situation,
		Task:           e.Task,
		Action:         e.Action,
		Result:         e.Result,
		Position:       e.Position,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toExperienceResponses(entries []store.Experience) []ExperienceResponse {
	resp := make([]ExperienceResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toExperienceResponse(e))
	}
	return resp
}

// ListExperiences returns all experience entries with derived durations.
func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queries.ListExperiences(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list experience entries")
		return
	}
	WriteSuccess(w, toExperienceResponses(entries), nil)
}

// GetExperience returns one experience entry by ID.
func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	entry, ok := requireEntityByID(w, r, "experience entry", func(id int64) (store.Experience, error) {
		return h.queries.GetExperienceByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toExperienceResponse(entry), nil)
}

// ExperienceRequest is the JSON body for creating or updating an
// experience entry.
type ExperienceRequest struct {
	Role           string  `json:"role"`
	Company        string  `json:"company"`
	CompanyURL     *string `json:"company_url"`
	Location       string  `json:"location"`
	EmploymentType string  `json:"employment_type"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
	IsCurrent      bool    `json:"is_current"`
	Situation      string  `json:"situation"`
	Task           string  `json:"task"`
	Action         string  `json:"action"`
	Result         string  `json:"result"`
	Position       int64   `json:"position"`
}

func (req ExperienceRequest) validate() (handler.ValidationErrors, time.Time, sql.NullTime) {
	v := handler.ValidationErrors{}
	v.Require("role", req.Role)
	v.Require("company", req.Company)
	v.Require("situation", req.Situation)
	v.Require("task", req.Task)
	v.Require("action", req.Action)
	v.Require("result", req.Result)

	startDate := parseDate(v, "start_date", req.StartDate)
	endDate := parseDatePtr(v, "end_date", req.EndDate)
	if endDate.Valid && endDate.Time.Before(startDate) {
		v["end_date"] = "Must not be before start_date"
	}
	if req.IsCurrent && endDate.Valid {
		v["end_date"] = "A current position cannot have an end date"
	}
	return v, startDate, endDate
}

// CreateExperience creates an experience entry.
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req ExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, startDate, endDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	now := time.Now()
	entry, err := h.queries.CreateExperience(r.Context(), store.CreateExperienceParams{
		Role:           req.Role,
		Company:        req.Company,
		CompanyURL:     util.NullStringFromPtr(req.CompanyURL),
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		StartDate:      startDate,
		EndDate:        endDate,
		IsCurrent:      req.IsCurrent,
		Situation:      req.Situation,
		Task:           req.Task,
		Action:         req.Action,
		Result:         req.Result,
		Position:       req.Position,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		writeStoreError(w, err, "experience entry")
		return
	}
	WriteCreated(w, toExperienceResponse(entry))
}

// UpdateExperience updates an experience entry.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "experience entry", func(id int64) (store.Experience, error) {
		return h.queries.GetExperienceByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req ExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, startDate, endDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	entry, err := h.queries.UpdateExperience(r.Context(), store.UpdateExperienceParams{
		ID:             current.ID,
		Role:           req.Role,
		Company:        req.Company,
		CompanyURL:     util.NullStringFromPtr(req.CompanyURL),
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		StartDate:      startDate,
		EndDate:        endDate,
		IsCurrent:      req.IsCurrent,
		Situation:      req.Situation,
		Task:           req.Task,
		Action:         req.Action,
		Result:         req.Result,
		Position:       req.Position,
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "experience entry")
		return
	}
	WriteSuccess(w, toExperienceResponse(entry), nil)
}

// DeleteExperience deletes an experience entry.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	entry, ok := requireEntityByID(w, r, "experience entry", func(id int64) (store.Experience, error) {
		return h.queries.GetExperienceByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteExperience(r.Context(), entry.ID); err != nil {
		WriteInternalError(w, "Failed to delete experience entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
