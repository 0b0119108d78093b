// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// EducationResponse is the JSON shape for an education entry.
type EducationResponse struct {
	ID           int64     `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	Description  *string   `json:"description"`
	Gpa          *float64  `json:"gpa"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toEducationResponse(e store.Education) EducationResponse {
	return EducationResponse{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate.Format(dateLayout),
		EndDate:      formatDatePtr(e.EndDate),
		IsCurrent:    e.IsCurrent,
		Description:  util.NullStringToPtr(e.Description),
		Gpa:          util.NullFloat64ToPtr(e.Gpa),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ListEducation returns all education entries.
func (h *Handler) ListEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queries.ListEducation(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list education entries")
		return
	}

	resp := make([]EducationResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEducationResponse(e))
	}
	WriteSuccess(w, resp, nil)
}

// GetEducation returns one education entry by ID.
func (h *Handler) GetEducation(w http.ResponseWriter, r *http.Request) {
	entry, ok := requireEntityByID(w, r, "education entry", func(id int64) (store.Education, error) {
		return h.queries.GetEducationByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toEducationResponse(entry), nil)
}

// EducationRequest is the JSON body for creating or updating an education
// entry.
type EducationRequest struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"field_of_study"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	Description  *string  `json:"description"`
	Gpa          *float64 `json:"gpa"`
}

func (req EducationRequest) validate() (handler.ValidationErrors, time.Time, sql.NullTime) {
	v := handler.ValidationErrors{}
	v.Require("institution", req.Institution)
	v.Require("degree", req.Degree)

	startDate := parseDate(v, "start_date", req.StartDate)
	endDate := parseDatePtr(v, "end_date", req.EndDate)
	if endDate.Valid && endDate.Time.Before(startDate) {
		v["end_date"] = "Must not be before start_date"
	}
	return v, startDate, endDate
}

// CreateEducation creates an education entry.
func (h *Handler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var req EducationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, startDate, endDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	now := time.Now()
	entry, err := h.queries.CreateEducation(r.Context(), store.CreateEducationParams{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    startDate,
		EndDate:      endDate,
		IsCurrent:    req.IsCurrent,
		Description:  util.NullStringFromPtr(req.Description),
		Gpa:          util.NullFloat64FromPtr(req.Gpa),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		writeStoreError(w, err, "education entry")
		return
	}
	WriteCreated(w, toEducationResponse(entry))
}

// UpdateEducation updates an education entry.
func (h *Handler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "education entry", func(id int64) (store.Education, error) {
		return h.queries.GetEducationByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req EducationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, startDate, endDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	entry, err := h.queries.UpdateEducation(r.Context(), store.UpdateEducationParams{
		ID:           current.ID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    startDate,
		EndDate:      endDate,
		IsCurrent:    req.IsCurrent,
		Description:  util.NullStringFromPtr(req.Description),
		Gpa:          util.NullFloat64FromPtr(req.Gpa),
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "education entry")
		return
	}
	WriteSuccess(w, toEducationResponse(entry), nil)
}

// DeleteEducation deletes an education entry.
func (h *Handler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	entry, ok := requireEntityByID(w, r, "education entry", func(id int64) (store.Education, error) {
		return h.queries.GetEducationByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteEducation(r.Context(), entry.ID); err != nil {
		WriteInternalError(w, "Failed to delete education entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
