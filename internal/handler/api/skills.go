// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// SkillAreaResponse is the JSON shape for a skill area.
type SkillAreaResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Position    int64   `json:"position"`
}

func toSkillAreaResponse(a store.SkillArea) SkillAreaResponse {
	return SkillAreaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: util.NullStringToPtr(a.Description),
		Icon:        a.Icon,
		Color:       a.Color,
		Position:    a.Position,
	}
}

// SkillResponse is the JSON shape for a skill.
type SkillResponse struct {
	ID              int64     `json:"id"`
	AreaID          int64     `json:"area_id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	SfiaLevel       string    `json:"sfia_level"`
	IndustryLevel   string    `json:"industry_level"`
	Sector          string    `json:"sector"`
	Description     string    `json:"description"`
	YearsExperience *float64  `json:"years_experience"`
	Tags            []string  `json:"tags"`
	IsFeatured      bool      `json:"is_featured"`
	Position        int64     `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toSkillResponse(s store.Skill) SkillResponse {
	var tags []string
	_ = json.Unmarshal([]byte(s.Tags), &tags)
	if tags == nil {
		tags = []string{}
	}
	return SkillResponse{
		ID:              s.ID,
		AreaID:          s.AreaID,
		Name:            s.Name,
		Slug:            s.Slug,
		SfiaLevel:       s.SfiaLevel,
		IndustryLevel:   s.IndustryLevel,
		Sector:          s.Sector,
		Description:     s.Description,
		YearsExperience: util.NullFloat64ToPtr(s.YearsExperience),
		Tags:            tags,
		IsFeatured:      s.IsFeatured,
		Position:        s.Position,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toSkillResponses(skills []store.Skill) []SkillResponse {
	resp := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		resp = append(resp, toSkillResponse(s))
	}
	return resp
}

// SkillAreaRequest is the JSON body for creating or updating a skill area.
type SkillAreaRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Position    int64   `json:"position"`
}

// ListSkillAreas returns all skill areas in display order.
func (h *Handler) ListSkillAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.queries.ListSkillAreas(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list skill areas")
		return
	}

	resp := make([]SkillAreaResponse, 0, len(areas))
	for _, a := range areas {
		resp = append(resp, toSkillAreaResponse(a))
	}
	WriteSuccess(w, resp, nil)
}

// CreateSkillArea creates a skill area with a slug derived from its name.
func (h *Handler) CreateSkillArea(w http.ResponseWriter, r *http.Request) {
	var req SkillAreaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	area, err := h.queries.CreateSkillArea(r.Context(), store.CreateSkillAreaParams{
		Name:        req.Name,
		Slug:        util.Slugify(req.Name),
		Description: util.NullStringFromPtr(req.Description),
		Icon:        req.Icon,
		Color:       req.Color,
		Position:    req.Position,
	})
	if err != nil {
		writeStoreError(w, err, "skill area")
		return
	}
	WriteCreated(w, toSkillAreaResponse(area))
}

// UpdateSkillArea updates a skill area. The slug stays fixed.
func (h *Handler) UpdateSkillArea(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "skill area", func(id int64) (store.SkillArea, error) {
		return h.queries.GetSkillAreaByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req SkillAreaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	area, err := h.queries.UpdateSkillArea(r.Context(), store.UpdateSkillAreaParams{
		ID:          current.ID,
		Name:        req.Name,
		Description: util.NullStringFromPtr(req.Description),
		Icon:        req.Icon,
		Color:       req.Color,
		Position:    req.Position,
	})
	if err != nil {
		writeStoreError(w, err, "skill area")
		return
	}
	WriteSuccess(w, toSkillAreaResponse(area), nil)
}

// DeleteSkillArea deletes a skill area and, by cascade, its skills.
func (h *Handler) DeleteSkillArea(w http.ResponseWriter, r *http.Request) {
	area, ok := requireEntityByID(w, r, "skill area", func(id int64) (store.SkillArea, error) {
		return h.queries.GetSkillAreaByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteSkillArea(r.Context(), area.ID); err != nil {
		WriteInternalError(w, "Failed to delete skill area")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSkills returns skills filtered by level, sector, and area slug,
// with page-number pagination.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.queries.ListSkills(r.Context(), store.ListSkillsParams{
		SfiaLevel: r.URL.Query().Get("level"),
		Sector:    r.URL.Query().Get("sector"),
		AreaSlug:  r.URL.Query().Get("area"),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list skills")
		return
	}

	page := handler.ParsePageParam(r)
	perPage := handler.ParsePerPageParam(r, defaultPerPage, maxPerPage)
	total := len(skills)

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	WriteSuccess(w, toSkillResponses(skills[start:end]), &Meta{
		Total:   int64(total),
		Page:    page,
		PerPage: perPage,
		Pages:   handler.CalculateTotalPages(total, perPage),
	})
}

// ListFeaturedSkills returns the featured skills.
func (h *Handler) ListFeaturedSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.queries.ListFeaturedSkills(r.Context(), int64(handler.ParsePerPageParam(r, defaultPerPage, maxPerPage)))
	if err != nil {
		WriteInternalError(w, "Failed to list featured skills")
		return
	}
	WriteSuccess(w, toSkillResponses(skills), nil)
}

// GetSkill returns one skill by ID.
func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	skill, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toSkillResponse(skill), nil)
}

// GetSkillEvidence returns the evidence union backing a skill.
func (h *Handler) GetSkillEvidence(w http.ResponseWriter, r *http.Request) {
	skill, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}

	items, err := service.SkillEvidence(r.Context(), h.queries, skill.ID)
	if err != nil {
		WriteInternalError(w, "Failed to collect skill evidence")
		return
	}
	WriteSuccess(w, items, nil)
}

// SkillRequest is the JSON body for creating or updating a skill.
type SkillRequest struct {
	AreaID          int64    `json:"area_id"`
	Name            string   `json:"name"`
	SfiaLevel       string   `json:"sfia_level"`
	IndustryLevel   string   `json:"industry_level"`
	Sector          string   `json:"sector"`
	Description     string   `json:"description"`
	YearsExperience *float64 `json:"years_experience"`
	Tags            []string `json:"tags"`
	IsFeatured      bool     `json:"is_featured"`
	Position        int64    `json:"position"`
}

func (req SkillRequest) validate() handler.ValidationErrors {
	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	v.Require("sfia_level", req.SfiaLevel)
	v.OneOf("sfia_level", req.SfiaLevel, model.SFIALevels)
	v.OneOf("industry_level", req.IndustryLevel, model.IndustryLevels)
	v.OneOf("sector", req.Sector, model.Sectors)
	if req.YearsExperience != nil &&
		(*req.YearsExperience < model.MinYearsExperience || *req.YearsExperience > model.MaxYearsExperience) {
		v["years_experience"] = "Must be between 0 and 50"
	}
	return v
}

func marshalTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// CreateSkill creates a skill. The slug is derived from the area name and
// skill name and never changes afterwards.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if v := req.validate(); !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	area, err := h.queries.GetSkillAreaByID(r.Context(), req.AreaID)
	if err != nil {
		WriteValidationError(w, map[string]string{"area_id": "Unknown skill area"})
		return
	}

	now := time.Now()
	skill, err := h.queries.CreateSkill(r.Context(), store.CreateSkillParams{
		AreaID:          area.ID,
		Name:            req.Name,
		Slug:            util.Slugify(area.Name + "-" + req.Name),
		SfiaLevel:       req.SfiaLevel,
		IndustryLevel:   req.IndustryLevel,
		Sector:          req.Sector,
		Description:     req.Description,
		YearsExperience: util.NullFloat64FromPtr(req.YearsExperience),
		Tags:            marshalTags(req.Tags),
		IsFeatured:      req.IsFeatured,
		Position:        req.Position,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		writeStoreError(w, err, "skill")
		return
	}
	WriteCreated(w, toSkillResponse(skill))
}

// UpdateSkill updates a skill's mutable fields. The slug stays fixed.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req SkillRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if v := req.validate(); !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	skill, err := h.queries.UpdateSkill(r.Context(), store.UpdateSkillParams{
		ID:              current.ID,
		AreaID:          req.AreaID,
		Name:            req.Name,
		SfiaLevel:       req.SfiaLevel,
		IndustryLevel:   req.IndustryLevel,
		Sector:          req.Sector,
		Description:     req.Description,
		YearsExperience: util.NullFloat64FromPtr(req.YearsExperience),
		Tags:            marshalTags(req.Tags),
		IsFeatured:      req.IsFeatured,
		Position:        req.Position,
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "skill")
		return
	}
	WriteSuccess(w, toSkillResponse(skill), nil)
}

// DeleteSkill deletes a skill and its evidence links.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	skill, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteSkill(r.Context(), skill.ID); err != nil {
		WriteInternalError(w, "Failed to delete skill")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EvidenceLinkRequest names the entity to link to a skill.
type EvidenceLinkRequest struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

// LinkSkillEvidence attaches a project, certification, education, or
// experience entry to a skill as evidence.
func (h *Handler) LinkSkillEvidence(w http.ResponseWriter, r *http.Request) {
	skill, ok := requireEntityByID(w, r, "skill", func(id int64) (store.Skill, error) {
		return h.queries.GetSkillByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req EvidenceLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var err error
	switch req.Kind {
	case model.EvidenceKindProject:
		err = h.queries.AddSkillProject(r.Context(), skill.ID, req.ID)
	case model.EvidenceKindCertification:
		err = h.queries.AddSkillCertification(r.Context(), skill.ID, req.ID)
	case model.EvidenceKindEducation:
		err = h.queries.AddSkillEducation(r.Context(), skill.ID, req.ID)
	default:
		WriteValidationError(w, map[string]string{"kind": "Unknown evidence kind"})
		return
	}
	if err != nil {
		writeStoreError(w, err, "evidence link")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
