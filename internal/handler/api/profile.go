// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// ProfileResponse is the JSON shape for a profile.
type ProfileResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	JobTitle        string    `json:"job_title"`
	Bio             string    `json:"bio"`
	Summary         string    `json:"summary"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	ProfileImageURL *string   `json:"profile_image_url"`
	ResumeURL       *string   `json:"resume_url"`
	GithubURL       *string   `json:"github_url"`
	LinkedinURL     *string   `json:"linkedin_url"`
	TwitterURL      *string   `json:"twitter_url"`
	WebsiteURL      *string   `json:"website_url"`
	MetaDescription string    `json:"meta_description"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toProfileResponse(p store.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Name:            p.Name,
		JobTitle:        p.JobTitle,
		Bio:             p.Bio,
		Summary:         p.Summary,
		Email:           p.Email,
		Phone:           p.Phone,
		Location:        p.Location,
		ProfileImageURL: util.NullStringToPtr(p.ProfileImageURL),
		ResumeURL:       util.NullStringToPtr(p.ResumeURL),
		GithubURL:       util.NullStringToPtr(p.GithubURL),
		LinkedinURL:     util.NullStringToPtr(p.LinkedinURL),
		TwitterURL:      util.NullStringToPtr(p.TwitterURL),
		WebsiteURL:      util.NullStringToPtr(p.WebsiteURL),
		MetaDescription: p.MetaDescription,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProfileRequest is the JSON body for creating or updating a profile.
type ProfileRequest struct {
	Name            string  `json:"name"`
	JobTitle        string  `json:"job_title"`
	Bio             string  `json:"bio"`
	Summary         string  `json:"summary"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Location        string  `json:"location"`
	ProfileImageURL *string `json:"profile_image_url"`
	ResumeURL       *string `json:"resume_url"`
	GithubURL       *string `json:"github_url"`
	LinkedinURL     *string `json:"linkedin_url"`
	TwitterURL      *string `json:"twitter_url"`
	WebsiteURL      *string `json:"website_url"`
	MetaDescription string  `json:"meta_description"`
}

func (req ProfileRequest) validate() handler.ValidationErrors {
	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	v.Require("job_title", req.JobTitle)
	v.Require("email", req.Email)
	v.Email("email", req.Email)
	return v
}

// GetActiveProfile returns the active profile.
func (h *Handler) GetActiveProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.queries.GetActiveProfile(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "No active profile")
		} else {
			WriteInternalError(w, "Failed to retrieve profile")
		}
		return
	}
	WriteSuccess(w, toProfileResponse(profile), nil)
}

// ListProfiles returns all profiles.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.queries.ListProfiles(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list profiles")
		return
	}

	resp := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, toProfileResponse(p))
	}
	WriteSuccess(w, resp, nil)
}

// GetProfile returns one profile by ID.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := requireEntityByID(w, r, "profile", func(id int64) (store.Profile, error) {
		return h.queries.GetProfileByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toProfileResponse(profile), nil)
}

// CreateProfile creates a profile. The first profile becomes active
// automatically.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if v := req.validate(); !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	existing, err := h.queries.ListProfiles(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to create profile")
		return
	}

	now := time.Now()
	profile, err := h.queries.CreateProfile(r.Context(), store.CreateProfileParams{
		Name:            req.Name,
		JobTitle:        req.JobTitle,
		Bio:             req.Bio,
		Summary:         req.Summary,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		ProfileImageURL: util.NullStringFromPtr(req.ProfileImageURL),
		ResumeURL:       util.NullStringFromPtr(req.ResumeURL),
		GithubURL:       util.NullStringFromPtr(req.GithubURL),
		LinkedinURL:     util.NullStringFromPtr(req.LinkedinURL),
		TwitterURL:      util.NullStringFromPtr(req.TwitterURL),
		WebsiteURL:      util.NullStringFromPtr(req.WebsiteURL),
		MetaDescription: req.MetaDescription,
		IsActive:        len(existing) == 0,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	WriteCreated(w, toProfileResponse(profile))
}

// UpdateProfile updates a profile's mutable fields.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "profile", func(id int64) (store.Profile, error) {
		return h.queries.GetProfileByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if v := req.validate(); !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	profile, err := h.queries.UpdateProfile(r.Context(), store.UpdateProfileParams{
		ID:              current.ID,
		Name:            req.Name,
		JobTitle:        req.JobTitle,
		Bio:             req.Bio,
		Summary:         req.Summary,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		ProfileImageURL: util.NullStringFromPtr(req.ProfileImageURL),
		ResumeURL:       util.NullStringFromPtr(req.ResumeURL),
		GithubURL:       util.NullStringFromPtr(req.GithubURL),
		LinkedinURL:     util.NullStringFromPtr(req.LinkedinURL),
		TwitterURL:      util.NullStringFromPtr(req.TwitterURL),
		WebsiteURL:      util.NullStringFromPtr(req.WebsiteURL),
		MetaDescription: req.MetaDescription,
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	WriteSuccess(w, toProfileResponse(profile), nil)
}

// ActivateProfile marks a profile as the single active one.
func (h *Handler) ActivateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid profile ID", nil)
		return
	}

	if err := store.SetActiveProfile(r.Context(), h.db, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Profile not found")
		} else {
			WriteInternalError(w, "Failed to activate profile")
		}
		return
	}

	profile, err := h.queries.GetProfileByID(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve profile")
		return
	}
	WriteSuccess(w, toProfileResponse(profile), nil)
}

// DeleteProfile deletes a profile.
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := requireEntityByID(w, r, "profile", func(id int64) (store.Profile, error) {
		return h.queries.GetProfileByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteProfile(r.Context(), profile.ID); err != nil {
		WriteInternalError(w, "Failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
