// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// SettingsResponse is the JSON shape for site settings.
type SettingsResponse struct {
	ID                int64   `json:"id"`
	SiteTitle         string  `json:"site_title"`
	SiteTagline       string  `json:"site_tagline"`
	SiteDescription   *string `json:"site_description"`
	MetaKeywords      string  `json:"meta_keywords"`
	GoogleAnalyticsID *string `json:"google_analytics_id"`
	ContactEmail      string  `json:"contact_email"`
	ContactPhone      *string `json:"contact_phone"`
	GithubURL         *string `json:"github_url"`
	LinkedinURL       *string `json:"linkedin_url"`
	TwitterURL        *string `json:"twitter_url"`
	EnableBlog        bool    `json:"enable_blog"`
	EnableContactForm bool    `json:"enable_contact_form"`
	MaintenanceMode   bool    `json:"maintenance_mode"`
}

func toSettingsResponse(s store.SiteSettings) SettingsResponse {
	return SettingsResponse{
		ID:                s.ID,
		SiteTitle:         s.SiteTitle,
		SiteTagline:       s.SiteTagline,
		SiteDescription:   util.NullStringToPtr(s.SiteDescription),
		MetaKeywords:      s.MetaKeywords,
		GoogleAnalyticsID: util.NullStringToPtr(s.GoogleAnalyticsID),
		ContactEmail:      s.ContactEmail,
		ContactPhone:      util.NullStringToPtr(s.ContactPhone),
		GithubURL:         util.NullStringToPtr(s.GithubURL),
		LinkedinURL:       util.NullStringToPtr(s.LinkedinURL),
		TwitterURL:        util.NullStringToPtr(s.TwitterURL),
		EnableBlog:        s.EnableBlog,
		EnableContactForm: s.EnableContactForm,
		MaintenanceMode:   s.MaintenanceMode,
	}
}

// GetSettings returns the active site settings, creating the default row
// on first access.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := store.GetSettings(r.Context(), h.db)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve settings")
		return
	}
	WriteSuccess(w, toSettingsResponse(settings), nil)
}

// SettingsRequest is the JSON body for updating site settings.
type SettingsRequest struct {
	SiteTitle         string  `json:"site_title"`
	SiteTagline       string  `json:"site_tagline"`
	SiteDescription   *string `json:"site_description"`
	MetaKeywords      string  `json:"meta_keywords"`
	GoogleAnalyticsID *string `json:"google_analytics_id"`
	ContactEmail      string  `json:"contact_email"`
	ContactPhone      *string `json:"contact_phone"`
	GithubURL         *string `json:"github_url"`
	LinkedinURL       *string `json:"linkedin_url"`
	TwitterURL        *string `json:"twitter_url"`
	EnableBlog        bool    `json:"enable_blog"`
	EnableContactForm bool    `json:"enable_contact_form"`
	MaintenanceMode   bool    `json:"maintenance_mode"`
}

// UpdateSettings updates the active site settings.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("site_title", req.SiteTitle)
	v.Require("contact_email", req.ContactEmail)
	v.Email("contact_email", req.ContactEmail)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	current, err := store.GetSettings(r.Context(), h.db)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve settings")
		return
	}

	settings, err := h.queries.UpdateSettings(r.Context(), store.UpdateSettingsParams{
		ID:                current.ID,
		SiteTitle:         req.SiteTitle,
		SiteTagline:       req.SiteTagline,
		SiteDescription:   util.NullStringFromPtr(req.SiteDescription),
		MetaKeywords:      req.MetaKeywords,
		GoogleAnalyticsID: util.NullStringFromPtr(req.GoogleAnalyticsID),
		ContactEmail:      req.ContactEmail,
		ContactPhone:      util.NullStringFromPtr(req.ContactPhone),
		GithubURL:         util.NullStringFromPtr(req.GithubURL),
		LinkedinURL:       util.NullStringFromPtr(req.LinkedinURL),
		TwitterURL:        util.NullStringFromPtr(req.TwitterURL),
		EnableBlog:        req.EnableBlog,
		EnableContactForm: req.EnableContactForm,
		MaintenanceMode:   req.MaintenanceMode,
	})
	if err != nil {
		writeStoreError(w, err, "settings")
		return
	}
	WriteSuccess(w, toSettingsResponse(settings), nil)
}
