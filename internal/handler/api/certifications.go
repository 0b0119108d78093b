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

// CertificationResponse is the JSON shape for a certification. IsExpired
// is derived from the expiry date at read time.
type CertificationResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	CertType         string    `json:"cert_type"`
	IssuingAuthority string    `json:"issuing_authority"`
	AuthorityWebsite *string   `json:"authority_website"`
	IssueDate        string    `json:"issue_date"`
	ExpiryDate       *string   `json:"expiry_date"`
	IsExpired        bool      `json:"is_expired"`
	CredentialID     string    `json:"credential_id"`
	CredentialURL    *string   `json:"credential_url"`
	Description      *string   `json:"description"`
	IconClass        string    `json:"icon_class"`
	ColorClass       string    `json:"color_class"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toCertificationResponse(c store.Certification) CertificationResponse {
	return CertificationResponse{
		ID:               c.ID,
		Title:            c.Title,
		CertType:         c.CertType,
		IssuingAuthority: c.IssuingAuthority,
		AuthorityWebsite: util.NullStringToPtr(c.AuthorityWebsite),
		IssueDate:        c.IssueDate.Format(dateLayout),
		ExpiryDate:       formatDatePtr(c.ExpiryDate),
		IsExpired:        model.IsExpired(c.ExpiryDate, time.Now()),
		CredentialID:     c.CredentialID,
		CredentialURL:    util.NullStringToPtr(c.CredentialURL),
		Description:      util.NullStringToPtr(c.Description),
		IconClass:        c.IconClass,
		ColorClass:       c.ColorClass,
		IsFeatured:       c.IsFeatured,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toCertificationResponses(certs []store.Certification) []CertificationResponse {
	resp := make([]CertificationResponse, 0, len(certs))
	for _, c := range certs {
		resp = append(resp, toCertificationResponse(c))
	}
	return resp
}

// ListCertifications returns certifications, optionally filtered by the
// type query parameter.
func (h *Handler) ListCertifications(w http.ResponseWriter, r *http.Request) {
	certType := r.URL.Query().Get("type")
	if certType != "" && !model.IsValidCertType(certType) {
		WriteBadRequest(w, "Unknown certification type", nil)
		return
	}

	certs, err := h.queries.ListCertifications(r.Context(), certType)
	if err != nil {
		WriteInternalError(w, "Failed to list certifications")
		return
	}
	WriteSuccess(w, toCertificationResponses(certs), nil)
}

// ListFeaturedCertifications returns the featured certifications.
func (h *Handler) ListFeaturedCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := h.queries.ListFeaturedCertifications(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list featured certifications")
		return
	}
	WriteSuccess(w, toCertificationResponses(certs), nil)
}

// GetCertification returns one certification by ID.
func (h *Handler) GetCertification(w http.ResponseWriter, r *http.Request) {
	cert, ok := requireEntityByID(w, r, "certification", func(id int64) (store.Certification, error) {
		return h.queries.GetCertificationByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toCertificationResponse(cert), nil)
}

// CertificationRequest is the JSON body for creating or updating a
// certification.
type CertificationRequest struct {
	Title            string  `json:"title"`
	CertType         string  `json:"cert_type"`
	IssuingAuthority string  `json:"issuing_authority"`
	AuthorityWebsite *string `json:"authority_website"`
	IssueDate        string  `json:"issue_date"`
	ExpiryDate       *string `json:"expiry_date"`
	CredentialID     string  `json:"credential_id"`
	CredentialURL    *string `json:"credential_url"`
	Description      *string `json:"description"`
	IconClass        string  `json:"icon_class"`
	ColorClass       string  `json:"color_class"`
	IsFeatured       bool    `json:"is_featured"`
}

func (req CertificationRequest) validate() (handler.ValidationErrors, time.Time, sql.NullTime) {
	v := handler.ValidationErrors{}
	v.Require("title", req.Title)
	v.Require("issuing_authority", req.IssuingAuthority)
	v.Require("cert_type", req.CertType)
	v.OneOf("cert_type", req.CertType, model.CertTypes)

	issueDate := parseDate(v, "issue_date", req.IssueDate)
	expiryDate := parseDatePtr(v, "expiry_date", req.ExpiryDate)
	if expiryDate.Valid && expiryDate.Time.Before(issueDate) {
		v["expiry_date"] = "Must not be before issue_date"
	}
	return v, issueDate, expiryDate
}

// CreateCertification creates a certification.
func (h *Handler) CreateCertification(w http.ResponseWriter, r *http.Request) {
	var req CertificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, issueDate, expiryDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	colorClass := req.ColorClass
	if colorClass == "" {
		colorClass = "bg-blue-500"
	}

	now := time.Now()
	cert, err := h.queries.CreateCertification(r.Context(), store.CreateCertificationParams{
		Title:            req.Title,
		CertType:         req.CertType,
		IssuingAuthority: req.IssuingAuthority,
		AuthorityWebsite: util.NullStringFromPtr(req.AuthorityWebsite),
		IssueDate:        issueDate,
		ExpiryDate:       expiryDate,
		CredentialID:     req.CredentialID,
		CredentialURL:    util.NullStringFromPtr(req.CredentialURL),
		Description:      util.NullStringFromPtr(req.Description),
		IconClass:        req.IconClass,
		ColorClass:       colorClass,
		IsFeatured:       req.IsFeatured,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		writeStoreError(w, err, "certification")
		return
	}
	WriteCreated(w, toCertificationResponse(cert))
}

// UpdateCertification updates a certification.
func (h *Handler) UpdateCertification(w http.ResponseWriter, r *http.Request) {
	current, ok := requireEntityByID(w, r, "certification", func(id int64) (store.Certification, error) {
		return h.queries.GetCertificationByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req CertificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, issueDate, expiryDate := req.validate()
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	colorClass := req.ColorClass
	if colorClass == "" {
		colorClass = current.ColorClass
	}

	cert, err := h.queries.UpdateCertification(r.Context(), store.UpdateCertificationParams{
		ID:               current.ID,
		Title:            req.Title,
		CertType:         req.CertType,
		IssuingAuthority: req.IssuingAuthority,
		AuthorityWebsite: util.NullStringFromPtr(req.AuthorityWebsite),
		IssueDate:        issueDate,
		ExpiryDate:       expiryDate,
		CredentialID:     req.CredentialID,
		CredentialURL:    util.NullStringFromPtr(req.CredentialURL),
		Description:      util.NullStringFromPtr(req.Description),
		IconClass:        req.IconClass,
		ColorClass:       colorClass,
		IsFeatured:       req.IsFeatured,
		UpdatedAt:        time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "certification")
		return
	}
	WriteSuccess(w, toCertificationResponse(cert), nil)
}

// DeleteCertification deletes a certification.
func (h *Handler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	cert, ok := requireEntityByID(w, r, "certification", func(id int64) (store.Certification, error) {
		return h.queries.GetCertificationByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteCertification(r.Context(), cert.ID); err != nil {
		WriteInternalError(w, "Failed to delete certification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
