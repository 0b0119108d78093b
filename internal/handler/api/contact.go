// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/mileusna/useragent"

	"github.com/olegiv/folio-go/internal/handler"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// ContactMessageResponse is the JSON shape for a contact message as seen
// by the admin surface.
type ContactMessageResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	Status      string     `json:"status"`
	IPAddress   *string    `json:"ip_address"`
	UserAgent   string     `json:"user_agent"`
	UaSummary   string     `json:"ua_summary"`
	CountryCode *string    `json:"country_code"`
	AdminNotes  *string    `json:"admin_notes"`
	RepliedAt   *time.Time `json:"replied_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toContactMessageResponse(m store.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Subject:     m.Subject,
		Message:     m.Message,
		Status:      m.Status,
		IPAddress:   util.NullStringToPtr(m.IPAddress),
		UserAgent:   m.UserAgent,
		UaSummary:   m.UaSummary,
		CountryCode: util.NullStringToPtr(m.CountryCode),
		AdminNotes:  util.NullStringToPtr(m.AdminNotes),
		RepliedAt:   util.NullTimeToPtr(m.RepliedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ContactRequest is the JSON body of a visitor contact submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req ContactRequest) validate() handler.ValidationErrors {
	v := handler.ValidationErrors{}
	v.Require("name", req.Name)
	v.Require("email", req.Email)
	v.Email("email", req.Email)
	v.Require("message", req.Message)
	v.MaxLen("name", req.Name, 120)
	v.MaxLen("subject", req.Subject, 200)
	v.MaxLen("message", req.Message, 5000)
	return v
}

// uaSummary condenses a raw User-Agent header into "Browser on OS".
func uaSummary(raw string) string {
	if raw == "" {
		return ""
	}
	ua := useragent.Parse(raw)
	switch {
	case ua.Name != "" && ua.OS != "":
		return ua.Name + " on " + ua.OS
	case ua.Name != "":
		return ua.Name
	default:
		return "Unknown"
	}
}

// SubmitContactMessage accepts a visitor message, capturing the client
// IP, a user agent summary, and the GeoIP country when available.
func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if v := req.validate(); !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	ip := util.ClientIP(r)
	rawUA := r.UserAgent()

	var countryCode sql.NullString
	if h.geo != nil && h.geo.IsEnabled() {
		if country := h.geo.Country(ip); country != "" {
			countryCode = sql.NullString{String: country, Valid: true}
		}
	}

	now := time.Now()
	msg, err := h.queries.CreateContactMessage(r.Context(), store.CreateContactMessageParams{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		IPAddress:   util.NullStringFromValue(ip),
		UserAgent:   rawUA,
		UaSummary:   uaSummary(rawUA),
		CountryCode: countryCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		writeStoreError(w, err, "message")
		return
	}

	slog.Info("contact message received", "message_id", msg.ID, "country", msg.CountryCode.String)
	WriteCreated(w, toContactMessageResponse(msg))
}

// ListContactMessages returns messages, optionally filtered by the
// status query parameter.
func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.IsValidMessageStatus(status) {
		WriteBadRequest(w, "Unknown message status", nil)
		return
	}

	messages, err := h.queries.ListContactMessages(r.Context(), status)
	if err != nil {
		WriteInternalError(w, "Failed to list messages")
		return
	}

	resp := make([]ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, toContactMessageResponse(m))
	}
	WriteSuccess(w, resp, nil)
}

// GetContactMessage returns one message by ID.
func (h *Handler) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, toContactMessageResponse(msg), nil)
}

// MessageStatusRequest is the JSON body for a status transition.
type MessageStatusRequest struct {
	Status string `json:"status"`
}

// UpdateContactMessageStatus moves a message through its workflow. The
// first transition to replied records the reply timestamp; later
// transitions keep it.
func (h *Handler) UpdateContactMessageStatus(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req MessageStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := handler.ValidationErrors{}
	v.Require("status", req.Status)
	v.OneOf("status", req.Status, model.MessageStatuses)
	if !v.Ok() {
		WriteValidationError(w, v)
		return
	}

	now := time.Now()
	var repliedAt sql.NullTime
	if req.Status == model.MessageStatusReplied {
		repliedAt = sql.NullTime{Time: now, Valid: true}
	}

	updated, err := h.queries.UpdateContactMessageStatus(r.Context(), store.UpdateContactMessageStatusParams{
		ID:        msg.ID,
		Status:    req.Status,
		RepliedAt: repliedAt,
		UpdatedAt: now,
	})
	if err != nil {
		writeStoreError(w, err, "message")
		return
	}
	WriteSuccess(w, toContactMessageResponse(updated), nil)
}

// MessageNotesRequest is the JSON body for setting admin notes.
type MessageNotesRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

// UpdateContactMessageNotes sets the admin notes on a message.
func (h *Handler) UpdateContactMessageNotes(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req MessageNotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.queries.UpdateContactMessageNotes(r.Context(), msg.ID, util.NullStringFromPtr(req.AdminNotes), time.Now()); err != nil {
		WriteInternalError(w, "Failed to update message notes")
		return
	}

	updated, err := h.queries.GetContactMessageByID(r.Context(), msg.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve message")
		return
	}
	WriteSuccess(w, toContactMessageResponse(updated), nil)
}

// DeleteContactMessage deletes a message.
func (h *Handler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	msg, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteContactMessage(r.Context(), msg.ID); err != nil {
		WriteInternalError(w, "Failed to delete message")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
