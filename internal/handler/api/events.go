// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/handler"
)

// EventResponse is the JSON shape for one event log record.
type EventResponse struct {
	ID        int64           `json:"id"`
	Level     string          `json:"level"`
	Category  string          `json:"category"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListRecentEvents returns the newest event log records. The limit query
// parameter defaults to 50 and is capped at 500.
func (h *Handler) ListRecentEvents(w http.ResponseWriter, r *http.Request) {
	limit := handler.ParseIntParam(r, "limit", 50, 1, 500)

	events, err := h.queries.ListRecentEvents(r.Context(), int64(limit))
	if err != nil {
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	data := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp := EventResponse{
			ID:        e.ID,
			Level:     e.Level,
			Category:  e.Category,
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		}
		if json.Valid([]byte(e.Metadata)) {
			resp.Metadata = json.RawMessage(e.Metadata)
		}
		data = append(data, resp)
	}
	WriteSuccess(w, data, nil)
}

// PruneEventsResponse reports how many event records were removed.
type PruneEventsResponse struct {
	Deleted int64 `json:"deleted"`
}

// PruneEvents deletes event records older than the given number of days.
// The days query parameter defaults to 90.
func (h *Handler) PruneEvents(w http.ResponseWriter, r *http.Request) {
	days := handler.ParseIntParam(r, "days", 90, 1, 3650)
	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := h.queries.PruneEvents(r.Context(), cutoff)
	if err != nil {
		WriteInternalError(w, "Failed to prune events")
		return
	}
	WriteSuccess(w, PruneEventsResponse{Deleted: deleted}, nil)
}
