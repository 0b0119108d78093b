// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/folio-go/internal/transfer"
)

// ExportResponse reports the outcome of a content export.
type ExportResponse struct {
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

// ExportContent runs a JSON export of all portfolio content into dir.
// Collections that fail to export are logged and skipped, so the
// response lists only the files actually written.
func (h *Handler) ExportContent(exporter *transfer.Exporter, dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := exporter.Export(r.Context(), dir)
		if err != nil {
			WriteInternalError(w, "Failed to export content")
			return
		}
		if files == nil {
			files = []string{}
		}
		WriteSuccess(w, ExportResponse{Dir: dir, Files: files}, nil)
	}
}
