// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/storage"
)

// maxUploadSize caps uploaded asset size at 10MB.
const maxUploadSize = 10 << 20

// UploadResponse describes a stored asset.
type UploadResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// UploadAsset stores a multipart file upload and returns its key and
// public URL. The form field must be named "file".
func (h *Handler) UploadAsset(files storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			WriteBadRequest(w, "Invalid multipart form", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteBadRequest(w, "Missing file field", map[string]string{"file": "This field is required"})
			return
		}
		defer func() { _ = file.Close() }()

		key, size, err := files.Save(file, header.Filename)
		if err != nil {
			WriteInternalError(w, "Failed to store file")
			return
		}

		WriteCreated(w, UploadResponse{
			Key:      key,
			URL:      files.URL(key),
			Filename: header.Filename,
			Size:     size,
		})
	}
}

// DeleteAsset removes a stored asset by key.
func (h *Handler) DeleteAsset(files storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		if key == "" {
			WriteBadRequest(w, "Missing asset key", nil)
			return
		}

		if err := files.Delete(key); err != nil {
			if os.IsNotExist(err) {
				WriteNotFound(w, "Asset not found")
				return
			}
			WriteBadRequest(w, "Invalid asset key", nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
