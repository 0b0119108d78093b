// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage stores uploaded portfolio assets (profile images,
// resumes, project media) on disk under opaque keys.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves and retrieves uploaded files. Save returns the key under
// which the file can later be opened or deleted.
type Store interface {
	Save(file io.Reader, filename string) (key string, size int64, err error)
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
	URL(key string) string
}

// DiskStore keeps uploads on the local filesystem. Each file lives in its
// own UUID-named directory so original filenames never collide.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &DiskStore{root: dir}, nil
}

// Save writes the file under a fresh UUID key.
func (s *DiskStore) Save(file io.Reader, filename string) (string, int64, error) {
	filename = sanitizeFilename(filename)
	key := uuid.New().String() + "/" + filename

	dir := filepath.Join(s.root, filepath.Dir(key))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(s.root, key)
	out, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = out.Close() }()

	size, err := io.Copy(out, file)
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return key, size, nil
}

// Open returns a reader for a stored file.
func (s *DiskStore) Open(key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes a stored file and its key directory.
func (s *DiskStore) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	// Best effort; the directory holds only this file.
	_ = os.Remove(filepath.Dir(path))
	return nil
}

// URL returns the public path under which the file is served.
func (s *DiskStore) URL(key string) string {
	return "/uploads/" + key
}

// resolve maps a key to a path inside the root, rejecting traversal.
func (s *DiskStore) resolve(key string) (string, error) {
	path := filepath.Join(s.root, filepath.Clean("/"+key))
	if !strings.HasPrefix(path, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return path, nil
}

func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	replacer := strings.NewReplacer(
		" ", "-",
		"'", "",
		"\"", "",
		"<", "",
		">", "",
		"&", "",
		"#", "",
		"?", "",
		"%", "",
	)
	filename = replacer.Replace(filename)

	if filename == "" || filename == "." || filename == string(os.PathSeparator) {
		filename = "file.bin"
	}
	if filepath.Ext(filename) == "" {
		filename += ".bin"
	}

	return filename
}
