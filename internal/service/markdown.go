// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds domain logic that sits between the HTTP handlers
// and the store.
package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer provides a reusable HTML sanitization policy for rendered
// post content. UGCPolicy allows safe HTML tags for user-generated content
// while stripping scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// wordsPerMinute is the reading speed assumed by EstimateReadingTime.
const wordsPerMinute = 200

// RenderMarkdown converts markdown content to sanitized HTML.
func RenderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// EstimateReadingTime returns the estimated reading time in whole minutes
// for the given markdown content. It never returns less than 1.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
