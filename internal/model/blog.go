// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "database/sql"

// Blog post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// PostStatuses lists all valid blog post statuses.
var PostStatuses = []string{
	PostStatusDraft,
	PostStatusPublished,
	PostStatusArchived,
}

// IsValidPostStatus reports whether s is a known blog post status.
func IsValidPostStatus(s string) bool {
	return contains(PostStatuses, s)
}

// IsPublished reports whether a post is visible to the public: the status
// must be "published" and a publish date must be set.
func IsPublished(status string, publishedDate sql.NullTime) bool {
	return status == PostStatusPublished && publishedDate.Valid
}
