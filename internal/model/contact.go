// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Contact message statuses.
const (
	MessageStatusNew      = "new"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"
)

// MessageStatuses lists all valid contact message statuses.
var MessageStatuses = []string{
	MessageStatusNew,
	MessageStatusRead,
	MessageStatusReplied,
	MessageStatusArchived,
}

// IsValidMessageStatus reports whether s is a known contact message status.
func IsValidMessageStatus(s string) bool {
	return contains(MessageStatuses, s)
}
