// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Evidence kinds for the skill evidence union.
const (
	EvidenceKindProject       = "project"
	EvidenceKindCertification = "certification"
	EvidenceKindEducation     = "education"
)
