// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
)

// EvidenceItem is one entry in a skill's evidence union. Kind names which
// of the typed fields is set.
type EvidenceItem struct {
	Kind          string               `json:"kind"`
	Project       *store.Project       `json:"project,omitempty"`
	Certification *store.Certification `json:"certification,omitempty"`
	Education     *store.Education     `json:"education,omitempty"`
}

// SkillEvidence collects everything that backs up a skill claim: the
// projects it was used in, certifications covering it, and relevant
// education, as one ordered list.
func SkillEvidence(ctx context.Context, q *store.Queries, skillID int64) ([]EvidenceItem, error) {
	projects, err := q.GetProjectsForSkill(ctx, skillID)
	if err != nil {
		return nil, err
	}
	certs, err := q.GetCertificationsForSkill(ctx, skillID)
	if err != nil {
		return nil, err
	}
	education, err := q.GetEducationForSkill(ctx, skillID)
	if err != nil {
		return nil, err
	}

	items := make([]EvidenceItem, 0, len(projects)+len(certs)+len(education))
	for i := range projects {
		items = append(items, EvidenceItem{Kind: model.EvidenceKindProject, Project: &projects[i]})
	}
	for i := range certs {
		items = append(items, EvidenceItem{Kind: model.EvidenceKindCertification, Certification: &certs[i]})
	}
	for i := range education {
		items = append(items, EvidenceItem{Kind: model.EvidenceKindEducation, Education: &education[i]})
	}
	return items, nil
}
