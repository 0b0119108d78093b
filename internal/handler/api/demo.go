// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// The demo endpoints serve compact, unwrapped JSON documents for the
// public demo page. They carry no pagination and no response envelope.

type demoSocial struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
}

type demoProfile struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Bio     string     `json:"bio"`
	Summary string     `json:"summary"`
	Email   string     `json:"email"`
	Social  demoSocial `json:"social"`
}

// DemoProfile returns the active profile as a compact JSON document. A
// missing active profile yields an empty object.
func (h *Handler) DemoProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.queries.GetActiveProfile(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteJSON(w, http.StatusOK, struct{}{})
		} else {
			WriteInternalError(w, "Failed to retrieve profile")
		}
		return
	}

	WriteJSON(w, http.StatusOK, demoProfile{
		Name:    profile.Name,
		Title:   profile.JobTitle,
		Bio:     profile.Bio,
		Summary: profile.Summary,
		Email:   profile.Email,
		Social: demoSocial{
			Github:   util.NullStringToPtr(profile.GithubURL),
			Linkedin: util.NullStringToPtr(profile.LinkedinURL),
			Twitter:  util.NullStringToPtr(profile.TwitterURL),
		},
	})
}

type demoSkill struct {
	Area        string `json:"area"`
	Name        string `json:"name"`
	Sfia        string `json:"sfia"`
	Industry    string `json:"industry"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
}

// DemoSkills returns every skill with its area name.
func (h *Handler) DemoSkills(w http.ResponseWriter, r *http.Request) {
	areas, err := h.queries.ListSkillAreas(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list skills")
		return
	}
	areaNames := make(map[int64]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}

	skills, err := h.queries.ListSkills(r.Context(), store.ListSkillsParams{})
	if err != nil {
		WriteInternalError(w, "Failed to list skills")
		return
	}

	data := make([]demoSkill, 0, len(skills))
	for _, s := range skills {
		data = append(data, demoSkill{
			Area:        areaNames[s.AreaID],
			Name:        s.Name,
			Sfia:        s.SfiaLevel,
			Industry:    s.IndustryLevel,
			Sector:      s.Sector,
			Description: s.Description,
		})
	}
	WriteJSON(w, http.StatusOK, data)
}

type demoStar struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

type demoProject struct {
	Title        string   `json:"title"`
	Technologies []string `json:"technologies"`
	Star         demoStar `json:"star"`
}

// DemoProjects returns every project as title, technologies, and STAR
// narrative.
func (h *Handler) DemoProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListAllProjects(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list projects")
		return
	}

	data := make([]demoProject, 0, len(projects))
	for _, p := range projects {
		var technologies []string
		_ = json.Unmarshal([]byte(p.Technologies), &technologies)
		if technologies == nil {
			technologies = []string{}
		}
		data = append(data, demoProject{
			Title:        p.Title,
			Technologies: technologies,
			Star: demoStar{
				Situation: p.Situation,
				Task:      p.Task,
				Action:    p.Action,
				Result:    p.Result,
			},
		})
	}
	WriteJSON(w, http.StatusOK, data)
}

type demoExperience struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Star    demoStar `json:"star"`
}

// DemoExperience returns every experience entry as role, company, and
// STAR narrative.
func (h *Handler) DemoExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queries.ListExperiences(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list experience entries")
		return
	}

	data := make([]demoExperience, 0, len(entries))
	for _, e := range entries {
		data = append(data, demoExperience{
			Role:    e.Role,
			Company: e.Company,
			Star: demoStar{
				Situation: e.Situation,
				Task:      e.Task,
				Action:    e.Action,
				Result:    e.Result,
			},
		})
	}
	WriteJSON(w, http.StatusOK, data)
}

type demoCertification struct {
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credential_id"`
}

// DemoCertifications returns every certification in compact form.
func (h *Handler) DemoCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := h.queries.ListCertifications(r.Context(), "")
	if err != nil {
		WriteInternalError(w, "Failed to list certifications")
		return
	}

	data := make([]demoCertification, 0, len(certs))
	for _, c := range certs {
		data = append(data, demoCertification{
			Title:        c.Title,
			Issuer:       c.IssuingAuthority,
			Date:         c.IssueDate.Format(dateLayout),
			CredentialID: c.CredentialID,
		})
	}
	WriteJSON(w, http.StatusOK, data)
}
