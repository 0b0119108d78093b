// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/olegiv/folio-go/internal/store"
)

const dateLayout = "2006-01-02"

// Exporter writes portfolio content to per-collection JSON files.
type Exporter struct {
	db     *sql.DB
	store  *store.Queries
	logger *slog.Logger
}

// NewExporter creates a new Exporter instance.
func NewExporter(db *sql.DB, logger *slog.Logger) *Exporter {
	return &Exporter{
		db:     db,
		store:  store.New(db),
		logger: logger,
	}
}

// Export writes every collection to dir, creating it if needed. A
// failure in one collection is logged and does not stop the others; the
// names of the files written are returned.
func (e *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	var written []string
	steps := []struct {
		file string
		fn   func(context.Context) (any, error)
	}{
		{FileProfile, e.exportProfile},
		{FileSkills, e.exportSkills},
		{FileProjects, e.exportProjects},
		{FileExperience, e.exportExperience},
		{FileCertifications, e.exportCertifications},
		{FileBlog, e.exportBlog},
		{FileSite, e.exportSite},
	}

	for _, step := range steps {
		data, err := step.fn(ctx)
		if err != nil {
			e.logger.Warn("skipping export file", "file", step.file, "error", err)
			continue
		}
		if data == nil {
			e.logger.Warn("skipping export file, no content", "file", step.file)
			continue
		}
		if err := writeJSONFile(filepath.Join(dir, step.file), data); err != nil {
			e.logger.Warn("writing export file", "file", step.file, "error", err)
			continue
		}
		written = append(written, step.file)
	}

	return written, nil
}

func writeJSONFile(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (e *Exporter) exportProfile(ctx context.Context) (any, error) {
	profile, err := e.store.GetActiveProfile(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return ExportProfile{
		Name:     profile.Name,
		Title:    profile.JobTitle,
		Bio:      profile.Bio,
		Summary:  profile.Summary,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Location: profile.Location,
		Social: ExportSocial{
			Github:   nullStringToPtr(profile.GithubURL),
			Linkedin: nullStringToPtr(profile.LinkedinURL),
			Twitter:  nullStringToPtr(profile.TwitterURL),
			Website:  nullStringToPtr(profile.WebsiteURL),
		},
	}, nil
}

func (e *Exporter) exportSkills(ctx context.Context) (any, error) {
	areas, err := e.store.ListSkillAreas(ctx)
	if err != nil {
		return nil, err
	}
	areaNames := make(map[int64]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}

	skills, err := e.store.ListSkills(ctx, store.ListSkillsParams{})
	if err != nil {
		return nil, err
	}

	data := make([]ExportSkill, 0, len(skills))
	for _, s := range skills {
		var years *float64
		if s.YearsExperience.Valid {
			y := s.YearsExperience.Float64
			years = &y
		}
		data = append(data, ExportSkill{
			Area:            areaNames[s.AreaID],
			Name:            s.Name,
			Slug:            s.Slug,
			SfiaLevel:       s.SfiaLevel,
			IndustryLevel:   s.IndustryLevel,
			Sector:          s.Sector,
			Description:     s.Description,
			YearsExperience: years,
			IsFeatured:      s.IsFeatured,
		})
	}
	return data, nil
}

func (e *Exporter) exportProjects(ctx context.Context) (any, error) {
	categories, err := e.store.ListProjectCategories(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	projects, err := e.store.ListAllProjects(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]ExportProject, 0, len(projects))
	for _, p := range projects {
		var category *string
		if p.CategoryID.Valid {
			if name, ok := categoryNames[p.CategoryID.Int64]; ok {
				category = &name
			}
		}
		var technologies []string
		_ = json.Unmarshal([]byte(p.Technologies), &technologies)
		if technologies == nil {
			technologies = []string{}
		}
		data = append(data, ExportProject{
			Title:     p.Title,
			Slug:      p.Slug,
			Category:  category,
			StartDate: p.StartDate.Format(dateLayout),
			EndDate:   nullTimeToDatePtr(p.EndDate),
			IsOngoing: p.IsOngoing,
			Star: ExportStar{
				Situation: p.Situation,
				Task:      p.Task,
				Action:    p.Action,
				Result:    p.Result,
			},
			Technologies: technologies,
			GithubURL:    nullStringToPtr(p.GithubURL),
			LiveDemoURL:  nullStringToPtr(p.LiveDemoURL),
			IsFeatured:   p.IsFeatured,
		})
	}
	return data, nil
}

func (e *Exporter) exportExperience(ctx context.Context) (any, error) {
	entries, err := e.store.ListAllExperiences(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]ExportExperience, 0, len(entries))
	for _, exp := range entries {
		data = append(data, ExportExperience{
			Role:      exp.Role,
			Company:   exp.Company,
			Location:  exp.Location,
			StartDate: exp.StartDate.Format(dateLayout),
			EndDate:   nullTimeToDatePtr(exp.EndDate),
			IsCurrent: exp.IsCurrent,
			Star: ExportStar{
				Situation: exp.Situation,
				Task:      exp.Task,
				Action:    exp.Action,
				Result:    exp.Result,
			},
			CompanyURL: nullStringToPtr(exp.CompanyURL),
		})
	}
	return data, nil
}

func (e *Exporter) exportCertifications(ctx context.Context) (any, error) {
	certs, err := e.store.ListAllCertifications(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]ExportCertification, 0, len(certs))
	for _, c := range certs {
		data = append(data, ExportCertification{
			Title:            c.Title,
			Type:             c.CertType,
			IssuingAuthority: c.IssuingAuthority,
			IssueDate:        c.IssueDate.Format(dateLayout),
			ExpiryDate:       nullTimeToDatePtr(c.ExpiryDate),
			CredentialID:     c.CredentialID,
			CredentialURL:    nullStringToPtr(c.CredentialURL),
			IconClass:        c.IconClass,
			ColorClass:       c.ColorClass,
			IsFeatured:       c.IsFeatured,
		})
	}
	return data, nil
}

func (e *Exporter) exportBlog(ctx context.Context) (any, error) {
	series, err := e.store.ListBlogSeries(ctx)
	if err != nil {
		return nil, err
	}
	seriesNames := make(map[int64]string, len(series))
	for _, s := range series {
		seriesNames[s.ID] = s.Name
	}

	categories, err := e.store.ListBlogCategories(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	posts, err := e.store.ListAllBlogPosts(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]ExportBlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Status != "published" {
			continue
		}
		var seriesName, categoryName *string
		if p.SeriesID.Valid {
			if name, ok := seriesNames[p.SeriesID.Int64]; ok {
				seriesName = &name
			}
		}
		if p.CategoryID.Valid {
			if name, ok := categoryNames[p.CategoryID.Int64]; ok {
				categoryName = &name
			}
		}
		data = append(data, ExportBlogPost{
			Title:         p.Title,
			Slug:          p.Slug,
			Series:        seriesName,
			Category:      categoryName,
			Excerpt:       p.Excerpt,
			Content:       p.Content,
			PublishedDate: nullTimeToDatePtr(p.PublishedDate),
			ReadingTime:   p.ReadingTime,
			IsFeatured:    p.IsFeatured,
		})
	}
	return data, nil
}

func (e *Exporter) exportSite(ctx context.Context) (any, error) {
	settings, err := store.GetSettings(ctx, e.db)
	if err != nil {
		return nil, err
	}

	return ExportSite{
		SiteTitle:       settings.SiteTitle,
		SiteTagline:     settings.SiteTagline,
		SiteDescription: nullStringToPtr(settings.SiteDescription),
		ContactEmail:    settings.ContactEmail,
		ContactPhone:    nullStringToPtr(settings.ContactPhone),
		Social: ExportSocial{
			Github:   nullStringToPtr(settings.GithubURL),
			Linkedin: nullStringToPtr(settings.LinkedinURL),
			Twitter:  nullStringToPtr(settings.TwitterURL),
		},
		Features: ExportSiteFeatures{
			EnableBlog:        settings.EnableBlog,
			EnableContactForm: settings.EnableContactForm,
		},
	}, nil
}

func nullStringToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullTimeToDatePtr(nt sql.NullTime) *string {
	if !nt.Valid {
		return nil
	}
	s := nt.Time.Format(dateLayout)
	return &s
}
