// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/olegiv/folio-go/internal/seo"
	"github.com/olegiv/folio-go/internal/store"
)

// Sitemap serves the sitemap XML: static pages, every skill, featured
// projects, and published posts, with content lastmod timestamps.
func (h *Handler) Sitemap(baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		skills, err := h.queries.ListSkills(ctx, store.ListSkillsParams{})
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		// LIMIT -1 disables the limit in SQLite.
		projects, err := h.queries.ListFeaturedProjects(ctx, -1)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		posts, err := h.queries.ListPublishedPosts(ctx, store.ListPublishedPostsParams{
			Now:    time.Now(),
			Limit:  -1,
			Offset: 0,
		})
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		skillEntries := make([]seo.SitemapEntry, 0, len(skills))
		for _, s := range skills {
			skillEntries = append(skillEntries, seo.SitemapEntry{Slug: s.Slug, UpdatedAt: s.UpdatedAt})
		}
		projectEntries := make([]seo.SitemapEntry, 0, len(projects))
		for _, p := range projects {
			projectEntries = append(projectEntries, seo.SitemapEntry{Slug: p.Slug, UpdatedAt: p.UpdatedAt})
		}
		postEntries := make([]seo.SitemapEntry, 0, len(posts))
		for _, b := range posts {
			postEntries = append(postEntries, seo.SitemapEntry{Slug: b.Slug, UpdatedAt: b.UpdatedAt})
		}

		data, err := seo.GenerateSitemap(baseURL, skillEntries, projectEntries, postEntries)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(data)
	}
}
