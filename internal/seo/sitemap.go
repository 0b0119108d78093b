// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo provides sitemap generation for the public site surface.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapEntry carries the slug and last modification time of a content
// item that maps to a public page.
type SitemapEntry struct {
	Slug      string
	UpdatedAt time.Time
}

// StaticRoutes lists the site's fixed public pages, the root first.
var StaticRoutes = []string{
	"",
	"/about",
	"/skills",
	"/projects",
	"/blog",
	"/certifications",
	"/contact",
}

// SitemapBuilder accumulates URL entries and renders the sitemap XML.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder. siteURL must not end
// with a slash.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddStaticRoutes adds the fixed public pages.
func (b *SitemapBuilder) AddStaticRoutes() {
	for _, route := range StaticRoutes {
		b.urls = append(b.urls, SitemapURL{
			Loc:        b.siteURL + route,
			ChangeFreq: ChangeFreqMonthly,
			Priority:   "0.8",
		})
	}
}

func (b *SitemapBuilder) add(path string, entry SitemapEntry, freq ChangeFreq, priority string) {
	url := SitemapURL{
		Loc:        b.siteURL + path + entry.Slug,
		ChangeFreq: freq,
		Priority:   priority,
	}
	if !entry.UpdatedAt.IsZero() {
		url.LastMod = entry.UpdatedAt.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddSkills adds skill detail pages.
func (b *SitemapBuilder) AddSkills(entries []SitemapEntry) {
	for _, e := range entries {
		b.add("/skills/", e, ChangeFreqMonthly, "0.6")
	}
}

// AddProjects adds project detail pages.
func (b *SitemapBuilder) AddProjects(entries []SitemapEntry) {
	for _, e := range entries {
		b.add("/projects/", e, ChangeFreqMonthly, "0.7")
	}
}

// AddBlogPosts adds blog post pages.
func (b *SitemapBuilder) AddBlogPosts(entries []SitemapEntry) {
	for _, e := range entries {
		b.add("/blog/", e, ChangeFreqWeekly, "0.9")
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateSitemap builds the portfolio sitemap: static pages, every
// skill, featured projects, and published posts.
func GenerateSitemap(siteURL string, skills, projects, posts []SitemapEntry) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL)
	builder.AddStaticRoutes()
	builder.AddSkills(skills)
	builder.AddProjects(projects)
	builder.AddBlogPosts(posts)
	return builder.Build()
}
