// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
	"time"
)

func TestNewSitemapBuilder(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	if builder == nil {
		t.Fatal("NewSitemapBuilder() returned nil")
	}
	if builder.siteURL != "https://example.com" {
		t.Errorf("siteURL = %q, want %q", builder.siteURL, "https://example.com")
	}
	if len(builder.urls) != 0 {
		t.Errorf("urls length = %d, want 0", len(builder.urls))
	}
}

func TestSitemapBuilderAddStaticRoutes(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	builder.AddStaticRoutes()

	if len(builder.urls) != len(StaticRoutes) {
		t.Fatalf("urls length = %d, want %d", len(builder.urls), len(StaticRoutes))
	}

	if builder.urls[0].Loc != "https://example.com" {
		t.Errorf("Loc = %q, want %q", builder.urls[0].Loc, "https://example.com")
	}
	if builder.urls[1].Loc != "https://example.com/about" {
		t.Errorf("Loc = %q, want %q", builder.urls[1].Loc, "https://example.com/about")
	}
	for _, url := range builder.urls {
		if url.ChangeFreq != ChangeFreqMonthly {
			t.Errorf("ChangeFreq = %q, want %q", url.ChangeFreq, ChangeFreqMonthly)
		}
	}
}

func TestSitemapBuilderAddSkills(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	updatedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	builder.AddSkills([]SitemapEntry{
		{Slug: "backend-go", UpdatedAt: updatedAt},
	})

	if len(builder.urls) != 1 {
		t.Fatalf("urls length = %d, want 1", len(builder.urls))
	}

	url := builder.urls[0]
	if url.Loc != "https://example.com/skills/backend-go" {
		t.Errorf("Loc = %q, want %q", url.Loc, "https://example.com/skills/backend-go")
	}
	if url.Priority != "0.6" {
		t.Errorf("Priority = %q, want %q", url.Priority, "0.6")
	}
	if !strings.Contains(url.LastMod, "2026-01-15") {
		t.Errorf("LastMod = %q, should contain 2026-01-15", url.LastMod)
	}
}

func TestSitemapBuilderAddBlogPosts(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	builder.AddBlogPosts([]SitemapEntry{
		{Slug: "hello-world"},
	})

	url := builder.urls[0]
	if url.Loc != "https://example.com/blog/hello-world" {
		t.Errorf("Loc = %q, want %q", url.Loc, "https://example.com/blog/hello-world")
	}
	if url.ChangeFreq != ChangeFreqWeekly {
		t.Errorf("ChangeFreq = %q, want %q", url.ChangeFreq, ChangeFreqWeekly)
	}
	if url.LastMod != "" {
		t.Errorf("LastMod = %q, want empty for zero time", url.LastMod)
	}
}

func TestGenerateSitemap(t *testing.T) {
	data, err := GenerateSitemap("https://example.com",
		[]SitemapEntry{{Slug: "backend-go"}},
		[]SitemapEntry{{Slug: "gateway"}},
		[]SitemapEntry{{Slug: "hello-world"}},
	)
	if err != nil {
		t.Fatalf("GenerateSitemap() error = %v", err)
	}

	output := string(data)
	if !strings.HasPrefix(output, "<?xml") {
		t.Error("output should start with XML header")
	}
	for _, want := range []string{
		XMLNamespace,
		"https://example.com/skills/backend-go",
		"https://example.com/projects/gateway",
		"https://example.com/blog/hello-world",
		"https://example.com/contact",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
