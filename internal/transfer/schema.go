// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer exports portfolio content as a set of JSON documents,
// one file per collection.
package transfer

// Export file names, one per collection.
const (
	FileProfile        = "profile.json"
	FileSkills         = "skills.json"
	FileProjects       = "projects.json"
	FileExperience     = "experience.json"
	FileCertifications = "certifications.json"
	FileBlog           = "blog.json"
	FileSite           = "site.json"
)

// ExportSocial carries a set of social profile links.
type ExportSocial struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Website  *string `json:"website,omitempty"`
}

// ExportProfile is the profile.json document.
type ExportProfile struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Bio      string       `json:"bio"`
	Summary  string       `json:"summary"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Location string       `json:"location"`
	Social   ExportSocial `json:"social"`
}

// ExportSkill is one entry of skills.json.
type ExportSkill struct {
	Area            string   `json:"area"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	SfiaLevel       string   `json:"sfia_level"`
	IndustryLevel   string   `json:"industry_level"`
	Sector          string   `json:"sector"`
	Description     string   `json:"description"`
	YearsExperience *float64 `json:"years_experience"`
	IsFeatured      bool     `json:"is_featured"`
}

// ExportStar carries a STAR narrative.
type ExportStar struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// ExportProject is one entry of projects.json.
type ExportProject struct {
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Category     *string    `json:"category"`
	StartDate    string     `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	IsOngoing    bool       `json:"is_ongoing"`
	Star         ExportStar `json:"star"`
	Technologies []string   `json:"technologies"`
	GithubURL    *string    `json:"github_url"`
	LiveDemoURL  *string    `json:"live_demo_url"`
	IsFeatured   bool       `json:"is_featured"`
}

// ExportExperience is one entry of experience.json.
type ExportExperience struct {
	Role       string     `json:"role"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	StartDate  string     `json:"start_date"`
	EndDate    *string    `json:"end_date"`
	IsCurrent  bool       `json:"is_current"`
	Star       ExportStar `json:"star"`
	CompanyURL *string    `json:"company_url"`
}

// ExportCertification is one entry of certifications.json.
type ExportCertification struct {
	Title            string  `json:"title"`
	Type             string  `json:"type"`
	IssuingAuthority string  `json:"issuing_authority"`
	IssueDate        string  `json:"issue_date"`
	ExpiryDate       *string `json:"expiry_date"`
	CredentialID     string  `json:"credential_id"`
	CredentialURL    *string `json:"credential_url"`
	IconClass        string  `json:"icon_class"`
	ColorClass       string  `json:"color_class"`
	IsFeatured       bool    `json:"is_featured"`
}

// ExportBlogPost is one entry of blog.json. Only published posts are
// exported.
type ExportBlogPost struct {
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Series        *string `json:"series"`
	Category      *string `json:"category"`
	Excerpt       string  `json:"excerpt"`
	Content       string  `json:"content"`
	PublishedDate *string `json:"published_date"`
	ReadingTime   int64   `json:"reading_time"`
	IsFeatured    bool    `json:"is_featured"`
}

// ExportSiteFeatures carries the site feature toggles.
type ExportSiteFeatures struct {
	EnableBlog        bool `json:"enable_blog"`
	EnableContactForm bool `json:"enable_contact_form"`
}

// ExportSite is the site.json document.
type ExportSite struct {
	SiteTitle       string             `json:"site_title"`
	SiteTagline     string             `json:"site_tagline"`
	SiteDescription *string            `json:"site_description"`
	ContactEmail    string             `json:"contact_email"`
	ContactPhone    *string            `json:"contact_phone"`
	Social          ExportSocial       `json:"social"`
	Features        ExportSiteFeatures `json:"features"`
}
