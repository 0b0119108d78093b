package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func createTestProfile(t *testing.T, q *Queries, name string) Profile {
	t.Helper()
	now := time.Now()
	p, err := q.CreateProfile(context.Background(), CreateProfileParams{
		Name:      name,
		JobTitle:  "Engineer",
		Bio:       "bio",
		Email:     name + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	return p
}

func TestCreateProfile(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	p, err := q.CreateProfile(ctx, CreateProfileParams{
		Name:      "Jane Doe",
		JobTitle:  "Platform Engineer",
		Bio:       "Builds things.",
		Email:     "jane@example.com",
		Location:  "Berlin",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	if p.ID == 0 {
		t.Error("p.ID should not be 0")
	}
	if p.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", p.Name, "Jane Doe")
	}
	if !p.IsActive {
		t.Error("IsActive should be true")
	}
}

func TestSetActiveProfile(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	first := createTestProfile(t, q, "first")
	second := createTestProfile(t, q, "second")

	if err := SetActiveProfile(ctx, db, first.ID); err != nil {
		t.Fatalf("SetActiveProfile(first): %v", err)
	}
	if err := SetActiveProfile(ctx, db, second.ID); err != nil {
		t.Fatalf("SetActiveProfile(second): %v", err)
	}

	active, err := q.GetActiveProfile(ctx)
	if err != nil {
		t.Fatalf("GetActiveProfile: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active.ID = %d, want %d", active.ID, second.ID)
	}

	// Exactly one row may hold the flag.
	profiles, err := q.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	activeCount := 0
	for _, p := range profiles {
		if p.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Errorf("active profiles = %d, want 1", activeCount)
	}
}

func TestSetActiveProfile_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	err := SetActiveProfile(context.Background(), db, 9999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetActiveProfile_NoneActive(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	createTestProfile(t, q, "inactive")

	_, err := q.GetActiveProfile(ctx)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetSettings_CreatesDefault(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()

	s, err := GetSettings(ctx, db)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s.SiteTitle != DefaultSiteTitle {
		t.Errorf("SiteTitle = %q, want %q", s.SiteTitle, DefaultSiteTitle)
	}
	if s.ContactEmail != DefaultContactEmail {
		t.Errorf("ContactEmail = %q, want %q", s.ContactEmail, DefaultContactEmail)
	}
	if !s.IsActive {
		t.Error("IsActive should be true")
	}

	// A second call returns the same row instead of creating another.
	again, err := GetSettings(ctx, db)
	if err != nil {
		t.Fatalf("GetSettings (second call): %v", err)
	}
	if again.ID != s.ID {
		t.Errorf("ID = %d, want %d", again.ID, s.ID)
	}
}

func TestUpdateSettings(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	s, err := GetSettings(ctx, db)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}

	updated, err := q.UpdateSettings(ctx, UpdateSettingsParams{
		ID:                s.ID,
		SiteTitle:         "My Portfolio",
		SiteTagline:       "Hello",
		ContactEmail:      "me@example.com",
		EnableBlog:        true,
		EnableContactForm: true,
		MaintenanceMode:   false,
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.SiteTitle != "My Portfolio" {
		t.Errorf("SiteTitle = %q, want %q", updated.SiteTitle, "My Portfolio")
	}
	if !updated.EnableBlog {
		t.Error("EnableBlog should be true")
	}
}

func createTestArea(t *testing.T, q *Queries, name, slug string) SkillArea {
	t.Helper()
	a, err := q.CreateSkillArea(context.Background(), CreateSkillAreaParams{
		Name: name,
		Slug: slug,
	})
	if err != nil {
		t.Fatalf("CreateSkillArea: %v", err)
	}
	return a
}

func createTestSkill(t *testing.T, q *Queries, areaID int64, name, slug, sfia, sector string) Skill {
	t.Helper()
	now := time.Now()
	s, err := q.CreateSkill(context.Background(), CreateSkillParams{
		AreaID:          areaID,
		Name:            name,
		Slug:            slug,
		SfiaLevel:       sfia,
		IndustryLevel:   "senior",
		Sector:          sector,
		YearsExperience: sql.NullFloat64{Float64: 5, Valid: true},
		Tags:            "[]",
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	return s
}

func TestCreateSkill_DuplicateSlug(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	area := createTestArea(t, q, "Engineering", "engineering")
	createTestSkill(t, q, area.ID, "Go", "go", "L5", "devops")

	now := time.Now()
	_, err := q.CreateSkill(context.Background(), CreateSkillParams{
		AreaID:    area.ID,
		Name:      "Golang",
		Slug:      "go",
		SfiaLevel: "L4",
		Sector:    "devops",
		Tags:      "[]",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err == nil {
		t.Fatal("expected constraint error for duplicate slug")
	}
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConstraintError, got %T: %v", err, err)
	}
	if ce.Field != "slug" {
		t.Errorf("Field = %q, want %q", ce.Field, "slug")
	}
}

func TestCreateSkill_DuplicateNameInArea(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	area := createTestArea(t, q, "Engineering", "engineering")
	other := createTestArea(t, q, "Data", "data")
	createTestSkill(t, q, area.ID, "SQL", "sql", "L4", "fintech")

	// Same name in another area is fine.
	createTestSkill(t, q, other.ID, "SQL", "sql-data", "L4", "fintech")

	now := time.Now()
	_, err := q.CreateSkill(context.Background(), CreateSkillParams{
		AreaID:    area.ID,
		Name:      "SQL",
		Slug:      "sql-2",
		SfiaLevel: "L4",
		Sector:    "devops",
		Tags:      "[]",
		CreatedAt: now,
		UpdatedAt: now,
	})
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConstraintError, got %v", err)
	}
}

func TestListSkills_Filters(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	backend := createTestArea(t, q, "Backend", "backend")
	frontend := createTestArea(t, q, "Frontend", "frontend")

	createTestSkill(t, q, backend.ID, "Go", "go", "L5", "devops")
	createTestSkill(t, q, backend.ID, "Postgres", "postgres", "L4", "fintech")
	createTestSkill(t, q, frontend.ID, "React", "react", "L4", "ecommerce")

	all, err := q.ListSkills(ctx, ListSkillsParams{})
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}

	byLevel, err := q.ListSkills(ctx, ListSkillsParams{SfiaLevel: "L5"})
	if err != nil {
		t.Fatalf("ListSkills(level): %v", err)
	}
	if len(byLevel) != 1 || byLevel[0].Slug != "go" {
		t.Errorf("level filter returned %v", byLevel)
	}

	byArea, err := q.ListSkills(ctx, ListSkillsParams{AreaSlug: "backend"})
	if err != nil {
		t.Fatalf("ListSkills(area): %v", err)
	}
	if len(byArea) != 2 {
		t.Errorf("len(byArea) = %d, want 2", len(byArea))
	}

	combined, err := q.ListSkills(ctx, ListSkillsParams{AreaSlug: "backend", Sector: "fintech"})
	if err != nil {
		t.Fatalf("ListSkills(combined): %v", err)
	}
	if len(combined) != 1 || combined[0].Slug != "postgres" {
		t.Errorf("combined filter returned %v", combined)
	}
}

func TestDeleteSkillArea_Cascades(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	area := createTestArea(t, q, "Backend", "backend")
	skill := createTestSkill(t, q, area.ID, "Go", "go", "L5", "devops")

	if err := q.DeleteSkillArea(ctx, area.ID); err != nil {
		t.Fatalf("DeleteSkillArea: %v", err)
	}

	_, err := q.GetSkillByID(ctx, skill.ID)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows after cascade, got %v", err)
	}
}

func createTestProject(t *testing.T, q *Queries, title, slug string, start time.Time, featured bool) Project {
	t.Helper()
	now := time.Now()
	p, err := q.CreateProject(context.Background(), CreateProjectParams{
		Title:        title,
		Slug:         slug,
		Summary:      "summary",
		StartDate:    start,
		Situation:    "situation for " + title,
		Task:         "task",
		Action:       "action for " + title,
		Result:       "result",
		Technologies: `["go"]`,
		IsFeatured:   featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	return p
}

func TestListProjects_SearchAndOrder(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	createTestProject(t, q, "Payment Gateway", "payment-gateway", old, false)
	createTestProject(t, q, "Search Engine", "search-engine", recent, true)

	projects, err := q.ListProjects(ctx, ListProjectsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len(projects) = %d, want 2", len(projects))
	}
	if projects[0].Slug != "search-engine" {
		t.Errorf("first project = %q, want newest start date first", projects[0].Slug)
	}

	// Case-insensitive substring match on the title.
	matched, err := q.ListProjects(ctx, ListProjectsParams{Search: "payment", Limit: 10})
	if err != nil {
		t.Fatalf("ListProjects(search): %v", err)
	}
	if len(matched) != 1 || matched[0].Slug != "payment-gateway" {
		t.Errorf("search returned %v", matched)
	}

	count, err := q.CountProjects(ctx, ListProjectsParams{Search: "payment"})
	if err != nil {
		t.Fatalf("CountProjects: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestListProjects_CategoryFilter(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat, err := q.CreateProjectCategory(ctx, CreateProjectCategoryParams{Name: "Web", Slug: "web"})
	if err != nil {
		t.Fatalf("CreateProjectCategory: %v", err)
	}

	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	p := createTestProject(t, q, "Site", "site", start, false)
	createTestProject(t, q, "CLI Tool", "cli-tool", start, false)

	_, err = q.UpdateProject(ctx, UpdateProjectParams{
		ID:           p.ID,
		Title:        p.Title,
		Summary:      p.Summary,
		CategoryID:   sql.NullInt64{Int64: cat.ID, Valid: true},
		StartDate:    p.StartDate,
		Situation:    p.Situation,
		Task:         p.Task,
		Action:       p.Action,
		Result:       p.Result,
		Technologies: p.Technologies,
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	filtered, err := q.ListProjects(ctx, ListProjectsParams{CategorySlug: "web", Limit: 10})
	if err != nil {
		t.Fatalf("ListProjects(category): %v", err)
	}
	if len(filtered) != 1 || filtered[0].Slug != "site" {
		t.Errorf("category filter returned %v", filtered)
	}
}

func TestDeleteProjectCategory_SetsNull(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat, err := q.CreateProjectCategory(ctx, CreateProjectCategoryParams{Name: "Web", Slug: "web"})
	if err != nil {
		t.Fatalf("CreateProjectCategory: %v", err)
	}
	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	p := createTestProject(t, q, "Site", "site", start, false)
	if _, err := q.UpdateProject(ctx, UpdateProjectParams{
		ID: p.ID, Title: p.Title, Summary: p.Summary,
		CategoryID:   sql.NullInt64{Int64: cat.ID, Valid: true},
		StartDate:    p.StartDate,
		Situation:    p.Situation, Task: p.Task, Action: p.Action, Result: p.Result,
		Technologies: p.Technologies,
		UpdatedAt:    time.Now(),
	}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	if err := q.DeleteProjectCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteProjectCategory: %v", err)
	}

	got, err := q.GetProjectByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID: %v", err)
	}
	if got.CategoryID.Valid {
		t.Error("CategoryID should be null after category deletion")
	}
}

func TestBlogPost_PublishedVisibility(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	past := sql.NullTime{Time: now.Add(-24 * time.Hour), Valid: true}
	future := sql.NullTime{Time: now.Add(24 * time.Hour), Valid: true}

	mk := func(title, slug, status string, published sql.NullTime) BlogPost {
		p, err := q.CreateBlogPost(ctx, CreateBlogPostParams{
			Title: title, Slug: slug, Status: status,
			PublishedDate: published,
			ReadingTime:   5,
			CreatedAt:     now, UpdatedAt: now,
		})
		if err != nil {
			t.Fatalf("CreateBlogPost(%s): %v", slug, err)
		}
		return p
	}

	mk("Visible", "visible", "published", past)
	mk("Scheduled", "scheduled", "published", future)
	mk("Draft", "draft-post", "draft", sql.NullTime{})

	posts, err := q.ListPublishedPosts(ctx, ListPublishedPostsParams{Now: now, Limit: 10})
	if err != nil {
		t.Fatalf("ListPublishedPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "visible" {
		t.Fatalf("published list = %v, want only the past-dated post", posts)
	}

	if _, err := q.GetPublishedPostBySlug(ctx, "scheduled", now); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("scheduled post should not be visible, got %v", err)
	}
	if _, err := q.GetPublishedPostBySlug(ctx, "draft-post", now); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("draft post should not be visible, got %v", err)
	}
	if _, err := q.GetPublishedPostBySlug(ctx, "visible", now); err != nil {
		t.Errorf("visible post should be readable, got %v", err)
	}
}

func TestIncrementPostViewCount(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	p, err := q.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "Counted", Slug: "counted", Status: "published",
		PublishedDate: sql.NullTime{Time: now.Add(-time.Hour), Valid: true},
		ReadingTime:   3,
		CreatedAt:     now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := q.IncrementPostViewCount(ctx, p.ID); err != nil {
			t.Fatalf("IncrementPostViewCount: %v", err)
		}
	}

	got, err := q.GetBlogPostByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetBlogPostByID: %v", err)
	}
	if got.ViewCount != 3 {
		t.Errorf("ViewCount = %d, want 3", got.ViewCount)
	}
}

func TestBlogPostTags(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	p, err := q.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "Tagged", Slug: "tagged", Status: "published",
		PublishedDate: sql.NullTime{Time: now.Add(-time.Hour), Valid: true},
		ReadingTime:   2,
		CreatedAt:     now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}
	tag, err := q.CreateBlogTag(ctx, CreateBlogTagParams{Name: "Go", Slug: "go"})
	if err != nil {
		t.Fatalf("CreateBlogTag: %v", err)
	}

	if err := q.AddPostTag(ctx, p.ID, tag.ID); err != nil {
		t.Fatalf("AddPostTag: %v", err)
	}
	// Linking twice must not fail.
	if err := q.AddPostTag(ctx, p.ID, tag.ID); err != nil {
		t.Fatalf("AddPostTag (repeat): %v", err)
	}

	byTag, err := q.ListPublishedPosts(ctx, ListPublishedPostsParams{TagSlug: "go", Now: now, Limit: 10})
	if err != nil {
		t.Fatalf("ListPublishedPosts(tag): %v", err)
	}
	if len(byTag) != 1 || byTag[0].ID != p.ID {
		t.Errorf("tag filter returned %v", byTag)
	}

	tags, err := q.GetTagsForPost(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetTagsForPost: %v", err)
	}
	if len(tags) != 1 || tags[0].Slug != "go" {
		t.Errorf("tags = %v", tags)
	}
}

func TestContactMessage_Workflow(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	m, err := q.CreateContactMessage(ctx, CreateContactMessageParams{
		Name:      "Visitor",
		Email:     "visitor@example.com",
		Subject:   "Hello",
		Message:   "Hi there",
		IPAddress: sql.NullString{String: "203.0.113.9", Valid: true},
		UserAgent: "Mozilla/5.0",
		UaSummary: "Firefox on Linux",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if m.Status != "new" {
		t.Errorf("Status = %q, want %q", m.Status, "new")
	}

	repliedAt := time.Now()
	updated, err := q.UpdateContactMessageStatus(ctx, UpdateContactMessageStatusParams{
		ID:        m.ID,
		Status:    "replied",
		RepliedAt: sql.NullTime{Time: repliedAt, Valid: true},
		UpdatedAt: repliedAt,
	})
	if err != nil {
		t.Fatalf("UpdateContactMessageStatus: %v", err)
	}
	if updated.Status != "replied" {
		t.Errorf("Status = %q, want %q", updated.Status, "replied")
	}
	if !updated.RepliedAt.Valid {
		t.Error("RepliedAt should be set")
	}

	// Archiving later keeps the reply timestamp.
	archived, err := q.UpdateContactMessageStatus(ctx, UpdateContactMessageStatusParams{
		ID:        m.ID,
		Status:    "archived",
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateContactMessageStatus(archive): %v", err)
	}
	if !archived.RepliedAt.Valid {
		t.Error("RepliedAt should survive later status changes")
	}

	newOnly, err := q.ListContactMessages(ctx, "new")
	if err != nil {
		t.Fatalf("ListContactMessages: %v", err)
	}
	if len(newOnly) != 0 {
		t.Errorf("len(newOnly) = %d, want 0", len(newOnly))
	}
}

func TestListCertifications_TypeFilter(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	mk := func(title, certType string, issued time.Time) {
		_, err := q.CreateCertification(ctx, CreateCertificationParams{
			Title: title, CertType: certType, IssuingAuthority: "Authority",
			IssueDate: issued, ColorClass: "bg-blue-500",
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			t.Fatalf("CreateCertification(%s): %v", title, err)
		}
	}

	mk("Cert A", "certification", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	mk("Cert B", "certification", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	mk("Award C", "award", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	certs, err := q.ListCertifications(ctx, "certification")
	if err != nil {
		t.Fatalf("ListCertifications: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("len(certs) = %d, want 2", len(certs))
	}
	if certs[0].Title != "Cert B" {
		t.Errorf("first cert = %q, want most recently issued first", certs[0].Title)
	}

	all, err := q.ListCertifications(ctx, "")
	if err != nil {
		t.Fatalf("ListCertifications(all): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestSkillEvidenceLinks(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	area := createTestArea(t, q, "Backend", "backend")
	skill := createTestSkill(t, q, area.ID, "Go", "go", "L5", "devops")
	project := createTestProject(t, q, "Gateway", "gateway", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), false)

	cert, err := q.CreateCertification(ctx, CreateCertificationParams{
		Title: "Cloud Cert", CertType: "certification", IssuingAuthority: "Cloud Co",
		IssueDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), ColorClass: "bg-blue-500",
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateCertification: %v", err)
	}

	if err := q.AddSkillProject(ctx, skill.ID, project.ID); err != nil {
		t.Fatalf("AddSkillProject: %v", err)
	}
	if err := q.AddSkillCertification(ctx, skill.ID, cert.ID); err != nil {
		t.Fatalf("AddSkillCertification: %v", err)
	}

	projects, err := q.GetProjectsForSkill(ctx, skill.ID)
	if err != nil {
		t.Fatalf("GetProjectsForSkill: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != project.ID {
		t.Errorf("projects = %v", projects)
	}

	certs, err := q.GetCertificationsForSkill(ctx, skill.ID)
	if err != nil {
		t.Fatalf("GetCertificationsForSkill: %v", err)
	}
	if len(certs) != 1 || certs[0].ID != cert.ID {
		t.Errorf("certs = %v", certs)
	}

	// Deleting the project removes the link but not the skill.
	if err := q.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	projects, err = q.GetProjectsForSkill(ctx, skill.ID)
	if err != nil {
		t.Fatalf("GetProjectsForSkill (after delete): %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("len(projects) = %d, want 0 after cascade", len(projects))
	}
	if _, err := q.GetSkillByID(ctx, skill.ID); err != nil {
		t.Errorf("skill should survive project deletion: %v", err)
	}
}

func TestListExperiences_Order(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	mk := func(role string, start time.Time, position int64) {
		_, err := q.CreateExperience(ctx, CreateExperienceParams{
			Role: role, Company: "Acme",
			StartDate: start, Position: position,
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			t.Fatalf("CreateExperience(%s): %v", role, err)
		}
	}

	mk("Junior", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	mk("Senior", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 0)

	entries, err := q.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Role != "Senior" {
		t.Errorf("first entry = %q, want most recent start first", entries[0].Role)
	}
}

func TestEducation_CRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	e, err := q.CreateEducation(ctx, CreateEducationParams{
		Institution:  "State University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		StartDate:    time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      sql.NullTime{Time: time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		Gpa:          sql.NullFloat64{Float64: 3.8, Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	updated, err := q.UpdateEducation(ctx, UpdateEducationParams{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       "MSc",
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Gpa:          e.Gpa,
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateEducation: %v", err)
	}
	if updated.Degree != "MSc" {
		t.Errorf("Degree = %q, want %q", updated.Degree, "MSc")
	}

	if err := q.DeleteEducation(ctx, e.ID); err != nil {
		t.Fatalf("DeleteEducation: %v", err)
	}
	if _, err := q.GetEducationByID(ctx, e.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCreateEvent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	err := q.CreateEvent(ctx, CreateEventParams{
		Level:     "info",
		Category:  "system",
		Message:   "started",
		Metadata:  `{"version":"1.0"}`,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	events, err := q.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 || events[0].Message != "started" {
		t.Errorf("events = %v", events)
	}
}
