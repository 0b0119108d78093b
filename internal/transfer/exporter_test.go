package transfer

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio-go/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "folio-transfer-test-*.db")
	require.NoError(t, err)
	dbPath := f.Name()
	require.NoError(t, f.Close())

	db, err := store.NewDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})
	return db
}

func readJSONFile(t *testing.T, path string, dst any) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dst))
}

func TestExportEmptyDatabase(t *testing.T) {
	db := testDB(t)
	exporter := NewExporter(db, slog.Default())
	dir := t.TempDir()

	written, err := exporter.Export(context.Background(), dir)
	require.NoError(t, err)

	// No active profile means no profile.json; everything else still
	// exports, possibly empty.
	assert.NotContains(t, written, FileProfile)
	for _, file := range []string{FileSkills, FileProjects, FileBlog, FileSite} {
		assert.Contains(t, written, file)
	}

	var skills []ExportSkill
	readJSONFile(t, filepath.Join(dir, FileSkills), &skills)
	assert.Empty(t, skills)

	var site ExportSite
	readJSONFile(t, filepath.Join(dir, FileSite), &site)
	assert.Equal(t, store.DefaultSiteTitle, site.SiteTitle)
}

func TestExportWithData(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := store.New(db)
	now := time.Now()

	_, err := q.CreateProfile(ctx, store.CreateProfileParams{
		Name: "Jane Doe", JobTitle: "Engineer", Email: "jane@example.com",
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	area, err := q.CreateSkillArea(ctx, store.CreateSkillAreaParams{Name: "Backend", Slug: "backend"})
	require.NoError(t, err)
	_, err = q.CreateSkill(ctx, store.CreateSkillParams{
		AreaID: area.ID, Name: "Go", Slug: "backend-go",
		SfiaLevel: "L5", Sector: "devops", Tags: "[]",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = q.CreateProject(ctx, store.CreateProjectParams{
		Title: "Gateway", Slug: "gateway", Summary: "s",
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Situation: "s", Task: "t", Action: "a", Result: "r",
		Technologies: `["Go","SQLite"]`,
		CreatedAt:    now, UpdatedAt: now,
	})
	require.NoError(t, err)

	published := sql.NullTime{Time: now.Add(-time.Hour), Valid: true}
	_, err = q.CreateBlogPost(ctx, store.CreateBlogPostParams{
		Title: "Hello", Slug: "hello", Content: "body", Status: "published",
		PublishedDate: published, ReadingTime: 1,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = q.CreateBlogPost(ctx, store.CreateBlogPostParams{
		Title: "Draft", Slug: "draft", Content: "wip", Status: "draft",
		ReadingTime: 1, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	exporter := NewExporter(db, slog.Default())
	written, err := exporter.Export(ctx, dir)
	require.NoError(t, err)
	assert.Contains(t, written, FileProfile)

	var profile ExportProfile
	readJSONFile(t, filepath.Join(dir, FileProfile), &profile)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Engineer", profile.Title)

	var skills []ExportSkill
	readJSONFile(t, filepath.Join(dir, FileSkills), &skills)
	require.Len(t, skills, 1)
	assert.Equal(t, "Backend", skills[0].Area)
	assert.Equal(t, "backend-go", skills[0].Slug)

	var projects []ExportProject
	readJSONFile(t, filepath.Join(dir, FileProjects), &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"Go", "SQLite"}, projects[0].Technologies)

	// Drafts never leave the database.
	var posts []ExportBlogPost
	readJSONFile(t, filepath.Join(dir, FileBlog), &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Slug)
}
