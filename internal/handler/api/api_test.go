package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/geoip"
	"github.com/olegiv/folio-go/internal/store"
)

func testHandler(t *testing.T) (*Handler, *sql.DB) {
	t.Helper()

	f, err := os.CreateTemp("", "folio-api-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	geo, err := geoip.NewLookup("")
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	return NewHandler(db, geo), db
}

func testRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/v1/status", h.Status)
	r.Get("/api/v1/profile", h.GetActiveProfile)
	r.Post("/api/v1/admin/profiles", h.CreateProfile)
	r.Post("/api/v1/admin/profiles/{id}/activate", h.ActivateProfile)
	r.Get("/api/v1/skills", h.ListSkills)
	r.Post("/api/v1/admin/skill-areas", h.CreateSkillArea)
	r.Post("/api/v1/admin/skills", h.CreateSkill)
	r.Get("/api/v1/projects", h.ListProjects)
	r.Post("/api/v1/admin/projects", h.CreateProject)
	r.Get("/api/v1/blog", h.ListPublishedPosts)
	r.Get("/api/v1/blog/{slug}", h.GetPublishedPost)
	r.Post("/api/v1/admin/posts", h.CreateBlogPost)
	r.Post("/api/v1/contact", h.SubmitContactMessage)
	r.Get("/api/v1/admin/messages", h.ListContactMessages)
	r.Post("/api/v1/admin/messages/{id}/status", h.UpdateContactMessageStatus)
	r.Get("/api/v1/demo/profile.json", h.DemoProfile)
	r.Get("/api/v1/demo/skills.json", h.DemoSkills)
	r.Get("/api/v1/experience", h.ListExperiences)
	r.Post("/api/v1/admin/experience", h.CreateExperience)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var resp struct {
		Data json.RawMessage `json:"data"`
		Meta *Meta           `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response envelope: %v", err)
	}
	if dst != nil {
		if err := json.Unmarshal(resp.Data, dst); err != nil {
			t.Fatalf("decoding response data: %v", err)
		}
	}
}

func TestStatus(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var status StatusResponse
	decodeData(t, rec, &status)
	if status.Status != "ok" {
		t.Errorf("Status = %q, want %q", status.Status, "ok")
	}
}

func TestCreateProfile_FirstIsActive(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/profiles", ProfileRequest{
		Name: "Jane Doe", JobTitle: "Engineer", Email: "jane@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var first ProfileResponse
	decodeData(t, rec, &first)
	if !first.IsActive {
		t.Error("first profile should be active")
	}

	rec = doJSON(t, r, http.MethodPost, "/api/v1/admin/profiles", ProfileRequest{
		Name: "John Doe", JobTitle: "Engineer", Email: "john@example.com",
	})
	var second ProfileResponse
	decodeData(t, rec, &second)
	if second.IsActive {
		t.Error("second profile should not be active")
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/profile", nil)
	var active ProfileResponse
	decodeData(t, rec, &active)
	if active.ID != first.ID {
		t.Errorf("active profile ID = %d, want %d", active.ID, first.ID)
	}
}

func TestCreateProfile_Validation(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/profiles", ProfileRequest{
		Name: "Jane", JobTitle: "Engineer", Email: "not-an-email",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Error.Code != "validation_error" {
		t.Errorf("error code = %q, want %q", resp.Error.Code, "validation_error")
	}
	if _, ok := resp.Error.Details["email"]; !ok {
		t.Errorf("details = %v, want email entry", resp.Error.Details)
	}
}

func TestActivateProfile(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	doJSON(t, r, http.MethodPost, "/api/v1/admin/profiles", ProfileRequest{
		Name: "Jane", JobTitle: "Engineer", Email: "jane@example.com",
	})
	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/profiles", ProfileRequest{
		Name: "John", JobTitle: "Engineer", Email: "john@example.com",
	})
	var second ProfileResponse
	decodeData(t, rec, &second)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/admin/profiles/2/activate", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/profile", nil)
	var active ProfileResponse
	decodeData(t, rec, &active)
	if active.ID != second.ID {
		t.Errorf("active profile ID = %d, want %d", active.ID, second.ID)
	}
}

func TestCreateSkill_SlugFromAreaAndName(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/skill-areas", SkillAreaRequest{Name: "Cloud & DevOps"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating area: status = %d: %s", rec.Code, rec.Body.String())
	}
	var area SkillAreaResponse
	decodeData(t, rec, &area)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", SkillRequest{
		AreaID: area.ID, Name: "Kubernetes", SfiaLevel: "L5", Sector: "devops",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating skill: status = %d: %s", rec.Code, rec.Body.String())
	}

	var skill SkillResponse
	decodeData(t, rec, &skill)
	if skill.Slug != "cloud-devops-kubernetes" {
		t.Errorf("Slug = %q, want %q", skill.Slug, "cloud-devops-kubernetes")
	}
	if skill.Tags == nil || len(skill.Tags) != 0 {
		t.Errorf("Tags = %v, want empty list", skill.Tags)
	}
}

func TestCreateSkill_InvalidLevel(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/skill-areas", SkillAreaRequest{Name: "Backend"})
	var area SkillAreaResponse
	decodeData(t, rec, &area)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", SkillRequest{
		AreaID: area.ID, Name: "Go", SfiaLevel: "level-9",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestCreateSkill_DuplicateConflict(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/skill-areas", SkillAreaRequest{Name: "Backend"})
	var area SkillAreaResponse
	decodeData(t, rec, &area)

	body := SkillRequest{AreaID: area.ID, Name: "Go", SfiaLevel: "L5", Sector: "devops"}
	doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", body)
	rec = doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusConflict, rec.Body.String())
	}
}

func TestListProjects_Pagination(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", ProjectRequest{
			Title: title, Summary: "s", StartDate: "2023-01-01",
			Situation: "s", Task: "t", Action: "a", Result: "r",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("creating project %s: status = %d: %s", title, rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/api/v1/projects?per_page=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data []ProjectResponse `json:"data"`
		Meta *Meta             `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(resp.Data))
	}
	if resp.Meta == nil || resp.Meta.Total != 3 || resp.Meta.Pages != 2 {
		t.Errorf("meta = %+v, want total 3 across 2 pages", resp.Meta)
	}
}

func TestCreateProject_EndBeforeStart(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	end := "2022-01-01"
	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", ProjectRequest{
		Title: "Alpha", Summary: "s", StartDate: "2023-01-01", EndDate: &end,
		Situation: "s", Task: "t", Action: "a", Result: "r",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestPublishedPost_ViewCountAndHTML(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/posts", BlogPostRequest{
		Title: "Hello World", Content: "# Heading\n\nBody text.", Status: "published",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating post: status = %d: %s", rec.Code, rec.Body.String())
	}
	var created BlogPostResponse
	decodeData(t, rec, &created)
	if created.Slug != "hello-world" {
		t.Errorf("Slug = %q, want %q", created.Slug, "hello-world")
	}
	if created.PublishedDate == nil {
		t.Error("publishing without a date should default to now")
	}
	if created.ReadingTime < 1 {
		t.Errorf("ReadingTime = %d, want >= 1", created.ReadingTime)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/blog/hello-world", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var post BlogPostResponse
	decodeData(t, rec, &post)
	if post.ViewCount != 1 {
		t.Errorf("ViewCount = %d, want 1", post.ViewCount)
	}
	if post.ContentHTML == "" {
		t.Error("ContentHTML should be rendered")
	}

	doJSON(t, r, http.MethodGet, "/api/v1/blog/hello-world", nil)
	rec = doJSON(t, r, http.MethodGet, "/api/v1/blog/hello-world", nil)
	decodeData(t, rec, &post)
	if post.ViewCount != 3 {
		t.Errorf("ViewCount = %d, want 3", post.ViewCount)
	}
}

func TestPublishedPost_DraftHidden(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/posts", BlogPostRequest{
		Title: "Draft Post", Content: "wip", Status: "draft",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating post: status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/blog/draft-post", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/blog", nil)
	var posts []BlogPostResponse
	decodeData(t, rec, &posts)
	if len(posts) != 0 {
		t.Errorf("len(posts) = %d, want 0", len(posts))
	}
}

func TestSubmitContactMessage(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(ContactRequest{
		Name: "Visitor", Email: "visitor@example.com", Subject: "Hi", Message: "Hello there",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.RemoteAddr = "203.0.113.7:4711"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var msg ContactMessageResponse
	decodeData(t, rec, &msg)
	if msg.Status != "new" {
		t.Errorf("Status = %q, want %q", msg.Status, "new")
	}
	if msg.IPAddress == nil || *msg.IPAddress != "203.0.113.7" {
		t.Errorf("IPAddress = %v, want 203.0.113.7", msg.IPAddress)
	}
	if msg.UaSummary != "Chrome on Windows" {
		t.Errorf("UaSummary = %q, want %q", msg.UaSummary, "Chrome on Windows")
	}
}

func TestSubmitContactMessage_Validation(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/contact", ContactRequest{Email: "bad"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := resp.Error.Details[field]; !ok {
			t.Errorf("details missing %q: %v", field, resp.Error.Details)
		}
	}
}

func TestUpdateContactMessageStatus_Replied(t *testing.T) {
	h, db := testHandler(t)
	r := testRouter(h)

	q := store.New(db)
	now := time.Now()
	msg, err := q.CreateContactMessage(context.Background(), store.CreateContactMessageParams{
		Name: "Visitor", Email: "v@example.com", Message: "Hi",
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/messages/1/status", MessageStatusRequest{Status: "replied"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var updated ContactMessageResponse
	decodeData(t, rec, &updated)
	if updated.ID != msg.ID || updated.Status != "replied" {
		t.Errorf("message = %+v, want replied", updated)
	}
	if updated.RepliedAt == nil {
		t.Error("RepliedAt should be set on transition to replied")
	}

	rec = doJSON(t, r, http.MethodPost, "/api/v1/admin/messages/1/status", MessageStatusRequest{Status: "invalid"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestDemoProfile_EmptyWhenNoActive(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/demo/profile.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var data map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("data = %v, want empty object", data)
	}
}

func TestDemoSkills(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/skill-areas", SkillAreaRequest{Name: "Backend"})
	var area SkillAreaResponse
	decodeData(t, rec, &area)
	doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", SkillRequest{
		AreaID: area.ID, Name: "Go", SfiaLevel: "L5", Sector: "devops",
	})

	rec = doJSON(t, r, http.MethodGet, "/api/v1/demo/skills.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var data []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(data))
	}
	if data[0]["area"] != "Backend" || data[0]["sfia"] != "L5" {
		t.Errorf("entry = %v, want Backend/L5", data[0])
	}
}

func TestExperienceDuration(t *testing.T) {
	h, _ := testHandler(t)
	r := testRouter(h)

	end := "2023-04-01"
	rec := doJSON(t, r, http.MethodPost, "/api/v1/admin/experience", ExperienceRequest{
		Role: "Engineer", Company: "Acme", StartDate: "2021-01-01", EndDate: &end,
		Situation: "s", Task: "t", Action: "a", Result: "r",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var entry ExperienceResponse
	decodeData(t, rec, &entry)
	if entry.Duration != "2 yrs 3 mos" {
		t.Errorf("Duration = %q, want %q", entry.Duration, "2 yrs 3 mos")
	}
}
