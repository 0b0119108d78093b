// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/folio-go/internal/config"
	"github.com/olegiv/folio-go/internal/geoip"
	"github.com/olegiv/folio-go/internal/handler/api"
	"github.com/olegiv/folio-go/internal/logging"
	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/storage"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/transfer"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "folio - Portfolio Content Backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DB_PATH             SQLite database path (default: ./data/folio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SERVER_HOST         Server host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SERVER_PORT         Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ENV                 Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_LOG_LEVEL           Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_BASE_URL            Canonical site URL for the sitemap (default: http://localhost:8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_UPLOADS_DIR         Uploaded assets directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_EXPORT_DIR          JSON export output directory (default: ./export)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_GEOIP_DB_PATH       GeoLite2-Country.mmdb path (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_RATE_LIMIT_ANON     Anonymous API requests per hour (default: 100)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_RATE_LIMIT_KEYED    Keyed API requests per hour (default: 1000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_RATE_LIMIT_CONTACT  Contact messages per hour per IP (default: 5)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/olegiv/folio-go\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("folio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log table
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// GeoIP lookups stay disabled when no database is configured
	geo, err := geoip.NewLookup(cfg.GeoIPDBPath)
	if err != nil {
		slog.Warn("GeoIP disabled", "error", err)
	}
	defer func() { _ = geo.Close() }()
	if geo.IsEnabled() {
		slog.Info("GeoIP lookups enabled", "path", cfg.GeoIPDBPath)
	}

	// Uploaded asset storage
	uploads, err := storage.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		return fmt.Errorf("initializing uploads storage: %w", err)
	}

	exporter := transfer.NewExporter(db, logger)
	h := api.NewHandler(db, geo)

	// Rate limiters
	apiLimiter := middleware.NewTieredRateLimiter(cfg.RateLimitAnon, cfg.RateLimitKeyed)
	contactLimiter := middleware.NewContactRateLimiter(cfg.RateLimitContact)

	janitorDone := make(chan struct{})
	defer close(janitorDone)
	apiLimiter.StartLimiterJanitor(10000, time.Hour, janitorDone)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(60 * time.Second))

	// REST API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiLimiter.Middleware())

		r.Get("/status", h.Status)

		// Public read endpoints
		r.Get("/profile", h.GetActiveProfile)

		r.Get("/skill-areas", h.ListSkillAreas)
		r.Get("/skills", h.ListSkills)
		r.Get("/skills/featured", h.ListFeaturedSkills)
		r.Get("/skills/{id}", h.GetSkill)
		r.Get("/skills/{id}/evidence", h.GetSkillEvidence)

		r.Get("/project-categories", h.ListProjectCategories)
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/featured", h.ListFeaturedProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/projects/{id}/images", h.ListProjectImages)

		r.Get("/experience", h.ListExperiences)
		r.Get("/experience/{id}", h.GetExperience)

		r.Get("/certifications", h.ListCertifications)
		r.Get("/certifications/featured", h.ListFeaturedCertifications)
		r.Get("/certifications/{id}", h.GetCertification)

		r.Get("/education", h.ListEducation)
		r.Get("/education/{id}", h.GetEducation)

		r.Get("/blog-series", h.ListBlogSeries)
		r.Get("/blog-categories", h.ListBlogCategories)
		r.Get("/blog-tags", h.ListBlogTags)
		r.Get("/blog", h.ListPublishedPosts)
		r.Get("/blog/{slug}", h.GetPublishedPost)

		// Contact form with its own tighter limit
		r.With(contactLimiter.Middleware()).Post("/contact", h.SubmitContactMessage)

		// Demo endpoints serve compact unwrapped JSON
		r.Get("/demo/profile.json", h.DemoProfile)
		r.Get("/demo/skills.json", h.DemoSkills)
		r.Get("/demo/projects.json", h.DemoProjects)
		r.Get("/demo/experience.json", h.DemoExperience)
		r.Get("/demo/certifications.json", h.DemoCertifications)

		// Content management endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Get("/profiles", h.ListProfiles)
			r.Post("/profiles", h.CreateProfile)
			r.Get("/profiles/{id}", h.GetProfile)
			r.Put("/profiles/{id}", h.UpdateProfile)
			r.Delete("/profiles/{id}", h.DeleteProfile)
			r.Post("/profiles/{id}/activate", h.ActivateProfile)

			r.Post("/skill-areas", h.CreateSkillArea)
			r.Put("/skill-areas/{id}", h.UpdateSkillArea)
			r.Delete("/skill-areas/{id}", h.DeleteSkillArea)

			r.Post("/skills", h.CreateSkill)
			r.Put("/skills/{id}", h.UpdateSkill)
			r.Delete("/skills/{id}", h.DeleteSkill)
			r.Post("/skills/{id}/evidence", h.LinkSkillEvidence)

			r.Post("/project-categories", h.CreateProjectCategory)
			r.Delete("/project-categories/{id}", h.DeleteProjectCategory)

			r.Post("/projects", h.CreateProject)
			r.Put("/projects/{id}", h.UpdateProject)
			r.Delete("/projects/{id}", h.DeleteProject)
			r.Post("/projects/{id}/images", h.CreateProjectImage)

			r.Post("/experience", h.CreateExperience)
			r.Put("/experience/{id}", h.UpdateExperience)
			r.Delete("/experience/{id}", h.DeleteExperience)

			r.Post("/certifications", h.CreateCertification)
			r.Put("/certifications/{id}", h.UpdateCertification)
			r.Delete("/certifications/{id}", h.DeleteCertification)

			r.Post("/education", h.CreateEducation)
			r.Put("/education/{id}", h.UpdateEducation)
			r.Delete("/education/{id}", h.DeleteEducation)

			r.Post("/blog-series", h.CreateBlogSeries)
			r.Delete("/blog-series/{id}", h.DeleteBlogSeries)
			r.Post("/blog-categories", h.CreateBlogCategory)
			r.Delete("/blog-categories/{id}", h.DeleteBlogCategory)
			r.Post("/blog-tags", h.CreateBlogTag)
			r.Delete("/blog-tags/{id}", h.DeleteBlogTag)

			r.Get("/posts/{id}", h.GetBlogPost)
			r.Post("/posts", h.CreateBlogPost)
			r.Put("/posts/{id}", h.UpdateBlogPost)
			r.Delete("/posts/{id}", h.DeleteBlogPost)
			r.Post("/posts/{id}/tags", h.AddPostTag)
			r.Delete("/posts/{id}/tags/{tagID}", h.RemovePostTag)

			r.Get("/messages", h.ListContactMessages)
			r.Get("/messages/{id}", h.GetContactMessage)
			r.Put("/messages/{id}/status", h.UpdateContactMessageStatus)
			r.Put("/messages/{id}/notes", h.UpdateContactMessageNotes)
			r.Delete("/messages/{id}", h.DeleteContactMessage)

			r.Get("/settings", h.GetSettings)
			r.Put("/settings", h.UpdateSettings)

			r.Get("/events", h.ListRecentEvents)
			r.Delete("/events", h.PruneEvents)

			r.Post("/export", h.ExportContent(exporter, cfg.ExportDir))

			r.Post("/uploads", h.UploadAsset(uploads))
			r.Delete("/uploads/*", h.DeleteAsset(uploads))
		})
	})

	// Sitemap and uploaded asset serving
	r.Get("/sitemap.xml", h.Sitemap(cfg.BaseURL))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
