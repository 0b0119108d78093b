// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"FOLIO_DB_PATH" envDefault:"./data/folio.db"`
	ServerHost string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FOLIO_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// BaseURL is the canonical site URL used in the sitemap and exported
	// links, without a trailing slash.
	BaseURL string `env:"FOLIO_BASE_URL" envDefault:"http://localhost:8080"`

	// UploadsDir holds profile images, resumes, and project media.
	UploadsDir string `env:"FOLIO_UPLOADS_DIR" envDefault:"./uploads"`

	// ExportDir is where the JSON export writes its files.
	ExportDir string `env:"FOLIO_EXPORT_DIR" envDefault:"./export"`

	// GeoIP configuration
	GeoIPDBPath string `env:"FOLIO_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// Rate limiting (requests per hour)
	RateLimitAnon    int `env:"FOLIO_RATE_LIMIT_ANON" envDefault:"100"`
	RateLimitKeyed   int `env:"FOLIO_RATE_LIMIT_KEYED" envDefault:"1000"`
	RateLimitContact int `env:"FOLIO_RATE_LIMIT_CONTACT" envDefault:"5"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// GeoIPEnabled returns true if a GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.RateLimitAnon <= 0 || cfg.RateLimitKeyed <= 0 || cfg.RateLimitContact <= 0 {
		return nil, fmt.Errorf("rate limits must be positive")
	}

	return cfg, nil
}
