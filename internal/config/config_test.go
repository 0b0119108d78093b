package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment should default to true")
	}
	if cfg.GeoIPEnabled() {
		t.Error("GeoIPEnabled should default to false")
	}
	if cfg.RateLimitAnon != 100 || cfg.RateLimitKeyed != 1000 || cfg.RateLimitContact != 5 {
		t.Errorf("rate limits = %d/%d/%d, want 100/1000/5",
			cfg.RateLimitAnon, cfg.RateLimitKeyed, cfg.RateLimitContact)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FOLIO_SERVER_PORT", "9090")
	t.Setenv("FOLIO_ENV", "production")
	t.Setenv("FOLIO_GEOIP_DB_PATH", "/var/lib/geoip/GeoLite2-Country.mmdb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment should be false in production")
	}
	if !cfg.GeoIPEnabled() {
		t.Error("GeoIPEnabled should be true when a path is set")
	}
}

func TestLoadRejectsBadRateLimit(t *testing.T) {
	t.Setenv("FOLIO_RATE_LIMIT_ANON", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero rate limit")
	}
}
