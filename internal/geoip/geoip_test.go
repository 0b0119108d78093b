package geoip

import "testing"

func TestCountry_Disabled(t *testing.T) {
	g, err := NewLookup("")
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	if g.IsEnabled() {
		t.Error("lookup should be disabled without a database path")
	}

	tests := []struct {
		ip   string
		want string
	}{
		{"127.0.0.1", "LOCAL"},
		{"::1", "LOCAL"},
		{"10.1.2.3", "LOCAL"},
		{"192.168.0.5", "LOCAL"},
		{"172.20.0.1", "LOCAL"},
		{"203.0.113.9", ""},
		{"not-an-ip", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := g.Country(tt.ip); got != tt.want {
			t.Errorf("Country(%q) = %q, want %q", tt.ip, got, tt.want)
		}
	}
}

func TestNewLookup_MissingFile(t *testing.T) {
	g, err := NewLookup("/nonexistent/GeoLite2-Country.mmdb")
	if err == nil {
		t.Fatal("expected error for missing database file")
	}
	if g.IsEnabled() {
		t.Error("lookup should stay disabled after a load failure")
	}
	// The degraded instance still answers.
	if got := g.Country("127.0.0.1"); got != "LOCAL" {
		t.Errorf("Country = %q, want LOCAL", got)
	}
}
