package service

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(html, "<h1>") {
		t.Errorf("output missing heading: %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("output missing emphasis: %q", html)
	}
}

func TestRenderMarkdown_StripsScripts(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization: %q", html)
	}
}

func TestEstimateReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 1},
		{"short", 50, 1},
		{"exactly one minute", 200, 1},
		{"just over", 201, 2},
		{"long", 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := EstimateReadingTime(content); got != tt.want {
				t.Errorf("EstimateReadingTime(%d words) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}
