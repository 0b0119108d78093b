package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestTieredRateLimiter_AnonBudget(t *testing.T) {
	rl := NewTieredRateLimiter(3, 10)
	h := rl.Middleware()(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 after budget exhausted", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestTieredRateLimiter_SeparateIPs(t *testing.T) {
	rl := NewTieredRateLimiter(1, 10)
	h := rl.Middleware()(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first IP: status = %d, want 200", rec.Code)
	}

	// A different IP has its own budget.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "192.0.2.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Errorf("second IP: status = %d, want 200", rec.Code)
	}
}

func TestTieredRateLimiter_KeyedTier(t *testing.T) {
	rl := NewTieredRateLimiter(1, 5)
	h := rl.Middleware()(okHandler())

	// Exhaust the anonymous budget for this IP.
	anon := httptest.NewRequest(http.MethodGet, "/", nil)
	anon.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, anon)
	if rec.Code != http.StatusOK {
		t.Fatalf("anon request: status = %d, want 200", rec.Code)
	}

	// The keyed tier has its own, larger budget.
	for i := 0; i < 5; i++ {
		keyed := httptest.NewRequest(http.MethodGet, "/", nil)
		keyed.RemoteAddr = "192.0.2.1:1234"
		keyed.Header.Set(APIKeyHeader, "client-key")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, keyed)
		if rec.Code != http.StatusOK {
			t.Fatalf("keyed request %d: status = %d, want 200", i, rec.Code)
		}
	}
}

func TestContactRateLimiter(t *testing.T) {
	rl := NewContactRateLimiter(2)
	h := rl.Middleware()(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}

func TestLimiterCacheClearIfExceeds(t *testing.T) {
	lc := newLimiterCache[string](10)
	lc.get("a")
	lc.get("b")
	lc.get("c")

	if lc.clearIfExceeds(5) {
		t.Error("cache below max size should not be cleared")
	}
	if !lc.clearIfExceeds(2) {
		t.Error("cache above max size should be cleared")
	}
	if len(lc.limiters) != 0 {
		t.Errorf("len(limiters) = %d, want 0 after clear", len(lc.limiters))
	}
}
