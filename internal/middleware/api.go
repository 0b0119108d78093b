// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for rate limiting and
// request context handling.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/olegiv/folio-go/internal/util"
)

// ContextKey is the type used for request context keys set by middleware.
type ContextKey string

// APIKeyHeader carries an API key identifying a trusted client. Keyed
// clients get the higher rate limit tier.
const APIKeyHeader = "X-API-Key"

// APIError represents a JSON error response for the API.
type APIError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	apiErr.Error.Details = details

	_ = json.NewEncoder(w).Encode(apiErr)
}

// limiterCache is a generic rate limiter cache with double-check locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// newLimiterCache creates a limiter cache allowing perHour requests per
// hour per key, with a burst of the same size.
func newLimiterCache[K comparable](perHour int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(float64(perHour) / time.Hour.Seconds()),
		burst:    perHour,
	}
}

// get returns the rate limiter for a specific key, creating one if needed.
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// clearIfExceeds clears all entries if the cache exceeds maxSize.
// Returns true if the cache was cleared.
func (lc *limiterCache[K]) clearIfExceeds(maxSize int) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[K]*rate.Limiter)
		return true
	}
	return false
}

// TieredRateLimiter limits API requests per hour, with separate budgets
// for anonymous clients (keyed by IP) and clients presenting an API key
// (keyed by the key value).
type TieredRateLimiter struct {
	anon  *limiterCache[string]
	keyed *limiterCache[string]
}

// NewTieredRateLimiter creates a limiter with the given hourly budgets.
func NewTieredRateLimiter(anonPerHour, keyedPerHour int) *TieredRateLimiter {
	return &TieredRateLimiter{
		anon:  newLimiterCache[string](anonPerHour),
		keyed: newLimiterCache[string](keyedPerHour),
	}
}

// Middleware returns the rate limiting middleware for API routes.
func (rl *TieredRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var limiter *rate.Limiter
			if key := r.Header.Get(APIKeyHeader); key != "" {
				limiter = rl.keyed.get(key)
			} else {
				limiter = rl.anon.get(util.ClientIP(r))
			}

			if !limiter.Allow() {
				WriteAPIError(w, http.StatusTooManyRequests, "rate_limit_exceeded",
					"Rate limit exceeded. Please slow down.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContactRateLimiter limits contact form submissions per IP. The budget
// is intentionally small to keep the inbox usable.
type ContactRateLimiter struct {
	cache *limiterCache[string]
}

// NewContactRateLimiter creates a contact limiter with the given hourly budget.
func NewContactRateLimiter(perHour int) *ContactRateLimiter {
	return &ContactRateLimiter{cache: newLimiterCache[string](perHour)}
}

// Middleware returns the rate limiting middleware for the contact endpoint.
func (rl *ContactRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := util.ClientIP(r)
			if !rl.cache.get(ip).Allow() {
				slog.Warn("contact rate limit exceeded", "ip", ip)
				WriteAPIError(w, http.StatusTooManyRequests, "rate_limit_exceeded",
					"Too many messages. Please wait before sending another.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StartLimiterJanitor periodically clears oversized limiter caches so a
// scan of many source addresses cannot grow them without bound. It stops
// when done is closed.
func (rl *TieredRateLimiter) StartLimiterJanitor(maxSize int, interval time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if rl.anon.clearIfExceeds(maxSize) {
					slog.Info("cleared anonymous rate limiter cache", "max_size", maxSize)
				}
				rl.keyed.clearIfExceeds(maxSize)
			case <-done:
				return
			}
		}
	}()
}
