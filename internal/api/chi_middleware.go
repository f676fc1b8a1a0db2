// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/listenlog/internal/config"
	"github.com/tomtom215/listenlog/internal/middleware"
)

// RateLimitConfig is a per-IP request budget.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// ChiMiddlewareConfig configures the CORS and rate-limit middleware.
type ChiMiddlewareConfig struct {
	CORS cors.Options

	// RateLimit applies to the page and the data API.
	RateLimit RateLimitConfig
	// HealthRateLimit applies to the probes, which poll far more often.
	HealthRateLimit   RateLimitConfig
	RateLimitDisabled bool
	// RateLimitKeyFunc defaults to httprate.KeyByIP.
	RateLimitKeyFunc httprate.KeyFunc
}

// DefaultChiMiddlewareConfig allows no cross-origin callers and 100
// requests per minute per IP. The dashboard only ever issues GETs.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORS: cors.Options{
			AllowedOrigins: []string{},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         86400,
		},
		RateLimit:       RateLimitConfig{Requests: 100, Window: time.Minute},
		HealthRateLimit: RateLimitConfig{Requests: 1000, Window: time.Minute},
	}
}

// ChiMiddlewareConfigFromSecurity applies the security section of the
// application config to the defaults.
func ChiMiddlewareConfigFromSecurity(sec *config.SecurityConfig) *ChiMiddlewareConfig {
	c := DefaultChiMiddlewareConfig()
	c.CORS.AllowedOrigins = sec.CORSOrigins
	c.RateLimit = RateLimitConfig{Requests: sec.RateLimitReqs, Window: sec.RateLimitWindow}
	c.RateLimitDisabled = sec.RateLimitDisabled
	return c
}

// ChiMiddleware builds the CORS and rate-limit middleware once so every
// route group shares the same limiter state.
type ChiMiddleware struct {
	cors   func(http.Handler) http.Handler
	api    func(http.Handler) http.Handler
	health func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware set. A nil config uses defaults.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
	}
	return &ChiMiddleware{
		cors:   cors.Handler(cfg.CORS),
		api:    newLimiter(cfg, cfg.RateLimit),
		health: newLimiter(cfg, cfg.HealthRateLimit),
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the limiter for the page and data API.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.api
}

// RateLimitHealth returns the limiter for health probes.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.health
}

func newLimiter(cfg *ChiMiddlewareConfig, budget RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitDisabled || budget.Requests <= 0 || budget.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	keyFunc := cfg.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}
	return httprate.Limit(
		budget.Requests,
		budget.Window,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(rateLimited),
	)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
}

// APISecurityHeaders adds security headers to JSON responses. The page
// gets its CSP from auth.Middleware.SecurityHeaders instead.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Cache-Control", "no-store")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
