// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/tomtom215/listenlog/internal/logging"
)

type contextKey string

const (
	usernameContextKey contextKey = "auth_username"
	nonceContextKey    contextKey = "csp_nonce"
)

// ChartJSOrigin hosts the charting script loaded by the dashboard page.
const ChartJSOrigin = "https://cdn.jsdelivr.net"

// Middleware applies authentication and security headers.
type Middleware struct {
	basic *BasicAuthManager
}

// NewMiddleware creates the middleware. A nil manager disables authentication.
func NewMiddleware(basic *BasicAuthManager) *Middleware {
	return &Middleware{basic: basic}
}

// Enabled reports whether requests must authenticate.
func (m *Middleware) Enabled() bool {
	return m.basic != nil
}

// Authenticate rejects requests without valid Basic credentials.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	if m.basic == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.challenge(w, "Unauthorized: authentication required")
			return
		}

		username, err := m.basic.ValidateCredentials(authHeader)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg("Basic auth validation failed")
			m.challenge(w, "Unauthorized: invalid credentials")
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) challenge(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", m.basic.WWWAuthenticate())
	http.Error(w, message, http.StatusUnauthorized)
}

// UsernameFromContext returns the authenticated user, or "".
func UsernameFromContext(ctx context.Context) string {
	if u, ok := ctx.Value(usernameContextKey).(string); ok {
		return u
	}
	return ""
}

// NonceFromContext returns the CSP nonce for inline scripts, or "".
func NonceFromContext(ctx context.Context) string {
	if n, ok := ctx.Value(nonceContextKey).(string); ok {
		return n
	}
	return ""
}

func generateNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// SecurityHeaders sets a nonce-based CSP and the usual hardening headers.
// The page's inline script must carry the nonce from NonceFromContext.
func (m *Middleware) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce, err := generateNonce()
		if err != nil {
			logging.Warn().Err(err).Msg("Failed to generate CSP nonce")
			nonce = ""
		}
		r = r.WithContext(context.WithValue(r.Context(), nonceContextKey, nonce))

		csp := "default-src 'self'; " +
			"script-src 'self' 'nonce-" + nonce + "' " + ChartJSOrigin + "; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"connect-src 'self' ws: wss:; " +
			"frame-ancestors 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"

		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
