// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package api

import (
	"fmt"
	"html/template"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/listenlog/internal/config"
	"github.com/tomtom215/listenlog/internal/dashboard"
	ws "github.com/tomtom215/listenlog/internal/websocket"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response envelope helpers
//   - handlers_dashboard.go: KPI, artist, dataset and dashboard endpoints
//   - handlers_health.go: liveness and readiness probes
//   - handlers_page.go: the dashboard page
//   - handlers_websocket.go: the live selection channel
type Handler struct {
	binder    *dashboard.Binder
	wsHub     *ws.Hub
	config    *config.Config
	page      *template.Template
	upgrader  websocket.Upgrader
	startTime time.Time
}

// NewHandler creates the API handler. wsHub may be nil, in which case the
// WebSocket endpoint answers 503 and the page falls back to HTTP.
func NewHandler(binder *dashboard.Binder, wsHub *ws.Hub, cfg *config.Config) (*Handler, error) {
	page, err := parsePageTemplate()
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	h := &Handler{
		binder:    binder,
		wsHub:     wsHub,
		config:    cfg,
		page:      page,
		startTime: time.Now(),
	}
	h.upgrader = h.getUpgrader()
	return h, nil
}
