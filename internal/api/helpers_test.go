// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/listenlog/internal/auth"
	"github.com/tomtom215/listenlog/internal/config"
	"github.com/tomtom215/listenlog/internal/dashboard"
	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/models"
	"github.com/tomtom215/listenlog/internal/wordimage"
	ws "github.com/tomtom215/listenlog/internal/websocket"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// envelope mirrors models.APIResponse with a raw data field.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testTable() *models.EventTable {
	base := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	return models.NewEventTable([]models.PlaybackEvent{
		models.NewPlaybackEvent(base, "A", "Song One", 1_000_000, "trackdone", "android"),
		models.NewPlaybackEvent(base.Add(24*time.Hour), "A", "Song Two", 2_000_000, "clickrow", "web"),
		models.NewPlaybackEvent(base.Add(25*time.Hour), "B", "Song Three", 500_000, "trackdone", "android"),
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			AuthMode:          "none",
			RateLimitDisabled: true,
			CORSOrigins:       []string{},
		},
	}
}

type testStack struct {
	handler *Handler
	hub     *ws.Hub
	router  http.Handler
}

type stackOption func(*stackOptions)

type stackOptions struct {
	auth  *auth.BasicAuthManager
	chiMw *ChiMiddlewareConfig
	table *models.EventTable
}

func withBasicAuth(m *auth.BasicAuthManager) stackOption {
	return func(o *stackOptions) { o.auth = m }
}

func withChiConfig(c *ChiMiddlewareConfig) stackOption {
	return func(o *stackOptions) { o.chiMw = c }
}

func withTable(t *models.EventTable) stackOption {
	return func(o *stackOptions) { o.table = t }
}

// newTestStack builds the full router over a real binder and a running hub.
func newTestStack(t *testing.T, opts ...stackOption) *testStack {
	t.Helper()

	o := stackOptions{table: testTable()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chiMw == nil {
		o.chiMw = DefaultChiMiddlewareConfig()
		o.chiMw.RateLimitDisabled = true
	}

	renderer, err := wordimage.New(wordimage.DefaultOptions())
	if err != nil {
		t.Fatalf("wordimage.New: %v", err)
	}
	binder := dashboard.NewBinder(dashboard.NewContext(o.table), renderer)

	hub := ws.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(stopped)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})

	handler, err := NewHandler(binder, hub, testConfig())
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	router := NewRouter(handler, auth.NewMiddleware(o.auth), NewChiMiddleware(o.chiMw))

	return &testStack{handler: handler, hub: hub, router: router.SetupChi()}
}

func (s *testStack) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope %q: %v", rec.Body.String(), err)
	}
	return env
}
