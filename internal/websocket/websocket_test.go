// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package websocket

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/listenlog/internal/dashboard"
	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/validation"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// fakeSelector echoes the artist back, or fails when err is set.
type fakeSelector struct {
	mu      sync.Mutex
	artists []string
	err     error
}

func (f *fakeSelector) Select(ctx context.Context, artist string) (*dashboard.Panel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artists = append(f.artists, artist)
	if f.err != nil {
		return nil, f.err
	}
	return &dashboard.Panel{Artist: artist, Known: true}, nil
}

func (f *fakeSelector) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.artists...)
}

type reply struct {
	Type string          `json:"type"`
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// startHub runs a hub behind a test server and returns a dial function.
func startHub(t *testing.T, sel Selector) (*Hub, func() *websocket.Conn, context.CancelFunc) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(stopped)
	}()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := hub.Attach(NewClient(r.Context(), hub, conn, sel)); err != nil {
			_ = conn.Close()
		}
	}))

	t.Cleanup(func() {
		cancel()
		<-stopped
		srv.Close()
	})

	dial := func() *websocket.Conn {
		t.Helper()
		url := "ws" + strings.TrimPrefix(srv.URL, "http")
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		t.Cleanup(func() { _ = conn.Close() })
		return conn
	}
	return hub, dial, cancel
}

func roundTrip(t *testing.T, conn *websocket.Conn, frame string) reply {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatalf("write: %v", err)
	}
	return readReply(t, conn)
}

func readReply(t *testing.T, conn *websocket.Conn) reply {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var r reply
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal reply %s: %v", data, err)
	}
	return r
}

func errorData(t *testing.T, r reply) ErrorData {
	t.Helper()
	if r.Type != MessageTypeError {
		t.Fatalf("reply type = %q, want error", r.Type)
	}
	var e ErrorData
	if err := json.Unmarshal(r.Data, &e); err != nil {
		t.Fatalf("unmarshal error data: %v", err)
	}
	return e
}

func TestClient_Select(t *testing.T) {
	sel := &fakeSelector{}
	_, dial, _ := startHub(t, sel)
	conn := dial()

	r := roundTrip(t, conn, `{"type":"select","id":"7","data":{"artist":"Radiohead"}}`)

	if r.Type != MessageTypeDashboard {
		t.Fatalf("type = %q, want dashboard", r.Type)
	}
	if r.ID != "7" {
		t.Errorf("id = %q, want 7", r.ID)
	}
	var panel dashboard.Panel
	if err := json.Unmarshal(r.Data, &panel); err != nil {
		t.Fatalf("unmarshal panel: %v", err)
	}
	if panel.Artist != "Radiohead" {
		t.Errorf("panel artist = %q", panel.Artist)
	}
}

func TestClient_SelectAllArtists(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{"empty artist", `{"type":"select","data":{"artist":""}}`},
		{"no data", `{"type":"select"}`},
		{"null data", `{"type":"select","data":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &fakeSelector{}
			_, dial, _ := startHub(t, sel)

			r := roundTrip(t, dial(), tt.frame)
			if r.Type != MessageTypeDashboard {
				t.Fatalf("type = %q, want dashboard", r.Type)
			}
			if calls := sel.calls(); len(calls) != 1 || calls[0] != "" {
				t.Errorf("selector calls = %q, want one empty selection", calls)
			}
		})
	}
}

func TestClient_SelectionsInOrder(t *testing.T) {
	sel := &fakeSelector{}
	_, dial, _ := startHub(t, sel)
	conn := dial()

	artists := []string{"A", "B", "", "C"}
	for _, a := range artists {
		frame := `{"type":"select","data":{"artist":"` + a + `"}}`
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	for _, want := range artists {
		var panel dashboard.Panel
		r := readReply(t, conn)
		if err := json.Unmarshal(r.Data, &panel); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if panel.Artist != want {
			t.Errorf("panel artist = %q, want %q", panel.Artist, want)
		}
	}
}

func TestClient_Ping(t *testing.T) {
	_, dial, _ := startHub(t, &fakeSelector{})

	r := roundTrip(t, dial(), `{"type":"ping","id":"p1"}`)
	if r.Type != MessageTypePong || r.ID != "p1" {
		t.Errorf("reply = %+v, want pong p1", r)
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		frame    string
		wantCode string
	}{
		{"malformed json", `{"type":`, ErrorCodeInvalidMessage},
		{"unknown type", `{"type":"subscribe"}`, ErrorCodeUnknownType},
		{"bad select data", `{"type":"select","data":"Radiohead"}`, ErrorCodeInvalidMessage},
		{"control characters", `{"type":"select","data":{"artist":"bad\u0007name"}}`, validation.ErrorCode},
		{"too long", `{"type":"select","data":{"artist":"` + strings.Repeat("x", dashboard.MaxArtistLength+1) + `"}}`, validation.ErrorCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &fakeSelector{}
			_, dial, _ := startHub(t, sel)

			e := errorData(t, roundTrip(t, dial(), tt.frame))
			if e.Code != tt.wantCode {
				t.Errorf("code = %q, want %q (message %q)", e.Code, tt.wantCode, e.Message)
			}
			if len(sel.calls()) != 0 {
				t.Error("selector should not run for a rejected message")
			}
		})
	}
}

func TestClient_SelectorFailure(t *testing.T) {
	_, dial, _ := startHub(t, &fakeSelector{err: errors.New("boom")})

	e := errorData(t, roundTrip(t, dial(), `{"type":"select","id":"9","data":{"artist":"A"}}`))
	if e.Code != ErrorCodeInternal {
		t.Errorf("code = %q, want %q", e.Code, ErrorCodeInternal)
	}
	if strings.Contains(e.Message, "boom") {
		t.Error("internal error details leaked to client")
	}
}

func TestClient_ConnectionSurvivesErrors(t *testing.T) {
	_, dial, _ := startHub(t, &fakeSelector{})
	conn := dial()

	errorData(t, roundTrip(t, conn, `not json`))
	if r := roundTrip(t, conn, `{"type":"select","data":{"artist":"A"}}`); r.Type != MessageTypeDashboard {
		t.Errorf("type after error = %q, want dashboard", r.Type)
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for hub.GetClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_TracksClients(t *testing.T) {
	hub, dial, _ := startHub(t, &fakeSelector{})

	a := dial()
	dial()
	waitForClients(t, hub, 2)

	_ = a.Close()
	waitForClients(t, hub, 1)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub, dial, cancel := startHub(t, &fakeSelector{})
	conn := dial()
	waitForClients(t, hub, 1)

	cancel()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("read after shutdown = %v, want normal close", err)
	}
	if got := hub.GetClientCount(); got != 0 {
		t.Errorf("client count after shutdown = %d, want 0", got)
	}
}

func TestHub_AttachAfterStop(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := hub.RunWithContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("RunWithContext = %v, want context.Canceled", err)
	}

	client := NewClient(context.Background(), hub, nil, &fakeSelector{})
	if err := hub.Attach(client); !errors.Is(err, ErrHubStopped) {
		t.Errorf("Attach = %v, want ErrHubStopped", err)
	}
}

func TestGetShutdownReason(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancel2 := context.WithTimeout(context.Background(), -time.Second)
	defer cancel2()

	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %q", got)
	}
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %q", got)
	}
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	client := NewClient(context.Background(), NewHub(), nil, &fakeSelector{})
	client.close()
	client.close()

	if client.enqueue(Message{Type: MessageTypePong}) {
		t.Error("enqueue on a closed client should report false")
	}
}
