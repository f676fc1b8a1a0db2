// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package websocket

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/listenlog/internal/dashboard"
	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/metrics"
	"github.com/tomtom215/listenlog/internal/validation"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	sendBufferSize = 16
)

// Message types.
const (
	MessageTypeSelect    = "select"
	MessageTypeDashboard = "dashboard"
	MessageTypePing      = "ping"
	MessageTypePong      = "pong"
	MessageTypeError     = "error"
)

// Error codes carried in error messages.
const (
	ErrorCodeInvalidMessage = "INVALID_MESSAGE"
	ErrorCodeUnknownType    = "UNKNOWN_MESSAGE_TYPE"
	ErrorCodeInternal       = "INTERNAL_ERROR"
)

// Message is one outbound frame.
type Message struct {
	Type string      `json:"type"`
	ID   string      `json:"id,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorData is the payload of an error message.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// inbound is one frame from the browser. Data is decoded per type.
type inbound struct {
	Type string          `json:"type"`
	ID   string          `json:"id,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Selector recomputes the dashboard for an artist.
type Selector interface {
	Select(ctx context.Context, artist string) (*dashboard.Panel, error)
}

// clientIDCounter gives clients a stable order for shutdown.
var clientIDCounter atomic.Uint64

// Client is a middleman between the websocket connection and the binder.
type Client struct {
	id       uint64
	hub      *Hub
	conn     *websocket.Conn
	selector Selector
	send     chan Message

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewClient creates a client for conn. ctx supplies logging values such as
// the request ID; its cancellation is ignored since the connection outlives
// the upgrade request.
func NewClient(ctx context.Context, hub *Hub, conn *websocket.Conn, selector Selector) *Client {
	ctx = logging.ContextWithSessionID(context.WithoutCancel(ctx), logging.GenerateSessionID())
	ctx = dashboard.WithTransport(ctx, metrics.TransportWebSocket)
	ctx, cancel := context.WithCancel(ctx)
	return &Client{
		id:       clientIDCounter.Add(1),
		hub:      hub,
		conn:     conn,
		selector: selector,
		send:     make(chan Message, sendBufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// enqueue queues msg without blocking. It reports false when the client is
// closed or too far behind.
func (c *Client) enqueue(msg Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		logging.Ctx(c.ctx).Warn().Str("message_type", msg.Type).Msg("websocket send buffer full, dropping message")
		return false
	}
}

// close stops the client. Safe to call more than once.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	close(c.send)
}

// readPump decodes frames until the connection fails.
func (c *Client) readPump() {
	defer func() {
		c.cancel()
		c.hub.detach(c)
		_ = c.conn.Close() // best-effort cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Ctx(c.ctx).Error().Err(err).Msg("unexpected websocket close error")
			}
			return
		}
		c.handle(data)
	}
}

// handle answers one inbound frame.
func (c *Client) handle(data []byte) {
	var msg inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		metrics.RecordWSMessage("invalid")
		c.sendError("", ErrorCodeInvalidMessage, "message is not valid JSON")
		return
	}

	switch msg.Type {
	case MessageTypePing:
		metrics.RecordWSMessage(MessageTypePing)
		c.enqueue(Message{Type: MessageTypePong, ID: msg.ID})
	case MessageTypeSelect:
		metrics.RecordWSMessage(MessageTypeSelect)
		c.handleSelect(&msg)
	default:
		metrics.RecordWSMessage("unknown")
		c.sendError(msg.ID, ErrorCodeUnknownType, "unknown message type")
	}
}

func (c *Client) handleSelect(msg *inbound) {
	var sel dashboard.Selection
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &sel); err != nil {
			c.sendError(msg.ID, ErrorCodeInvalidMessage, "select data must be {\"artist\": string}")
			return
		}
	}
	if verr := sel.Validate(); verr != nil {
		c.sendError(msg.ID, validation.ErrorCode, verr.Error())
		return
	}

	panel, err := c.selector.Select(c.ctx, sel.Artist)
	if err != nil {
		if c.ctx.Err() != nil {
			return
		}
		logging.Ctx(c.ctx).Error().Err(err).Str("artist", sel.Artist).Msg("dashboard recompute failed")
		c.sendError(msg.ID, ErrorCodeInternal, "failed to recompute dashboard")
		return
	}
	c.enqueue(Message{Type: MessageTypeDashboard, ID: msg.ID, Data: panel})
}

func (c *Client) sendError(id, code, message string) {
	c.enqueue(Message{Type: MessageTypeError, ID: id, Data: ErrorData{Code: code, Message: message}})
}

// writePump sends queued messages and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // best-effort cleanup
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set write deadline")
				return
			}

			if !ok {
				// closed by the hub or by readPump
				_ = c.conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck // peer may be gone
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			payload, err := json.Marshal(message)
			if err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Str("message_type", message.Type).Msg("failed to marshal websocket message")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logging.Ctx(c.ctx).Debug().Err(err).Msg("failed to write websocket message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
