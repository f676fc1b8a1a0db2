// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package websocket provides the live selection channel of the dashboard.

A browser opens one connection per page and sends a select message each
time the artist dropdown changes. The server recomputes the panel through
the dashboard binder and replies on the same connection. The HTTP endpoint
GET /api/v1/dashboard returns the same panel for the same artist.

Key Components:

  - Hub: registry of open connections, run as a supervised service
  - Client: one connection with a read goroutine and a write goroutine
  - Message: the JSON frame exchanged in both directions

Message Types:

	client -> server
	  {"type": "select", "id": "7", "data": {"artist": "Radiohead"}}
	  {"type": "ping"}

	server -> client
	  {"type": "dashboard", "id": "7", "data": {...panel...}}
	  {"type": "pong"}
	  {"type": "error", "id": "7", "data": {"code": "VALIDATION_ERROR", "message": "..."}}

The id is optional and echoed back, so a page can drop replies to
selections it has already superseded. Selections on one connection are
handled in arrival order.

Each client has two goroutines:
  - readPump: decodes frames and runs selections
  - writePump: serializes replies and sends keepalive pings

Thread Safety:

The hub owns the client set. A client's send channel is closed exactly once,
by whichever of the hub or the client shuts it down first; enqueue checks
for that under the client's mutex.
*/
package websocket
