// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package services provides suture.Service wrappers for Listenlog components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and names itself through fmt.Stringer for supervisor logs.

  - HTTPServerService: *http.Server; ListenAndServe until the context is
    canceled, then Shutdown with a timeout
  - WebSocketHubService: the live selection hub; delegates to
    RunWithContext, which closes every client on shutdown

Serve returns ctx.Err() on a normal shutdown and a wrapped error when the
component fails, which tells the supervisor to restart it.
*/
package services
