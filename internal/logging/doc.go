// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package logging provides the process-wide zerolog logger for Listenlog.

Every package logs through this package rather than the standard log
package. Output is JSON by default and a human-readable console format when
LOG_FORMAT=console.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Int("rows", n).Str("engine", "csv").Msg("Dataset loaded")
	logging.Ctx(ctx).Debug().Str("artist", artist).Msg("Recomputing dashboard")

# Request Scoping

The HTTP layer stores a request ID in the context of every request and the
WebSocket layer stores a session ID for each connection. Ctx attaches both
to the returned logger so a recompute can be traced back to the selection
that caused it.

# slog Bridge

NewSlogLogger returns a *slog.Logger that writes through zerolog. The
supervisor tree uses it for sutureslog so restart events land in the same
stream as everything else.

Always terminate event chains with Msg or Send; an unterminated chain is
never written.
*/
package logging
