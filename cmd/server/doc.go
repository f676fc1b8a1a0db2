// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

// Package main is the entry point for the Listenlog server.
//
// Listenlog loads a Spotify-style listening history export once at startup
// and serves a single-page dashboard over it: headline KPIs, an artist
// filter, and five charts recomputed for every selection.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config.yaml and environment (Koanf v2)
//  2. Logging: global zerolog logger
//  3. Dataset: the history file is read and validated; any failure is fatal
//  4. Dashboard: KPIs and the artist list are computed once
//  5. Word image renderer and selection binder
//  6. WebSocket hub for push-style selection updates
//  7. Authentication: none or HTTP Basic
//  8. HTTP server behind the chi router
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Commonly used variables:
//   - DATASET_PATH: listening history file (default: spotify_history.csv)
//   - DATASET_ENGINE: csv or duckdb (default: csv)
//   - HTTP_PORT: listen port (default: 8050)
//   - AUTH_MODE: none or basic; basic needs ADMIN_USERNAME and ADMIN_PASSWORD
//   - LOG_LEVEL, LOG_FORMAT
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Closes WebSocket clients with a normal closure frame
//   - Waits for in-flight requests up to HTTP_SHUTDOWN_TIMEOUT
package main
