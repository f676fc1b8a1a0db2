// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package middleware provides the infrastructure HTTP middleware used by the
API router.

  - RequestID: assigns X-Request-ID and stores it for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled
    by chi route pattern so query strings never create new series
  - Compression: gzip for clients that accept it; WebSocket upgrades pass
    through untouched

All three are standard func(http.Handler) http.Handler middleware:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Response writer wrappers implement http.Hijacker so the WebSocket upgrade
works behind them.
*/
package middleware
