// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package api serves the dashboard page, its JSON API and the live selection
WebSocket over a chi router.

Routes:

	GET /                          dashboard page (KPI cards, artist dropdown, five slots)
	GET /api/v1/kpis               whole-history KPIs
	GET /api/v1/artists            artist dropdown options
	GET /api/v1/dataset            row count and load time
	GET /api/v1/dashboard?artist=  panel for one selection
	GET /api/v1/ws                 live selection channel
	GET /api/v1/health/live        liveness probe
	GET /api/v1/health/ready       readiness probe
	GET /metrics                   Prometheus exposition

Middleware Stack:

Global middleware runs for every route, outermost first: request ID,
RealIP, Recoverer, CORS. The page and the data routes then add rate
limiting, security headers, Prometheus metrics and (when AUTH_MODE=basic)
HTTP Basic authentication. Health routes have their own permissive limit
and are never authenticated.

Responses:

Every JSON endpoint returns models.APIResponse. A panel fetched over HTTP
and one received over the WebSocket for the same artist are identical,
since both come from the same dashboard.Binder.
*/
package api
