// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package metrics provides Prometheus metrics for Listenlog.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8050/metrics

# Available Metrics

Dataset Metrics:
  - listenlog_dataset_rows: rows in the loaded dataset (gauge)
  - listenlog_dataset_load_duration_seconds: startup load time (histogram)
    Labels: engine
  - listenlog_dataset_load_errors_total: failed loads (counter)
    Labels: engine

Dashboard Metrics:
  - listenlog_dashboard_recomputes_total: selection-driven recomputations (counter)
    Labels: transport (http, websocket), filtered (true, false)
  - listenlog_dashboard_recompute_duration_seconds: recomputation time (histogram)
    Labels: transport
  - listenlog_dashboard_empty_selections_total: selections matching no rows (counter)
  - listenlog_word_image_render_duration_seconds: word image render time (histogram)
  - listenlog_word_image_render_errors_total: failed word image renders (counter)

API Metrics:
  - api_requests_total: requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)

WebSocket Metrics:
  - websocket_connections_active: open connections (gauge)
  - websocket_messages_received_total: inbound messages (counter)
    Labels: type

# Usage

	start := time.Now()
	panel, err := binder.Select(ctx, artist)
	metrics.RecordDashboardRecompute(metrics.TransportHTTP, artist != "", panel.Tables.IsEmpty(), time.Since(start))
*/
package metrics
