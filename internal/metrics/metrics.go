// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dashboard recompute transports.
const (
	TransportHTTP      = "http"
	TransportWebSocket = "websocket"
)

var (
	// Dataset Metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "listenlog_dataset_rows",
			Help: "Number of playback events in the loaded dataset",
		},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listenlog_dataset_load_duration_seconds",
			Help:    "Duration of the startup dataset load in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"engine"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listenlog_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"engine"},
	)

	// Dashboard Metrics
	DashboardRecomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listenlog_dashboard_recomputes_total",
			Help: "Total number of dashboard recomputations triggered by a selection",
		},
		[]string{"transport", "filtered"},
	)

	DashboardRecomputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listenlog_dashboard_recompute_duration_seconds",
			Help:    "Duration of a full dashboard recomputation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"transport"},
	)

	DashboardEmptySelections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listenlog_dashboard_empty_selections_total",
			Help: "Total number of selections that matched zero rows",
		},
	)

	WordImageRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "listenlog_word_image_render_duration_seconds",
			Help:    "Duration of word frequency image rendering in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	WordImageRenderErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listenlog_word_image_render_errors_total",
			Help: "Total number of failed word frequency image renders",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_active",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received by type",
		},
		[]string{"type"},
	)
)

// RecordDatasetLoad records a successful dataset load.
func RecordDatasetLoad(engine string, rows int, duration time.Duration) {
	DatasetRows.Set(float64(rows))
	DatasetLoadDuration.WithLabelValues(engine).Observe(duration.Seconds())
}

// RecordDatasetLoadError records a failed dataset load.
func RecordDatasetLoadError(engine string) {
	DatasetLoadErrors.WithLabelValues(engine).Inc()
}

// RecordDashboardRecompute records one selection-driven recomputation.
func RecordDashboardRecompute(transport string, filtered, empty bool, duration time.Duration) {
	DashboardRecomputes.WithLabelValues(transport, boolLabel(filtered)).Inc()
	DashboardRecomputeDuration.WithLabelValues(transport).Observe(duration.Seconds())
	if empty {
		DashboardEmptySelections.Inc()
	}
}

// RecordWordImageRender records a word image render attempt.
func RecordWordImageRender(duration time.Duration, err error) {
	WordImageRenderDuration.Observe(duration.Seconds())
	if err != nil {
		WordImageRenderErrors.Inc()
	}
}

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// TrackWSConnection increments or decrements the active WebSocket gauge.
func TrackWSConnection(inc bool) {
	if inc {
		WSConnections.Inc()
	} else {
		WSConnections.Dec()
	}
}

// RecordWSMessage counts an inbound WebSocket message by type.
func RecordWSMessage(msgType string) {
	WSMessagesReceived.WithLabelValues(msgType).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
