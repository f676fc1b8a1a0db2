// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope of every JSON endpoint.
//
// Example success:
//
//	{
//	  "status": "success",
//	  "data": {"artist": "", "tables": {...}, "figures": {...}, "word_image": "data:image/png;base64,..."},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 4, "request_id": "..."}
//	}
//
// Example error:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"},
//	  "error": {"code": "VALIDATION_ERROR", "message": "artist must be at most 512 characters"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and tracing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error.
//
// Codes in use:
//   - VALIDATION_ERROR: bad query parameter
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - NOT_FOUND: unknown route
//   - INTERNAL_ERROR: recompute or encode failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DatasetInfo describes the loaded dataset.
type DatasetInfo struct {
	Rows     int       `json:"rows"`
	Artists  int       `json:"artists"`
	LoadedAt time.Time `json:"loaded_at"`
}
