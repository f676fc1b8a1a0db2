// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/listenlog/internal/models"
)

// Version is reported by the health endpoints. Set at build time with
// -ldflags "-X github.com/tomtom215/listenlog/internal/api.Version=...".
var Version = "dev"

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady returns 200 only when the dataset is loaded and non-empty.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rows := 0
	if h.binder != nil {
		rows = h.binder.Context().Rows()
	}
	ready := rows > 0

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: models.HealthStatus{
			Status:       status,
			Version:      Version,
			DatasetRows:  rows,
			DatasetReady: ready,
			Uptime:       time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
