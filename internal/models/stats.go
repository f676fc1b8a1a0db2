// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package models

// Kpis holds the whole-history summary statistics shown on the KPI cards.
// Computed once over the unfiltered table; selections never change it.
type Kpis struct {
	TotalTracks int     `json:"total_tracks"`
	TotalHours  float64 `json:"total_hours"`
	TopArtist   string  `json:"top_artist"`
	TopTrack    string  `json:"top_track"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	DatasetRows  int     `json:"dataset_rows"`
	DatasetReady bool    `json:"dataset_ready"`
	Uptime       float64 `json:"uptime_seconds"`
}
