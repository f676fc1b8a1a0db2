// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"testing"
	"time"

	"github.com/tomtom215/listenlog/internal/models"
)

// event builds a row from an RFC3339 timestamp.
func event(t *testing.T, ts, artist, track string, ms int64, reason, platform string) models.PlaybackEvent {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("time.Parse(%q) error = %v", ts, err)
	}
	return models.NewPlaybackEvent(parsed, artist, track, ms, reason, platform)
}

// scenarioTable is three rows: artist A twice on distinct dates, artist B once.
func scenarioTable(t *testing.T) *models.EventTable {
	t.Helper()
	return models.NewEventTable([]models.PlaybackEvent{
		event(t, "2024-01-01T10:00:00Z", "A", "Song One", 1_000_000, "trackdone", "android"),
		event(t, "2024-01-02T11:00:00Z", "A", "Song Two", 2_000_000, "clickrow", "web"),
		event(t, "2024-01-02T12:00:00Z", "B", "Song Three", 500_000, "trackdone", "android"),
	})
}
