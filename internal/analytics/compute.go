// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"github.com/tomtom215/listenlog/internal/models"
)

// Compute filters t by artist and runs every chart aggregation over the
// result. It has no side effects; equal inputs give equal outputs.
func Compute(t *models.EventTable, artist string) models.ChartTables {
	subset := Filter(t, artist)
	return models.ChartTables{
		Trend:         ListeningTrend(subset),
		TopArtists:    TopArtists(subset, DefaultTopArtists),
		Reasons:       PlaybackReasons(subset),
		Platforms:     PlatformUsage(subset),
		TopTracksText: TopTracksText(subset, DefaultTopTracks),
	}
}
