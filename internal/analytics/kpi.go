// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"math"

	"github.com/tomtom215/listenlog/internal/models"
)

const msPerHour = 1000 * 60 * 60

// ComputeKpis summarizes the whole table. It is meant to run once over the
// unfiltered history.
func ComputeKpis(t *models.EventTable) models.Kpis {
	artists := newCounter()
	tracks := newCounter()
	var totalMs int64

	t.Each(func(e models.PlaybackEvent) {
		totalMs += e.MsPlayed
		artists.add(e.ArtistName)
		tracks.add(e.TrackName)
	})

	return models.Kpis{
		TotalTracks: t.Len(),
		TotalHours:  roundHours(totalMs),
		TopArtist:   artists.mode(),
		TopTrack:    tracks.mode(),
	}
}

// TotalHours returns the summed play time of t in hours, rounded to 2 dp.
func TotalHours(t *models.EventTable) float64 {
	var totalMs int64
	t.Each(func(e models.PlaybackEvent) {
		totalMs += e.MsPlayed
	})
	return roundHours(totalMs)
}

func msToHours(ms int64) float64 {
	return float64(ms) / msPerHour
}

// roundHours rounds half to even at two decimals.
func roundHours(ms int64) float64 {
	return math.RoundToEven(msToHours(ms)*100) / 100
}
