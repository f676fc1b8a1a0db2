// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"cmp"
	"slices"

	"github.com/tomtom215/listenlog/internal/models"
)

// DefaultTopArtists is the number of bars in the top artists chart.
const DefaultTopArtists = 10

// TopArtists returns the n most played artists ordered by ascending play
// count, so a horizontal bar chart draws the largest bar on top.
func TopArtists(t *models.EventTable, n int) []models.ArtistPlays {
	top := countBy(t, func(e models.PlaybackEvent) string { return e.ArtistName }).top(n)

	out := make([]models.ArtistPlays, 0, len(top))
	for _, f := range top {
		out = append(out, models.ArtistPlays{Artist: f.value, PlayCount: f.count})
	}
	slices.SortStableFunc(out, func(a, b models.ArtistPlays) int {
		return cmp.Compare(a.PlayCount, b.PlayCount)
	})
	return out
}
