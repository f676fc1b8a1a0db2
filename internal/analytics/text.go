// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"strings"

	"github.com/tomtom215/listenlog/internal/models"
)

// DefaultTopTracks is the number of track names fed to the word image.
const DefaultTopTracks = 50

// TopTracksText joins the n most frequent track names with single spaces,
// most frequent first.
func TopTracksText(t *models.EventTable, n int) string {
	top := countBy(t, func(e models.PlaybackEvent) string { return e.TrackName }).top(n)

	names := make([]string, 0, len(top))
	for _, f := range top {
		names = append(names, f.value)
	}
	return strings.Join(names, " ")
}
