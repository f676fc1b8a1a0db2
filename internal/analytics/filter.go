// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"github.com/tomtom215/listenlog/internal/models"
)

// Filter returns the rows whose artist equals artist exactly. An empty
// artist means no selection and returns t itself.
func Filter(t *models.EventTable, artist string) *models.EventTable {
	if artist == "" {
		return t
	}
	return t.Where(func(e models.PlaybackEvent) bool {
		return e.ArtistName == artist
	})
}
