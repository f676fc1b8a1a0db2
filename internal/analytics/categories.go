// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"github.com/tomtom215/listenlog/internal/models"
)

// PlaybackReasons counts rows per reason_start value.
func PlaybackReasons(t *models.EventTable) []models.CategoryCount {
	return categoryCounts(countBy(t, func(e models.PlaybackEvent) string { return e.ReasonStart }))
}

// PlatformUsage counts rows per platform value.
func PlatformUsage(t *models.EventTable) []models.CategoryCount {
	return categoryCounts(countBy(t, func(e models.PlaybackEvent) string { return e.Platform }))
}

func categoryCounts(c *counter) []models.CategoryCount {
	ranked := c.ranked()
	out := make([]models.CategoryCount, 0, len(ranked))
	for _, f := range ranked {
		out = append(out, models.CategoryCount{Category: f.value, Count: f.count})
	}
	return out
}
