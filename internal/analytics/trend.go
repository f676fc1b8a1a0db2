// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"slices"

	"github.com/tomtom215/listenlog/internal/models"
)

// ListeningTrend returns hours played per calendar date, oldest first.
// Hours are not rounded.
func ListeningTrend(t *models.EventTable) []models.TrendPoint {
	msByDate := make(map[string]int64)
	t.Each(func(e models.PlaybackEvent) {
		msByDate[e.Date.Format(models.DateLayout)] += e.MsPlayed
	})

	dates := make([]string, 0, len(msByDate))
	for d := range msByDate {
		dates = append(dates, d)
	}
	// DateLayout sorts lexically in date order.
	slices.Sort(dates)

	points := make([]models.TrendPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, models.TrendPoint{
			Date:  d,
			Hours: msToHours(msByDate[d]),
		})
	}
	return points
}
