// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package models

// TrendPoint is the listening time for one calendar date.
type TrendPoint struct {
	Date  string  `json:"date"` // DateLayout
	Hours float64 `json:"hours_played"`
}

// ArtistPlays is the play count for one artist.
type ArtistPlays struct {
	Artist    string `json:"artist_name"`
	PlayCount int    `json:"play_count"`
}

// CategoryCount is the row count for one categorical value
// (a playback start reason or a platform).
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ChartTables holds the five aggregation outputs for one selection.
// Slices are never nil so empty selections serialize as [] rather than null.
type ChartTables struct {
	Trend         []TrendPoint    `json:"trend"`
	TopArtists    []ArtistPlays   `json:"top_artists"`
	Reasons       []CategoryCount `json:"reasons"`
	Platforms     []CategoryCount `json:"platforms"`
	TopTracksText string          `json:"top_tracks_text"`
}

// IsEmpty reports whether every output is empty.
func (c *ChartTables) IsEmpty() bool {
	return len(c.Trend) == 0 &&
		len(c.TopArtists) == 0 &&
		len(c.Reasons) == 0 &&
		len(c.Platforms) == 0 &&
		c.TopTracksText == ""
}

// ArtistOption is one entry of the artist dropdown.
type ArtistOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
