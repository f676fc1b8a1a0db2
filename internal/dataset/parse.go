// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/listenlog/internal/models"
)

// Column names of the source file.
const (
	ColTimestamp   = "ts"
	ColMsPlayed    = "ms_played"
	ColArtistName  = "artist_name"
	ColTrackName   = "track_name"
	ColReasonStart = "reason_start"
	ColPlatform    = "platform"
)

// RequiredColumns lists the columns every dataset must provide.
var RequiredColumns = []string{
	ColTimestamp,
	ColMsPlayed,
	ColArtistName,
	ColTrackName,
	ColReasonStart,
	ColPlatform,
}

// timestampLayouts are tried in order. Values without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	errEmptyValue       = errors.New("value is empty")
	errNegativeDuration = errors.New("duration must not be negative")
	errTimestampLayout  = errors.New("not a recognized date-time")
)

// ParseTimestamp parses an ISO-like date-time string.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errEmptyValue
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errTimestampLayout
}

// ParseMsPlayed parses a non-negative millisecond count.
func ParseMsPlayed(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errEmptyValue
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, errNegativeDuration
	}
	return ms, nil
}

// rawRow carries the unparsed values of the required columns.
type rawRow struct {
	ts, msPlayed, artist, track, reason, platform string
}

// parseRow converts a raw row into an event. row is 1-based.
func parseRow(row int, raw rawRow) (models.PlaybackEvent, error) {
	ts, err := ParseTimestamp(raw.ts)
	if err != nil {
		return models.PlaybackEvent{}, &RowError{Row: row, Column: ColTimestamp, Value: raw.ts, Err: err}
	}
	ms, err := ParseMsPlayed(raw.msPlayed)
	if err != nil {
		return models.PlaybackEvent{}, &RowError{Row: row, Column: ColMsPlayed, Value: raw.msPlayed, Err: err}
	}
	return models.NewPlaybackEvent(ts, raw.artist, raw.track, ms, raw.reason, raw.platform), nil
}

// columnIndex maps each required column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return idx, nil
}
