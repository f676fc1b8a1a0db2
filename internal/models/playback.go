// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package models

import (
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// PlaybackEvent represents a single playback row of the listening history.
type PlaybackEvent struct {
	Timestamp   time.Time `json:"ts"`
	Date        time.Time `json:"-"` // Timestamp truncated to midnight in its own location
	ArtistName  string    `json:"artist_name"`
	TrackName   string    `json:"track_name"`
	MsPlayed    int64     `json:"ms_played"`
	ReasonStart string    `json:"reason_start"`
	Platform    string    `json:"platform"`
}

// NewPlaybackEvent builds an event and derives its calendar date.
func NewPlaybackEvent(ts time.Time, artist, track string, msPlayed int64, reasonStart, platform string) PlaybackEvent {
	return PlaybackEvent{
		Timestamp:   ts,
		Date:        CalendarDate(ts),
		ArtistName:  artist,
		TrackName:   track,
		MsPlayed:    msPlayed,
		ReasonStart: reasonStart,
		Platform:    platform,
	}
}

// CalendarDate truncates t to the start of its day, keeping t's location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EventTable is the ordered, read-only set of playback events.
type EventTable struct {
	events []PlaybackEvent
}

// NewEventTable creates a table from events. The slice is copied so later
// changes by the caller cannot leak into the table.
func NewEventTable(events []PlaybackEvent) *EventTable {
	owned := make([]PlaybackEvent, len(events))
	copy(owned, events)
	return &EventTable{events: owned}
}

// Len returns the number of rows.
func (t *EventTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.events)
}

// At returns the row at index i in load order.
func (t *EventTable) At(i int) PlaybackEvent {
	return t.events[i]
}

// Each calls fn for every row in load order.
func (t *EventTable) Each(fn func(e PlaybackEvent)) {
	if t == nil {
		return
	}
	for _, e := range t.events {
		fn(e)
	}
}

// Where returns a new table holding the rows for which keep returns true.
func (t *EventTable) Where(keep func(e PlaybackEvent) bool) *EventTable {
	out := make([]PlaybackEvent, 0)
	t.Each(func(e PlaybackEvent) {
		if keep(e) {
			out = append(out, e)
		}
	})
	return &EventTable{events: out}
}
