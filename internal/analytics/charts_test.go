// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/listenlog/internal/models"
)

func TestListeningTrend(t *testing.T) {
	t.Parallel()

	got := ListeningTrend(scenarioTable(t))
	want := []models.TrendPoint{
		{Date: "2024-01-01", Hours: 1_000_000.0 / msPerHour},
		{Date: "2024-01-02", Hours: 2_500_000.0 / msPerHour},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListeningTrend() = %+v, want %+v", got, want)
	}
}

func TestListeningTrend_SortsDates(t *testing.T) {
	t.Parallel()

	table := models.NewEventTable([]models.PlaybackEvent{
		event(t, "2024-05-03T00:00:00Z", "A", "T", 1, "r", "p"),
		event(t, "2023-12-31T23:59:59Z", "A", "T", 1, "r", "p"),
		event(t, "2024-05-01T08:00:00Z", "A", "T", 1, "r", "p"),
	})

	got := ListeningTrend(table)
	dates := make([]string, 0, len(got))
	for _, p := range got {
		dates = append(dates, p.Date)
	}

	want := []string{"2023-12-31", "2024-05-01", "2024-05-03"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("dates = %v, want %v", dates, want)
	}
}

func TestListeningTrend_KeepsTimestampLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 6, 1, 1, 30, 0, 0, loc) // 2024-05-31 in UTC
	table := models.NewEventTable([]models.PlaybackEvent{
		models.NewPlaybackEvent(ts, "A", "T", 60_000, "r", "p"),
	})

	got := ListeningTrend(table)
	if len(got) != 1 || got[0].Date != "2024-06-01" {
		t.Errorf("ListeningTrend() = %+v, want one point on 2024-06-01", got)
	}
}

func TestListeningTrend_SumMatchesTotal(t *testing.T) {
	t.Parallel()

	var rows []models.PlaybackEvent
	for i := 0; i < 200; i++ {
		day := fmt.Sprintf("2024-02-%02dT10:00:00Z", i%28+1)
		rows = append(rows, event(t, day, fmt.Sprintf("artist-%d", i%7), "T", int64(i*12_345), "r", "p"))
	}
	table := models.NewEventTable(rows)

	sum := 0.0
	for _, p := range ListeningTrend(table) {
		sum += p.Hours
	}

	if diff := math.Abs(sum - TotalHours(table)); diff > 0.005 {
		t.Errorf("trend sum %v differs from TotalHours %v by %v", sum, TotalHours(table), diff)
	}
}

func TestTopArtists(t *testing.T) {
	t.Parallel()

	var rows []models.PlaybackEvent
	// artist-k appears k+1 times, for k = 0..11.
	for k := 0; k < 12; k++ {
		for j := 0; j <= k; j++ {
			rows = append(rows, event(t, "2024-01-01T00:00:00Z", fmt.Sprintf("artist-%d", k), "T", 1, "r", "p"))
		}
	}

	got := TopArtists(models.NewEventTable(rows), DefaultTopArtists)

	if len(got) != 10 {
		t.Fatalf("len(TopArtists) = %d, want 10", len(got))
	}
	if got[0].Artist != "artist-2" || got[0].PlayCount != 3 {
		t.Errorf("first = %+v, want artist-2 with 3 plays", got[0])
	}
	if got[9].Artist != "artist-11" || got[9].PlayCount != 12 {
		t.Errorf("last = %+v, want artist-11 with 12 plays", got[9])
	}
	for i := 1; i < len(got); i++ {
		if got[i].PlayCount < got[i-1].PlayCount {
			t.Errorf("not ascending at %d: %d < %d", i, got[i].PlayCount, got[i-1].PlayCount)
		}
	}
}

func TestTopArtists_TieBreak(t *testing.T) {
	t.Parallel()

	var rows []models.PlaybackEvent
	// Eleven artists with one play each; the first ten seen must win.
	for k := 0; k < 11; k++ {
		rows = append(rows, event(t, "2024-01-01T00:00:00Z", fmt.Sprintf("a%02d", k), "T", 1, "r", "p"))
	}

	got := TopArtists(models.NewEventTable(rows), DefaultTopArtists)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	for i, a := range got {
		if want := fmt.Sprintf("a%02d", i); a.Artist != want {
			t.Errorf("got[%d] = %q, want %q", i, a.Artist, want)
		}
	}
}

func TestTopArtists_FilteredScenario(t *testing.T) {
	t.Parallel()

	got := TopArtists(Filter(scenarioTable(t), "B"), DefaultTopArtists)
	want := []models.ArtistPlays{{Artist: "B", PlayCount: 1}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopArtists(B) = %+v, want %+v", got, want)
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	table := models.NewEventTable([]models.PlaybackEvent{
		event(t, "2024-01-01T00:00:00Z", "A", "T", 1, "clickrow", "web"),
		event(t, "2024-01-01T00:00:00Z", "A", "T", 1, "trackdone", "android"),
		event(t, "2024-01-01T00:00:00Z", "A", "T", 1, "trackdone", "android"),
		event(t, "2024-01-01T00:00:00Z", "A", "T", 1, "fwdbtn", ""),
	})

	reasons := PlaybackReasons(table)
	wantReasons := []models.CategoryCount{
		{Category: "trackdone", Count: 2},
		{Category: "clickrow", Count: 1},
		{Category: "fwdbtn", Count: 1},
	}
	if !reflect.DeepEqual(reasons, wantReasons) {
		t.Errorf("PlaybackReasons() = %+v, want %+v", reasons, wantReasons)
	}

	platforms := PlatformUsage(table)
	wantPlatforms := []models.CategoryCount{
		{Category: "android", Count: 2},
		{Category: "web", Count: 1},
	}
	if !reflect.DeepEqual(platforms, wantPlatforms) {
		t.Errorf("PlatformUsage() = %+v, want %+v", platforms, wantPlatforms)
	}
}

func TestTopTracksText(t *testing.T) {
	t.Parallel()

	table := models.NewEventTable([]models.PlaybackEvent{
		event(t, "2024-01-01T00:00:00Z", "A", "Creep", 1, "r", "p"),
		event(t, "2024-01-01T00:00:00Z", "A", "Karma Police", 1, "r", "p"),
		event(t, "2024-01-01T00:00:00Z", "A", "Karma Police", 1, "r", "p"),
		event(t, "2024-01-01T00:00:00Z", "A", "No Surprises", 1, "r", "p"),
	})

	got := TopTracksText(table, DefaultTopTracks)
	want := "Karma Police Creep No Surprises"
	if got != want {
		t.Errorf("TopTracksText() = %q, want %q", got, want)
	}

	if got := TopTracksText(table, 1); got != "Karma Police" {
		t.Errorf("TopTracksText(n=1) = %q, want %q", got, "Karma Police")
	}
}

func TestTopTracksText_LimitsToFifty(t *testing.T) {
	t.Parallel()

	var rows []models.PlaybackEvent
	for i := 0; i < 80; i++ {
		rows = append(rows, event(t, "2024-01-01T00:00:00Z", "A", fmt.Sprintf("t%d", i), 1, "r", "p"))
	}

	got := TopTracksText(models.NewEventTable(rows), DefaultTopTracks)
	if want := "t0"; got[:2] != want {
		t.Errorf("text starts with %q, want %q", got[:2], want)
	}
	words := 0
	for _, f := range []rune(got) {
		if f == ' ' {
			words++
		}
	}
	if words+1 != 50 {
		t.Errorf("word count = %d, want 50", words+1)
	}
}
