// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

// Package charts turns aggregation tables into render-ready figure
// descriptions. The page draws them with Chart.js; this package only decides
// chart kind, labels, values and colors.
package charts

import (
	"github.com/tomtom215/listenlog/internal/models"
)

// Kind is the chart type of a Figure.
type Kind string

// Chart kinds understood by the page.
const (
	KindLine          Kind = "line"
	KindBarHorizontal Kind = "bar-horizontal"
	KindDonut         Kind = "donut"
)

// Display slots on the page.
const (
	SlotTrend      = "trend-chart"
	SlotTopArtists = "artist-chart"
	SlotReasons    = "reason-donut-chart"
	SlotPlatforms  = "platform-donut-chart"
	SlotWordImage  = "wordcloud"
)

// DonutHole is the inner radius of donut charts as a fraction of the outer radius.
const DonutHole = 0.3

// Figure describes one chart.
type Figure struct {
	Slot   string    `json:"slot"`
	Kind   Kind      `json:"kind"`
	Title  string    `json:"title"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
	Hole   float64   `json:"hole,omitempty"`
}

// Figures is the set of charts for one selection.
type Figures struct {
	Trend      Figure `json:"trend"`
	TopArtists Figure `json:"top_artists"`
	Reasons    Figure `json:"reasons"`
	Platforms  Figure `json:"platforms"`
}

// Build creates all four figures from the aggregation tables.
func Build(tables *models.ChartTables) Figures {
	return Figures{
		Trend:      TrendFigure(tables.Trend),
		TopArtists: TopArtistsFigure(tables.TopArtists),
		Reasons:    ReasonsFigure(tables.Reasons),
		Platforms:  PlatformsFigure(tables.Platforms),
	}
}

// TrendFigure is a line chart of hours played per date.
func TrendFigure(points []models.TrendPoint) Figure {
	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Date)
		values = append(values, p.Hours)
	}
	return Figure{
		Slot:   SlotTrend,
		Kind:   KindLine,
		Title:  "Listening Trend Over Time",
		XLabel: "Date",
		YLabel: "Hours Played",
		Labels: labels,
		Values: values,
		Colors: []string{Accent},
	}
}

// TopArtistsFigure is a horizontal bar chart. Input order is kept, so an
// ascending table puts the most played artist at the top.
func TopArtistsFigure(artists []models.ArtistPlays) Figure {
	labels := make([]string, 0, len(artists))
	values := make([]float64, 0, len(artists))
	for _, a := range artists {
		labels = append(labels, a.Artist)
		values = append(values, float64(a.PlayCount))
	}
	return Figure{
		Slot:   SlotTopArtists,
		Kind:   KindBarHorizontal,
		Title:  "Top 10 Artists",
		XLabel: "Play Count",
		YLabel: "Artist",
		Labels: labels,
		Values: values,
		Colors: []string{Accent},
	}
}

// ReasonsFigure is a donut of playback start reasons on the Emrld palette.
func ReasonsFigure(reasons []models.CategoryCount) Figure {
	f := donut(SlotReasons, "Playback Reasons", reasons)
	f.Colors = Sequential(Emrld, len(reasons))
	return f
}

// PlatformsFigure is a donut of platforms in the accent color.
func PlatformsFigure(platforms []models.CategoryCount) Figure {
	f := donut(SlotPlatforms, "Platform Usage", platforms)
	f.Colors = []string{Accent}
	return f
}

func donut(slot, title string, counts []models.CategoryCount) Figure {
	labels := make([]string, 0, len(counts))
	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Category)
		values = append(values, float64(c.Count))
	}
	return Figure{
		Slot:   slot,
		Kind:   KindDonut,
		Title:  title,
		Labels: labels,
		Values: values,
		Hole:   DonutHole,
	}
}
