// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/listenlog/internal/analytics"
	"github.com/tomtom215/listenlog/internal/charts"
	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/metrics"
	"github.com/tomtom215/listenlog/internal/models"
)

// ImageRenderer turns the top-tracks text into an image data URL.
type ImageRenderer interface {
	DataURL(ctx context.Context, text string) (string, error)
}

// Panel is everything the page shows for one selection.
type Panel struct {
	Artist    string             `json:"artist"`
	Known     bool               `json:"known_artist"`
	Tables    models.ChartTables `json:"tables"`
	Figures   charts.Figures     `json:"figures"`
	WordImage string             `json:"word_image"`
}

// Binder recomputes the dashboard for a selection. It keeps no state
// between calls.
type Binder struct {
	dash   *Context
	images ImageRenderer
}

// NewBinder creates a Binder over dash. images renders the word image.
func NewBinder(dash *Context, images ImageRenderer) *Binder {
	return &Binder{dash: dash, images: images}
}

// Context returns the startup context the binder reads from.
func (b *Binder) Context() *Context { return b.dash }

type transportKey struct{}

// WithTransport tags ctx with the transport that triggered a selection.
func WithTransport(ctx context.Context, transport string) context.Context {
	return context.WithValue(ctx, transportKey{}, transport)
}

func transportFrom(ctx context.Context) string {
	if t, ok := ctx.Value(transportKey{}).(string); ok {
		return t
	}
	return metrics.TransportHTTP
}

// Select filters by artist and recomputes every output. An empty artist
// selects the whole history; an artist with no rows yields empty outputs.
func (b *Binder) Select(ctx context.Context, artist string) (*Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	tables := analytics.Compute(b.dash.Table(), artist)

	wordImage, err := b.images.DataURL(ctx, tables.TopTracksText)
	if err != nil {
		return nil, fmt.Errorf("render word image: %w", err)
	}

	panel := &Panel{
		Artist:    artist,
		Known:     artist == "" || b.dash.HasArtist(artist),
		Tables:    tables,
		Figures:   charts.Build(&tables),
		WordImage: wordImage,
	}

	elapsed := time.Since(start)
	transport := transportFrom(ctx)
	metrics.RecordDashboardRecompute(transport, artist != "", tables.IsEmpty(), elapsed)
	logging.Ctx(ctx).Debug().
		Str("artist", artist).
		Str("transport", transport).
		Int("trend_points", len(tables.Trend)).
		Dur("elapsed", elapsed).
		Msg("Dashboard recomputed")

	return panel, nil
}
