// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

// Package dashboard binds the artist selection to the aggregations. Context
// holds what is computed once at startup; Binder recomputes every chart for
// each selection.
package dashboard

import (
	"slices"
	"time"

	"github.com/tomtom215/listenlog/internal/analytics"
	"github.com/tomtom215/listenlog/internal/models"
)

// Context is the immutable startup state shared by every request.
type Context struct {
	table    *models.EventTable
	kpis     models.Kpis
	artists  []models.ArtistOption
	known    map[string]struct{}
	loadedAt time.Time
}

// NewContext computes the KPIs and artist options for table.
func NewContext(table *models.EventTable) *Context {
	c := &Context{
		table:    table,
		kpis:     analytics.ComputeKpis(table),
		artists:  make([]models.ArtistOption, 0),
		known:    make(map[string]struct{}),
		loadedAt: time.Now(),
	}
	table.Each(func(e models.PlaybackEvent) {
		if e.ArtistName == "" {
			return
		}
		if _, seen := c.known[e.ArtistName]; seen {
			return
		}
		c.known[e.ArtistName] = struct{}{}
		c.artists = append(c.artists, models.ArtistOption{Label: e.ArtistName, Value: e.ArtistName})
	})
	return c
}

// Table returns the full event table.
func (c *Context) Table() *models.EventTable { return c.table }

// Kpis returns the whole-history KPIs.
func (c *Context) Kpis() models.Kpis { return c.kpis }

// Rows returns the number of loaded events.
func (c *Context) Rows() int { return c.table.Len() }

// LoadedAt returns when the context was built.
func (c *Context) LoadedAt() time.Time { return c.loadedAt }

// ArtistOptions returns the distinct artists in first-seen order.
func (c *Context) ArtistOptions() []models.ArtistOption {
	return slices.Clone(c.artists)
}

// HasArtist reports whether artist occurs in the table.
func (c *Context) HasArtist(artist string) bool {
	_, ok := c.known[artist]
	return ok
}
