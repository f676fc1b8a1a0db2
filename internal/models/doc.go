// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package models defines the data structures shared across Listenlog.

Every entity is a plain value snapshot. The EventTable is loaded once and
never mutated; everything else is derived from it by the analytics package.

Key Components:

  - PlaybackEvent: one row of the listening history log
  - EventTable: ordered, read-only collection of PlaybackEvent in load order
  - Kpis: whole-history summary statistics, computed once at startup
  - ChartTables: the five aggregation outputs for a selection
  - ArtistOption: one entry of the artist dropdown
  - APIResponse: the JSON envelope shared by every endpoint

Thread Safety:

EventTable exposes no mutating methods, so it is safe for concurrent readers.
The remaining types are values produced fresh for each request.
*/
package models
