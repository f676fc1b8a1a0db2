// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

// Package dataset loads the listening history file into a read-only
// models.EventTable.
//
// The file is a CSV with a header row. Required columns are ts, ms_played,
// artist_name, track_name, reason_start and platform, in any order. Other
// columns are ignored.
//
// Two engines are available:
//
//   - csv: streams the file with encoding/csv (default)
//   - duckdb: reads the file through an in-memory DuckDB connection
//
// Both engines hand every raw value to the same parsers, so they accept and
// reject exactly the same files. Loading is all-or-nothing: one bad value
// fails the whole load, and so does a file with no data rows.
//
// Usage:
//
//	table, err := dataset.Load(ctx, dataset.Options{Path: "spotify_history.csv"})
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load dataset")
//	}
package dataset
