// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package analytics contains the pure aggregation functions behind the
dashboard: the whole-history KPIs, the artist filter, the four chart tables
and the top-tracks text.

Every function takes a read-only *models.EventTable and returns a fresh
value. Nothing is cached and nothing is shared between calls, so the same
table can be aggregated from any number of goroutines.

# Ordering

Frequency rankings break ties by first appearance in load order. Empty
text values are skipped by every frequency count but still contribute to
row counts and listening time.

# Usage

	kpis := analytics.ComputeKpis(table)
	tables := analytics.Compute(table, "Radiohead")
*/
package analytics
