// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package charts

// Accent is the single-series color used by the trend, bar and platform charts.
const Accent = "#28a745"

// Emrld is the sequential green palette for the reasons donut, light to dark.
var Emrld = []string{
	"#d3f2a3",
	"#97e196",
	"#6cc08b",
	"#4c9b82",
	"#217a79",
	"#105965",
	"#074050",
}

// Sequential returns n colors from palette, cycling when n exceeds its length.
// The result is always a new slice.
func Sequential(palette []string, n int) []string {
	out := make([]string, 0, n)
	if len(palette) == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		out = append(out, palette[i%len(palette)])
	}
	return out
}
