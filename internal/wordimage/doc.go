// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

/*
Package wordimage renders a word frequency image from free text.

The text is split into words, each distinct word is sized by how often it
occurs, and the words are packed greedily into rows on a fixed canvas, the
most frequent first. Words are drawn with the Go Regular font from
golang.org/x/image and colored along a viridis ramp. The result is a PNG,
and DataURL wraps it for direct use as an <img> src.

	r, err := wordimage.New(wordimage.DefaultOptions())
	if err != nil {
		return err
	}
	src, err := r.DataURL(ctx, tables.TopTracksText)

Empty text yields a blank canvas rather than an error.
*/
package wordimage
