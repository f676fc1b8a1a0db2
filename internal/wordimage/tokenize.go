// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package wordimage

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// weightedWord is a distinct word and its occurrence count.
type weightedWord struct {
	text  string
	count int
}

// tokenize splits text into words of letters, digits and apostrophes.
// Words shorter than two runes are dropped.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		words = append(words, f)
	}
	return words
}

// weigh counts words and orders them by descending count, first seen on
// ties, keeping at most limit entries.
func weigh(words []string, limit int) []weightedWord {
	index := make(map[string]int, len(words))
	var out []weightedWord
	for _, w := range words {
		if i, ok := index[w]; ok {
			out[i].count++
			continue
		}
		index[w] = len(out)
		out = append(out, weightedWord{text: w, count: 1})
	}

	slices.SortStableFunc(out, func(a, b weightedWord) int {
		return cmp.Compare(b.count, a.count)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
