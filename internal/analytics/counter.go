// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package analytics

import (
	"cmp"
	"slices"

	"github.com/tomtom215/listenlog/internal/models"
)

// frequency is one distinct value and how often it occurred.
type frequency struct {
	value string
	count int
}

// counter counts string occurrences and remembers first-seen order.
type counter struct {
	index map[string]int
	items []frequency
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

// countBy counts key(e) over every row of t.
func countBy(t *models.EventTable, key func(e models.PlaybackEvent) string) *counter {
	c := newCounter()
	t.Each(func(e models.PlaybackEvent) {
		c.add(key(e))
	})
	return c
}

// add counts v. Empty values are ignored.
func (c *counter) add(v string) {
	if v == "" {
		return
	}
	if i, ok := c.index[v]; ok {
		c.items[i].count++
		return
	}
	c.index[v] = len(c.items)
	c.items = append(c.items, frequency{value: v, count: 1})
}

// ranked returns the values by descending count. Equal counts stay in
// first-seen order.
func (c *counter) ranked() []frequency {
	out := slices.Clone(c.items)
	slices.SortStableFunc(out, func(a, b frequency) int {
		return cmp.Compare(b.count, a.count)
	})
	return out
}

// top returns at most n entries of ranked.
func (c *counter) top(n int) []frequency {
	r := c.ranked()
	if n >= 0 && len(r) > n {
		r = r[:n]
	}
	return r
}

// mode returns the most frequent value, the first seen on ties, or "" when
// nothing was counted.
func (c *counter) mode() string {
	best := -1
	for i, f := range c.items {
		if best < 0 || f.count > c.items[best].count {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return c.items[best].value
}
