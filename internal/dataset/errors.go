// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when the file has a header but no data rows.
	ErrEmptyDataset = errors.New("dataset has no rows")

	// ErrMissingColumns is returned when required columns are absent from the header.
	ErrMissingColumns = errors.New("dataset is missing required columns")

	// ErrUnknownEngine is returned for an unsupported engine name.
	ErrUnknownEngine = errors.New("unknown dataset engine")
)

// RowError describes a value that could not be parsed.
// Row is the 1-based data row, not counting the header.
type RowError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %s: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
