// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/listenlog/internal/models"
)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 10000

// CSVReader streams a dataset file with encoding/csv.
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader for the CSV file at path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Engine returns the engine name.
func (r *CSVReader) Engine() string {
	return EngineCSV
}

// Read parses every row of the file.
func (r *CSVReader) Read(ctx context.Context) ([]models.PlaybackEvent, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return readCSV(ctx, f)
}

// readCSV parses a dataset from src.
func readCSV(ctx context.Context, src io.Reader) ([]models.PlaybackEvent, error) {
	cr := csv.NewReader(src)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", ErrEmptyDataset)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	events := make([]models.PlaybackEvent, 0, 1024)
	for row := 1; ; row++ {
		if row%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		event, err := parseRow(row, rawRow{
			ts:       record[idx[ColTimestamp]],
			msPlayed: record[idx[ColMsPlayed]],
			artist:   record[idx[ColArtistName]],
			track:    record[idx[ColTrackName]],
			reason:   record[idx[ColReasonStart]],
			platform: record[idx[ColPlatform]],
		})
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
