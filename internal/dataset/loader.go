// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/metrics"
	"github.com/tomtom215/listenlog/internal/models"
)

// Engine names.
const (
	EngineCSV    = "csv"
	EngineDuckDB = "duckdb"
)

// Reader produces the raw events of a dataset in file order.
type Reader interface {
	Read(ctx context.Context) ([]models.PlaybackEvent, error)
	Engine() string
}

// Options selects the dataset file and the engine used to read it.
type Options struct {
	Path   string
	Engine string // csv (default) or duckdb
}

// NewReader returns the reader for opts.Engine.
func NewReader(opts Options) (Reader, error) {
	switch opts.Engine {
	case "", EngineCSV:
		return NewCSVReader(opts.Path), nil
	case EngineDuckDB:
		return NewDuckDBReader(opts.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, opts.Engine)
	}
}

// Load reads the dataset described by opts into an EventTable.
// Any failure is returned as-is for the caller to treat as fatal.
func Load(ctx context.Context, opts Options) (*models.EventTable, error) {
	reader, err := NewReader(opts)
	if err != nil {
		return nil, err
	}
	return LoadFrom(ctx, reader)
}

// LoadFrom reads a dataset with reader into an EventTable.
func LoadFrom(ctx context.Context, reader Reader) (*models.EventTable, error) {
	start := time.Now()
	engine := reader.Engine()

	events, err := reader.Read(ctx)
	if err != nil {
		metrics.RecordDatasetLoadError(engine)
		return nil, fmt.Errorf("load dataset (%s): %w", engine, err)
	}
	if len(events) == 0 {
		metrics.RecordDatasetLoadError(engine)
		return nil, fmt.Errorf("load dataset (%s): %w", engine, ErrEmptyDataset)
	}

	table := models.NewEventTable(events)
	duration := time.Since(start)
	metrics.RecordDatasetLoad(engine, table.Len(), duration)

	logging.Info().
		Str("engine", engine).
		Int("rows", table.Len()).
		Dur("duration", duration).
		Msg("Dataset loaded")

	return table, nil
}
