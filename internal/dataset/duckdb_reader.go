// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	// DuckDB driver - in-memory connection used only to scan the CSV file
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/listenlog/internal/models"
)

// DuckDBReader reads a dataset file through DuckDB's CSV scanner.
// Every column is read as VARCHAR and parsed in Go, so values are accepted
// or rejected exactly as the CSV engine does.
type DuckDBReader struct {
	path string
}

// NewDuckDBReader creates a reader for the CSV file at path.
func NewDuckDBReader(path string) *DuckDBReader {
	return &DuckDBReader{path: path}
}

// Engine returns the engine name.
func (r *DuckDBReader) Engine() string {
	return EngineDuckDB
}

// Read parses every row of the file.
func (r *DuckDBReader) Read(ctx context.Context) ([]models.PlaybackEvent, error) {
	// DuckDB reports a missing file as a generic IO error; stat first so the
	// caller can match os.ErrNotExist like the CSV engine.
	if _, err := os.Stat(r.path); err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close() //nolint:errcheck // in-memory connection

	source := fmt.Sprintf("read_csv('%s', header = true, all_varchar = true)", escapeLiteral(r.path))

	header, err := describeColumns(ctx, db, source)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("read header: %w", ErrEmptyDataset)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	selected := make([]string, len(RequiredColumns))
	for i, col := range RequiredColumns {
		selected[i] = quoteIdentifier(header[idx[col]])
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selected, ", "), source)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}
	defer rows.Close() //nolint:errcheck // checked via rows.Err

	events := make([]models.PlaybackEvent, 0, 1024)
	row := 0
	for rows.Next() {
		row++
		var ts, ms, artist, track, reason, platform sql.NullString
		if err := rows.Scan(&ts, &ms, &artist, &track, &reason, &platform); err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		event, err := parseRow(row, rawRow{
			ts:       ts.String,
			msPlayed: ms.String,
			artist:   artist.String,
			track:    track.String,
			reason:   reason.String,
			platform: platform.String,
		})
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}

	return events, nil
}

// describeColumns returns the column names DuckDB detects for source.
func describeColumns(ctx context.Context, db *sql.DB, source string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	defer rows.Close() //nolint:errcheck // checked via rows.Err

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}

	var names []string
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("describe dataset: %w", err)
		}
		// column_name is the first DESCRIBE column
		names = append(names, fmt.Sprint(values[0]))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	return names, nil
}

func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
