// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/listenlog/internal/models"
)

const validCSV = `ts,ms_played,artist_name,track_name,reason_start,platform
2024-01-01 08:00:00,1000000,A,Song One,trackdone,android
2024-01-02 09:30:00,2000000,A,Song Two,clickrow,ios
2024-01-02 10:00:00,500000,B,Song Three,fwdbtn,web
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()

	table, err := Load(context.Background(), Options{Path: writeDataset(t, validCSV)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}

	first := table.At(0)
	if first.ArtistName != "A" || first.TrackName != "Song One" || first.MsPlayed != 1000000 {
		t.Errorf("first event = %+v", first)
	}
	if first.ReasonStart != "trackdone" || first.Platform != "android" {
		t.Errorf("first event categories = %q, %q", first.ReasonStart, first.Platform)
	}
	wantTS := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	if !first.Timestamp.Equal(wantTS) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, wantTS)
	}
	if got := first.Date.Format(models.DateLayout); got != "2024-01-01" {
		t.Errorf("Date = %s, want 2024-01-01", got)
	}
	if table.At(2).ArtistName != "B" {
		t.Errorf("rows not in file order: last artist = %q", table.At(2).ArtistName)
	}
}

func TestLoad_ColumnOrderAndExtras(t *testing.T) {
	t.Parallel()

	content := "\ufeffplatform,conn_country,track_name,ms_played,ts,artist_name,reason_start\n" +
		"ios,SE,Song,42,2024-05-01T12:00:00Z,Artist,trackdone\n"

	table, err := Load(context.Background(), Options{Path: writeDataset(t, content)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	e := table.At(0)
	if e.Platform != "ios" || e.TrackName != "Song" || e.MsPlayed != 42 || e.ArtistName != "Artist" {
		t.Errorf("event = %+v", e)
	}
}

func TestLoad_KeepsEmptyTextCells(t *testing.T) {
	t.Parallel()

	content := "ts,ms_played,artist_name,track_name,reason_start,platform\n" +
		"2024-01-01,100,,,,\n"

	table, err := Load(context.Background(), Options{Path: writeDataset(t, content)})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Len() != 1 || table.At(0).ArtistName != "" {
		t.Errorf("expected one row with an empty artist, got %+v", table.At(0))
	}
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantIs  error
		wantRow int
		wantCol string
	}{
		{
			name:    "header only",
			content: "ts,ms_played,artist_name,track_name,reason_start,platform\n",
			wantIs:  ErrEmptyDataset,
		},
		{
			name:    "empty file",
			content: "",
			wantIs:  ErrEmptyDataset,
		},
		{
			name:    "missing columns",
			content: "ts,ms_played,artist_name\n2024-01-01,1,A\n",
			wantIs:  ErrMissingColumns,
		},
		{
			name:    "bad timestamp",
			content: "ts,ms_played,artist_name,track_name,reason_start,platform\n2024-01-01,1,A,T,r,p\nyesterday,1,A,T,r,p\n",
			wantRow: 2,
			wantCol: ColTimestamp,
		},
		{
			name:    "negative duration",
			content: "ts,ms_played,artist_name,track_name,reason_start,platform\n2024-01-01,-5,A,T,r,p\n",
			wantRow: 1,
			wantCol: ColMsPlayed,
		},
		{
			name:    "non-numeric duration",
			content: "ts,ms_played,artist_name,track_name,reason_start,platform\n2024-01-01,abc,A,T,r,p\n",
			wantRow: 1,
			wantCol: ColMsPlayed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Load(context.Background(), Options{Path: writeDataset(t, tt.content)})
			if err == nil {
				t.Fatalf("Load() = %d rows, want error", table.Len())
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
			if tt.wantCol != "" {
				var rowErr *RowError
				if !errors.As(err, &rowErr) {
					t.Fatalf("error = %v, want *RowError", err)
				}
				if rowErr.Row != tt.wantRow || rowErr.Column != tt.wantCol {
					t.Errorf("RowError = row %d column %s, want row %d column %s",
						rowErr.Row, rowErr.Column, tt.wantRow, tt.wantCol)
				}
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	for _, engine := range []string{EngineCSV, EngineDuckDB} {
		t.Run(engine, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "absent.csv")
			_, err := Load(context.Background(), Options{Path: path, Engine: engine})
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("error = %v, want os.ErrNotExist", err)
			}
		})
	}
}

func TestNewReader_UnknownEngine(t *testing.T) {
	t.Parallel()

	if _, err := NewReader(Options{Path: "x.csv", Engine: "parquet"}); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("error = %v, want ErrUnknownEngine", err)
	}
}

func TestLoad_EnginesAgree(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, validCSV)
	fromCSV, err := Load(context.Background(), Options{Path: path, Engine: EngineCSV})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	fromDuck, err := Load(context.Background(), Options{Path: path, Engine: EngineDuckDB})
	if err != nil {
		t.Fatalf("duckdb: %v", err)
	}

	if fromCSV.Len() != fromDuck.Len() {
		t.Fatalf("rows: csv %d, duckdb %d", fromCSV.Len(), fromDuck.Len())
	}
	for i := 0; i < fromCSV.Len(); i++ {
		a, b := fromCSV.At(i), fromDuck.At(i)
		if !a.Timestamp.Equal(b.Timestamp) || a.ArtistName != b.ArtistName || a.TrackName != b.TrackName ||
			a.MsPlayed != b.MsPlayed || a.ReasonStart != b.ReasonStart || a.Platform != b.Platform {
			t.Errorf("row %d differs: csv %+v, duckdb %+v", i, a, b)
		}
	}
}

func TestDuckDB_RejectsBadValues(t *testing.T) {
	t.Parallel()

	content := "ts,ms_played,artist_name,track_name,reason_start,platform\n2024-01-01,1.5,A,T,r,p\n"
	_, err := Load(context.Background(), Options{Path: writeDataset(t, content), Engine: EngineDuckDB})

	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Column != ColMsPlayed {
		t.Errorf("error = %v, want RowError on ms_played", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-03-09T12:30:00Z", time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC), false},
		{"2024-03-09T12:30:00.5Z", time.Date(2024, 3, 9, 12, 30, 0, 5e8, time.UTC), false},
		{"2024-03-09T12:30:00", time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC), false},
		{"2024-03-09 12:30:00", time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC), false},
		{" 2024-03-09 ", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-09 12:30:00+02:00", time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"09/03/2024", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimestamp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMsPlayed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{" 1500 ", 1500, false},
		{"9000000000", 9000000000, false},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMsPlayed(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMsPlayed(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMsPlayed(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRowError_Message(t *testing.T) {
	t.Parallel()

	err := &RowError{Row: 4, Column: ColTimestamp, Value: "nope", Err: errTimestampLayout}
	msg := err.Error()
	for _, want := range []string{"row 4", "ts", `"nope"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if !errors.Is(err, errTimestampLayout) {
		t.Error("RowError should unwrap to its cause")
	}
}
