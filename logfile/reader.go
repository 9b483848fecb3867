// Package logfile reads the homing-sample CSV logs a measurement run emits.
//
// A log is a header row naming at least the mcu_pos_z, bed_t, frame_t and
// bed_target columns, followed by one row per homing sample; the row order
// is the implicit sample index. Columns are extracted by header name, so
// extra columns and column order do not matter. Files may be stored
// compressed (gzip, zstd, s2 or lz4); the format is detected from magic
// bytes and decompressed transparently.
//
// The reader only extracts columns into raw records. Typing, validation and
// displacement derivation happen in the sample package.
package logfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gantrylab/thermcal/compress"
	"github.com/gantrylab/thermcal/errs"
	"github.com/gantrylab/thermcal/internal/hash"
	"github.com/gantrylab/thermcal/sample"
)

// Column names the upstream data producer writes. They are a contract with
// the measurement script; the core only depends on their semantic roles.
const (
	ColumnRawPosition = "mcu_pos_z"
	ColumnBedTemp     = "bed_t"
	ColumnFrameTemp   = "frame_t"
	ColumnBedTarget   = "bed_target"
)

// Dataset is a parsed log: the raw records plus the xxHash64 fingerprint of
// the decompressed bytes, used to trace results back to their input.
type Dataset struct {
	Records     []sample.Record
	Fingerprint uint64
}

// Read loads, decompresses and parses the log file at path.
func Read(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	data, err := compress.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}

	return Parse(data)
}

// Parse extracts raw records from CSV log bytes.
//
// The required columns are located by header name; a header missing any of
// them fails with errs.ErrUnknownColumn. Empty cells become absent fields
// (rejected later by sample.Ingest); non-empty cells that do not parse fail
// immediately with the row and column identified. Lines starting with '#'
// are comments.
func Parse(data []byte) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, errs.ErrEmptyInput
	}

	cols, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]sample.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, cols, i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &Dataset{
		Records:     records,
		Fingerprint: hash.Fingerprint(data),
	}, nil
}

// columnIndexes maps each required column to its position in the header.
type columnIndexes struct {
	rawPosition int
	bedTemp     int
	frameTemp   int
	bedTarget   int
}

func locateColumns(header []string) (columnIndexes, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}

	cols := columnIndexes{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{ColumnRawPosition, &cols.rawPosition},
		{ColumnBedTemp, &cols.bedTemp},
		{ColumnFrameTemp, &cols.frameTemp},
		{ColumnBedTarget, &cols.bedTarget},
	} {
		idx, ok := byName[want.name]
		if !ok {
			return columnIndexes{}, fmt.Errorf("%w: %s", errs.ErrUnknownColumn, want.name)
		}
		*want.dst = idx
	}

	return cols, nil
}

func parseRow(row []string, cols columnIndexes, index int) (sample.Record, error) {
	rec := sample.Record{}

	if cell := row[cols.rawPosition]; cell != "" {
		pos, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return sample.Record{}, fmt.Errorf("row %d, column %s: %w", index, ColumnRawPosition, err)
		}
		rec.RawPosition = &pos
	}

	var err error
	if rec.BedTemp, err = parseFloatCell(row[cols.bedTemp], ColumnBedTemp, index); err != nil {
		return sample.Record{}, err
	}
	if rec.FrameTemp, err = parseFloatCell(row[cols.frameTemp], ColumnFrameTemp, index); err != nil {
		return sample.Record{}, err
	}
	if rec.BedTarget, err = parseFloatCell(row[cols.bedTarget], ColumnBedTarget, index); err != nil {
		return sample.Record{}, err
	}

	return rec, nil
}

// parseFloatCell parses a real-valued cell. An empty cell yields a nil
// pointer, leaving the missing-field decision to sample.Ingest.
func parseFloatCell(cell, column string, index int) (*float64, error) {
	if cell == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, fmt.Errorf("row %d, column %s: %w", index, column, err)
	}

	return &v, nil
}
