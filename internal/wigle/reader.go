// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package wigle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/wigleproc/internal/logging"
	"github.com/tomtom215/wigleproc/internal/models"
)

// Sentinel errors for row and file parsing.
var (
	// ErrShortRow is returned by ParseRow for rows with fewer than
	// models.MinFields fields.
	ErrShortRow = errors.New("row has too few fields")

	// ErrInvalidCoordinate is returned by ParseRow when latitude or
	// longitude is not a number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidEncoding is returned when a file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// ReadStats summarizes one read.
type ReadStats struct {
	Rows    int // data rows handed to the parser
	Parsed  int // rows that produced a record
	Skipped int // short, malformed, or non-numeric rows
}

// ParseRow converts one CSV row into a Record.
// Empty coordinate fields map to 0. Any error means the row should be skipped.
func ParseRow(row []string) (models.Record, error) {
	if len(row) < models.MinFields {
		return models.Record{}, fmt.Errorf("%w: got %d, need %d", ErrShortRow, len(row), models.MinFields)
	}

	lat, err := parseCoordinate(row[models.ColLatitude])
	if err != nil {
		return models.Record{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseCoordinate(row[models.ColLongitude])
	if err != nil {
		return models.Record{}, fmt.Errorf("longitude: %w", err)
	}

	networkType := row[models.ColType]
	if networkType == "" {
		networkType = models.DefaultNetworkType
	}

	return models.Record{
		MAC:         row[models.ColMAC],
		SSID:        row[models.ColSSID],
		AuthMode:    row[models.ColAuthMode],
		FirstSeen:   row[models.ColFirstSeen],
		Channel:     row[models.ColChannel],
		RSSI:        row[models.ColRSSI],
		Latitude:    lat,
		Longitude:   lon,
		Altitude:    row[models.ColAltitude],
		Accuracy:    row[models.ColAccuracy],
		NetworkType: networkType,
	}, nil
}

// parseCoordinate parses a coordinate field. Only a truly empty field is
// treated as zero; whitespace-only values are rejected.
func parseCoordinate(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return v, nil
}

// ReadFile reads and parses a WiGLE CSV file.
func ReadFile(path string) ([]models.Record, error) {
	records, _, err := ReadFileWithStats(path)
	return records, err
}

// ReadFileWithStats is ReadFile that also reports row counts.
func ReadFileWithStats(path string) ([]models.Record, ReadStats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator's command line
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, stats, err := ReadRecordsWithStats(f)
	if err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", path, err)
	}
	return records, stats, nil
}

// ReadRecords parses WiGLE CSV data from r.
func ReadRecords(r io.Reader) ([]models.Record, error) {
	records, _, err := ReadRecordsWithStats(r)
	return records, err
}

// ReadRecordsWithStats parses WiGLE CSV data from r and reports row counts.
func ReadRecordsWithStats(r io.Reader) ([]models.Record, ReadStats, error) {
	var stats ReadStats

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, stats, err
	}
	if !utf8.Valid(data) {
		return nil, stats, ErrInvalidEncoding
	}

	text := string(data)
	cr := csv.NewReader(strings.NewReader(text[dataStart(text):]))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records := make([]models.Record, 0, 64)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				stats.Rows++
				stats.Skipped++
				logging.Debug().Err(err).Msg("Skipping malformed CSV line")
				continue
			}
			return nil, stats, err
		}

		stats.Rows++
		rec, err := ParseRow(row)
		if err != nil {
			stats.Skipped++
			continue
		}
		records = append(records, rec)
		stats.Parsed++
	}

	return records, stats, nil
}

// dataStart returns the byte offset of the line following the first header
// line (one containing both "MAC" and "SSID"), or 0 when there is none.
func dataStart(text string) int {
	offset := 0
	for offset < len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		var line string
		if end < 0 {
			line = text[offset:]
		} else {
			line = text[offset : offset+end]
		}
		if strings.Contains(line, "MAC") && strings.Contains(line, "SSID") {
			if end < 0 {
				return len(text)
			}
			return offset + end + 1
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}
	return 0
}
