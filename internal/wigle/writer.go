// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package wigle

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tomtom215/wigleproc/internal/models"
)

// WriteFile writes records to path in WiGLE CSV format, creating the parent
// directory if it does not exist.
func WriteFile(path string, records []models.Record) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // output path is derived from operator input
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := WriteRecords(f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteRecords writes the banner line, the column header and one row per
// record to w.
func WriteRecords(w io.Writer, records []models.Record) error {
	if _, err := io.WriteString(w, models.OutputBanner+"\n"+models.CSVHeader+"\n"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	for i := range records {
		if err := cw.Write(toRow(&records[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRow(r *models.Record) []string {
	return []string{
		r.MAC,
		r.SSID,
		r.AuthMode,
		r.FirstSeen,
		r.Channel,
		r.RSSI,
		FormatCoordinate(r.Latitude),
		FormatCoordinate(r.Longitude),
		r.Altitude,
		r.Accuracy,
		r.NetworkType,
	}
}

// FormatCoordinate renders v in the shortest form that parses back to the
// same float64. Integral values keep a ".0" suffix (40 -> "40.0").
func FormatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
