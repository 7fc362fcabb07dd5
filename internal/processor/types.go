// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package processor

import (
	"io"
	"time"

	"github.com/tomtom215/wigleproc/internal/filter"
	"github.com/tomtom215/wigleproc/internal/storage"
	"github.com/tomtom215/wigleproc/internal/vendor"
)

// NoFilesMessage is printed when a session has nothing to read.
const NoFilesMessage = "No CSV files found. Use --help for usage information."

// Options selects what a session does.
type Options struct {
	// Files are the capture paths in command-line order. Empty means
	// "*.csv" in the working directory unless only analysis was requested.
	Files []string

	Scrub      bool
	Creeps     bool
	Encryption bool

	// Here keeps only records inside the geofence; NotHere only records
	// outside it. Here wins when both are set.
	Here    bool
	NotHere bool
}

// Option customizes a Processor.
type Option func(*Processor)

// WithOutput sets where console reports are written. Default: io.Discard.
func WithOutput(w io.Writer) Option {
	return func(p *Processor) {
		p.out = w
	}
}

// WithUploader uploads every scrubbed file after it is written.
func WithUploader(u storage.Uploader) Option {
	return func(p *Processor) {
		p.uploader = u
	}
}

// WithVendors adds vendor names to the creep report.
func WithVendors(l vendor.Lookup) Option {
	return func(p *Processor) {
		p.vendors = l
	}
}

// RunStats summarizes a finished session.
type RunStats struct {
	// Files is the number of input files attempted.
	Files int

	// FailedFiles is the number of inputs that could not be read.
	FailedFiles int

	// Records is the number of records parsed across all files.
	Records int

	// SkippedRows is the number of malformed data rows ignored.
	SkippedRows int

	// Filter totals the scrub pipeline across all files.
	Filter filter.Stats

	// Uploaded is the number of scrubbed files uploaded.
	Uploaded int

	// CreepDevices is the number of devices reported as creeps.
	CreepDevices int

	// UniqueNetworks is the number of distinct (MAC, SSID) pairs.
	UniqueNetworks int

	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the session ran.
func (s *RunStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
