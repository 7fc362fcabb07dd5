// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every wigleproc collector.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Input Metrics
	FilesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wigleproc_files_total",
			Help: "Capture files processed, by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	RowsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wigleproc_rows_total",
			Help: "CSV data rows seen, by parse result",
		},
		[]string{"result"}, // "parsed", "skipped"
	)

	// Scrub Metrics
	RecordsFiltered = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wigleproc_records_filtered_total",
			Help: "Records dropped while scrubbing, by rule",
		},
		[]string{"reason"}, // "mac", "ssid", "pattern", "geofence"
	)

	RecordsWritten = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "wigleproc_records_written_total",
			Help: "Records written to scrubbed files",
		},
	)

	UploadsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wigleproc_uploads_total",
			Help: "Scrubbed file uploads to object storage, by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	// Analysis Metrics
	CreepDevices = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "wigleproc_creep_devices",
			Help: "Devices seen at multiple distinct locations in the last run",
		},
	)

	UniqueNetworks = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "wigleproc_unique_networks",
			Help: "Distinct (MAC, SSID) pairs in the last run",
		},
	)

	// Run Metrics
	RunDuration = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "wigleproc_run_duration_seconds",
			Help: "Wall time of the last run in seconds",
		},
	)

	LastRun = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "wigleproc_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		},
	)
)

// RecordFile records the outcome of reading one capture file.
func RecordFile(err error) {
	if err != nil {
		FilesTotal.WithLabelValues("error").Inc()
		return
	}
	FilesTotal.WithLabelValues("ok").Inc()
}

// RecordRows records parse results for one file.
func RecordRows(parsed, skipped int) {
	RowsTotal.WithLabelValues("parsed").Add(float64(parsed))
	RowsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordFiltered adds n drops for reason. Zero counts still create the
// series so exports have a stable shape.
func RecordFiltered(reason string, n int) {
	RecordsFiltered.WithLabelValues(reason).Add(float64(n))
}

// RecordUpload records the outcome of one upload.
func RecordUpload(err error) {
	if err != nil {
		UploadsTotal.WithLabelValues("error").Inc()
		return
	}
	UploadsTotal.WithLabelValues("ok").Inc()
}

// RecordRun records the duration of a finished run.
func RecordRun(duration time.Duration) {
	RunDuration.Set(duration.Seconds())
	LastRun.Set(float64(time.Now().Unix()))
}

// WriteTextfile writes every collector in Registry to path in Prometheus
// text format. The file is replaced atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
