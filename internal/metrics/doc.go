// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

/*
Package metrics provides Prometheus metrics for wigleproc runs.

wigleproc is a batch tool with no HTTP listener, so metrics are not scraped.
They are written once at the end of a run in Prometheus text format, for
the node_exporter textfile collector:

	wigleproc --scrub --metrics-file /var/lib/node_exporter/wigleproc.prom *.csv

All collectors live on a dedicated Registry rather than the global default
one, so the export contains only wigleproc series.

# Available Metrics

Input:
  - wigleproc_files_total{result}: files read ("ok") or skipped ("error")
  - wigleproc_rows_total{result}: data rows parsed ("parsed") or skipped ("skipped")

Scrubbing:
  - wigleproc_records_filtered_total{reason}: drops by mac, ssid, pattern, geofence
  - wigleproc_records_written_total: rows written to scrubbed files
  - wigleproc_uploads_total{result}: scrubbed file uploads

Analysis:
  - wigleproc_creep_devices: devices seen at multiple locations
  - wigleproc_unique_networks: distinct (MAC, SSID) pairs

Run:
  - wigleproc_run_duration_seconds: wall time of the last run
  - wigleproc_last_run_timestamp_seconds: Unix time the last run finished
*/
package metrics
