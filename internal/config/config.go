// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package config

// Config holds all wigleproc settings.
type Config struct {
	Scrub    ScrubConfig    `koanf:"scrub"`
	Filter   FilterConfig   `koanf:"filter"`
	Geofence GeofenceConfig `koanf:"geofence"`
	Creeps   CreepsConfig   `koanf:"creeps"`
	Storage  StorageConfig  `koanf:"storage"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ScrubConfig controls where scrubbed captures are written.
type ScrubConfig struct {
	// OutputDir receives scrubbed copies, mirroring the input file names.
	// Default: ./Scrub
	OutputDir string `koanf:"output_dir" validate:"required"`
}

// FilterConfig points at the deny list.
type FilterConfig struct {
	// DenyList is the path of the JSON deny list. Empty disables deny-list
	// filtering.
	DenyList string `koanf:"deny_list"`
}

// GeofenceConfig defines the "here" box used by --here and --not-here.
type GeofenceConfig struct {
	// Enabled is set when both a latitude and a longitude were supplied.
	Enabled bool `koanf:"enabled"`

	// Latitude and Longitude are used as given; out-of-range values only
	// produce a warning when the geofence is used.
	Latitude  float64 `koanf:"latitude"`
	Longitude float64 `koanf:"longitude"`

	// Delta is the half-width of the box in degrees. Zero matches only the
	// exact point.
	// Default: 0.001
	Delta float64 `koanf:"delta"`
}

// CreepsConfig tunes creep detection and its report.
type CreepsConfig struct {
	// FudgeFactor is the coordinate precision multiplier. 100 gives
	// buckets of about 1 km.
	FudgeFactor int `koanf:"fudge_factor" validate:"gt=0"`

	// MinLocations is the number of distinct buckets that makes a creep.
	MinLocations int `koanf:"min_locations" validate:"min=1"`

	// Top limits how many devices are printed.
	Top int `koanf:"top" validate:"min=1"`

	// Samples is the number of sightings printed per device.
	Samples int `koanf:"samples" validate:"min=0"`

	// OUIDatabase is an IEEE oui.txt used to print vendor names. Optional.
	OUIDatabase string `koanf:"oui_database"`

	// Verbose lists every location bucket under each reported device.
	Verbose bool `koanf:"verbose"`
}

// StorageConfig configures upload of scrubbed captures to S3-compatible
// object storage (MinIO, AWS S3, Garage).
type StorageConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Endpoint  string `koanf:"endpoint" validate:"omitempty,hostname_port"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket" validate:"omitempty,s3bucket"`

	// Prefix is prepended to object keys.
	Prefix string `koanf:"prefix"`

	UseSSL bool   `koanf:"use_ssl"`
	Region string `koanf:"region"`
}

// MetricsConfig configures Prometheus metrics export.
type MetricsConfig struct {
	// Textfile is written in Prometheus text format at the end of a run,
	// for the node_exporter textfile collector. Empty disables export.
	Textfile string `koanf:"textfile"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`

	// Format is json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}
