// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package main is the wigleproc command-line tool.
//
// wigleproc post-processes WiGLE WiFi capture exports (CSV files written by
// the WiGLE Android app). It can scrub captures before they are shared,
// look for devices that appear to be following the operator, and summarize
// the encryption used by the networks seen.
//
// # Operations
//
// Any combination may be requested in one run. Every input file is read
// once and the operations run in this order:
//
//  1. Scrub (--scrub): drop records matching the deny list (--config) and,
//     with --here or --not-here, records on the wrong side of the geofence
//     around --lat/--lon. Survivors are written to --output-dir under the
//     input's relative path.
//  2. Creeps (--creeps): list MACs seen in at least two distinct location
//     buckets of roughly 1 km, with sample sightings.
//  3. Encryption (--encryption): percentage of distinct (MAC, SSID) networks
//     per AuthMode string.
//
// With no file arguments and no analysis flag, every *.csv file in the
// working directory is read.
//
// # Configuration
//
// Flags cover a single run. Standing settings are loaded via Koanf v2 with
// layered sources (highest priority wins):
//   - Command-line flags that were set explicitly
//   - WIGLE_* environment variables (a .env file is loaded first if present)
//   - Settings file (--settings, WIGLE_SETTINGS, or ./wigleproc.yaml)
//   - Built-in defaults
//
// Settings that have no flag:
//   - WIGLE_STORAGE_ENABLED, WIGLE_STORAGE_ENDPOINT, WIGLE_STORAGE_BUCKET,
//     WIGLE_STORAGE_ACCESS_KEY, WIGLE_STORAGE_SECRET_KEY: upload scrubbed
//     files to S3-compatible storage
//   - WIGLE_FUDGE_FACTOR, WIGLE_MIN_LOCATIONS: creep bucket size and threshold
//   - WIGLE_CREEPS_TOP, WIGLE_CREEPS_SAMPLES: creep report length
//
// # Deny List
//
// The deny list is JSON with three arrays:
//
//	{
//	  "blocked_macs": ["00:11:22:33:44:55"],
//	  "blocked_ssids": ["MyHomeNetwork"],
//	  "blocked_patterns": ["^Android_[A-Z0-9]{4}$"]
//	}
//
// MACs and SSIDs match exactly (MACs case-insensitively); patterns are RE2
// regular expressions searched anywhere in the SSID. Generate a starting
// point with --create-config.
//
// # Example Usage
//
// Scrub everything in the current directory, keeping only records away from
// home:
//
//	wigleproc --scrub --config deny.json --not-here --lat 40.7128 --lon -74.0060
//
// Look for creeps across a week of drives, with vendor names:
//
//	wigleproc --creeps --verbose-creeps --oui-db /usr/share/ieee-data/oui.txt drives/*.csv
//
// # Exit Status
//
// 0 on success, including when some input files could not be read. 1 when
// settings are invalid, a scrubbed file cannot be written, or the run is
// interrupted.
package main
