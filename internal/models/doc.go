// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

/*
Package models defines the data structures shared across wigleproc.

The central type is Record, one sighting of a wireless network as exported
by WiGLE-compatible wardriving apps. Records are values: parsers create them,
filters keep or drop them, detectors and aggregators read them. Nothing
mutates a Record after it is parsed.

The package also holds the fixed strings of the WiGLE CSV dialect written by
the scrubber (banner line and column header), so the reader and writer in
internal/wigle agree on one definition.

Coordinates use (0, 0) as the "no fix" sentinel. Always go through
Record.HasLocation rather than comparing coordinates inline.
*/
package models
