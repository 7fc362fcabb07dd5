// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

/*
Package wigle reads and writes WiGLE-format wardriving CSV files.

# Reading

WiGLE exports start with a free-form pre-header (app version, device model)
followed by a column header line and the data rows. The reader does not
trust line positions: it looks for the first line containing both the MAC
and SSID tokens and starts parsing on the line after it. Files without such
a line are parsed from the very first line. That fallback is lenient on
purpose; malformed leading lines simply fail to parse and are skipped.

Rows are parsed independently. A short row or a non-numeric coordinate
drops that row only:

	records, err := wigle.ReadFile("capture.csv")
	if err != nil {
	    // missing file, unreadable file, or not UTF-8
	}

# Writing

WriteFile emits the two fixed header lines followed by one row per record
and creates the destination directory when needed:

	err := wigle.WriteFile("Scrub/capture.csv", kept)

Coordinates are written in their shortest exact form so that a written file
parses back to the same values.
*/
package wigle
