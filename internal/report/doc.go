// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package report renders the console reports an operator asks for: the
// creep table, the encryption breakdown and the scrub summary.
//
// Reports are fixed-width text written to an io.Writer (stdout in the
// CLI). They are output, not diagnostics, and never go through the logger.
package report
