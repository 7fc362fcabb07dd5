// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package logging provides the process-wide zerolog logger for wigleproc.
//
// Diagnostics (skipped files, unusable deny-list entries, failed uploads) go
// through this package to stderr. Reports the operator asked for (creep
// tables, encryption breakdowns, scrub progress) are plain console output on
// stdout and do not use it.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Str("file", path).Msg("Scrubbed capture")
//	logging.Warn().Err(err).Msg("Could not load deny list")
//
// # Run Correlation
//
// Every invocation gets a short run ID. Attach it to a context once and
// derive loggers from that context:
//
//	ctx := logging.ContextWithNewRunID(context.Background())
//	logging.Ctx(ctx).Info().Msg("Run started")
//	// {"level":"info","run_id":"3f2a9c1e","message":"Run started"}
//
// # Configuration
//
// Level and format come from internal/config (WIGLE_LOG_LEVEL,
// WIGLE_LOG_FORMAT, or the --log-level and --log-format flags).
//
// Always terminate chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
