// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

/*
Package processor runs one wigleproc session over a set of WiGLE capture
files.

A session reads every input file once, then performs whichever of the
requested operations apply:

  - Scrub: drop denied and out-of-fence records, write the rest to the
    output directory under the input's relative name, and optionally upload
    the result to object storage.
  - Creeps: report devices sighted in several distinct location buckets.
  - Encryption: report the auth-mode breakdown of distinct networks.

Creep and encryption analysis always use every parsed record of the session,
not the scrubbed subset.

Usage:

	p := processor.New(cfg, processor.Options{
	    Files: []string{"capture.csv"},
	    Scrub: true,
	}, processor.WithOutput(os.Stdout))

	stats, err := p.Run(ctx)

File-level problems (unreadable or non-UTF-8 input) are logged as warnings
and the session continues. Failing to write a scrubbed file stops the run.
*/
package processor
