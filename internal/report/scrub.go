// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package report

import (
	"bytes"
	"fmt"
	"io"

	prettytable "github.com/tatsushid/go-prettytable"
)

// ScrubResult describes one scrubbed file.
type ScrubResult struct {
	Input  string
	Output string
	Kept   int
	Total  int
}

// WriteScrubLine prints the per-file progress line.
func WriteScrubLine(w io.Writer, r ScrubResult) error {
	_, err := fmt.Fprintf(w, "Scrubbed %s -> %s (%d/%d records)\n", r.Input, r.Output, r.Kept, r.Total)
	return err
}

// WriteScrubSummary prints a table of every scrubbed file and a total row.
func WriteScrubSummary(w io.Writer, results []ScrubResult) error {
	table, err := prettytable.NewTable(
		prettytable.Column{Header: "File"},
		prettytable.Column{Header: "Kept", AlignRight: true},
		prettytable.Column{Header: "Total", AlignRight: true},
		prettytable.Column{Header: "Output"},
	)
	if err != nil {
		return err
	}
	table.Separator = "  "

	var kept, total int
	for _, r := range results {
		if err := table.AddRow(r.Input, r.Kept, r.Total, r.Output); err != nil {
			return err
		}
		kept += r.Kept
		total += r.Total
	}
	if err := table.AddRow("(all files)", kept, total, ""); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteByte('\n')
	if _, err := table.WriteTo(&buf); err != nil {
		return fmt.Errorf("render scrub summary: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
