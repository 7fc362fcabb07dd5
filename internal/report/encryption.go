// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/wigleproc/internal/encryption"
)

// WriteEncryption prints one line per auth mode in the given order.
func WriteEncryption(w io.Writer, stats []encryption.Stat) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%-20s %-12s %-8s %s\n", "Encryption", "Percentage", "Count", "Total")
	fmt.Fprintln(bw, strings.Repeat("-", 50))

	for _, s := range stats {
		fmt.Fprintf(bw, "%-20s %8.2f%%   %6d/%d\n", s.AuthMode, s.Percentage, s.Count, s.Total)
	}

	return bw.Flush()
}
