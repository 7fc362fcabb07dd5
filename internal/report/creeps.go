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

	"github.com/tomtom215/wigleproc/internal/detection"
	"github.com/tomtom215/wigleproc/internal/models"
	"github.com/tomtom215/wigleproc/internal/vendor"
)

// Default creep report limits.
const (
	DefaultTop     = 10
	DefaultSamples = 3
)

// CreepOptions controls the creep report.
type CreepOptions struct {
	// Top is the number of devices printed. Non-positive means DefaultTop.
	Top int

	// Samples is the number of sightings printed per device. Negative
	// means DefaultSamples; zero prints none.
	Samples int

	// Vendors adds a vendor line per device when set.
	Vendors vendor.Lookup

	// Locations lists every location bucket per device when set.
	Locations Locator
}

// Locator returns the location buckets of one MAC.
// *detection.CreepDetector implements it.
type Locator interface {
	Locations(mac string) []string
}

// WriteCreeps prints the top devices seen at multiple locations, each with
// sample sightings taken from records in encounter order.
func WriteCreeps(w io.Writer, devices []detection.CreepDevice, records []models.Record, opts CreepOptions) error {
	if opts.Top <= 0 {
		opts.Top = DefaultTop
	}
	if opts.Samples < 0 {
		opts.Samples = DefaultSamples
	}
	if len(devices) > opts.Top {
		devices = devices[:opts.Top]
	}

	samples := collectSamples(devices, records, opts.Samples)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%-12s %-18s\n", "Locations", "MAC Address")
	fmt.Fprintln(bw, strings.Repeat("-", 30))

	for _, d := range devices {
		fmt.Fprintf(bw, "%-12d %s\n", d.Count, d.MAC)
		if opts.Vendors != nil {
			fmt.Fprintf(bw, "Vendor: %s\n", opts.Vendors.Manufacturer(d.MAC))
		}
		if opts.Locations != nil {
			fmt.Fprintln(bw, "Location buckets:")
			for _, loc := range opts.Locations.Locations(d.MAC) {
				fmt.Fprintf(bw, "  %s\n", loc)
			}
		}
		fmt.Fprintln(bw, "Sample records:")
		for _, r := range samples[d.MAC] {
			fmt.Fprintf(bw, "  %.6f, %.6f - %s\n", r.Latitude, r.Longitude, r.SSID)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// collectSamples gathers up to n records per listed MAC in one pass.
func collectSamples(devices []detection.CreepDevice, records []models.Record, n int) map[string][]models.Record {
	out := make(map[string][]models.Record, len(devices))
	if n == 0 {
		return out
	}
	for _, d := range devices {
		out[d.MAC] = nil
	}

	remaining := len(devices)
	for i := range records {
		if remaining == 0 {
			break
		}
		got, ok := out[records[i].MAC]
		if !ok || len(got) >= n {
			continue
		}
		out[records[i].MAC] = append(got, records[i])
		if len(got)+1 == n {
			remaining--
		}
	}
	return out
}
