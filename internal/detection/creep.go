// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package detection

import (
	"sort"

	"github.com/tomtom215/wigleproc/internal/models"
)

// CreepDetector accumulates location fingerprints per MAC. It is not safe
// for concurrent use.
type CreepDetector struct {
	fudgeFactor int
	locations   map[string]map[string]struct{}
	sightings   int
}

// NewCreepDetector creates a detector. A non-positive fudge factor falls
// back to DefaultFudgeFactor.
func NewCreepDetector(fudgeFactor int) *CreepDetector {
	if fudgeFactor <= 0 {
		fudgeFactor = DefaultFudgeFactor
	}
	return &CreepDetector{
		fudgeFactor: fudgeFactor,
		locations:   make(map[string]map[string]struct{}),
	}
}

// FudgeFactor returns the precision multiplier in use.
func (d *CreepDetector) FudgeFactor() int {
	return d.fudgeFactor
}

// AddRecord records one sighting. Records without a fix are ignored.
func (d *CreepDetector) AddRecord(r *models.Record) {
	if !r.HasLocation() {
		return
	}

	set, ok := d.locations[r.MAC]
	if !ok {
		set = make(map[string]struct{})
		d.locations[r.MAC] = set
	}
	set[Fingerprint(r.Latitude, r.Longitude, d.fudgeFactor)] = struct{}{}
	d.sightings++
}

// AddRecords records every sighting in records.
func (d *CreepDetector) AddRecords(records []models.Record) {
	for i := range records {
		d.AddRecord(&records[i])
	}
}

// MultiLocationDevices returns every MAC seen in at least minLocations
// distinct buckets, ordered by count then MAC, both descending.
func (d *CreepDetector) MultiLocationDevices(minLocations int) []CreepDevice {
	devices := make([]CreepDevice, 0)
	for mac, set := range d.locations {
		if len(set) >= minLocations {
			devices = append(devices, CreepDevice{Count: len(set), MAC: mac})
		}
	}

	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Count != devices[j].Count {
			return devices[i].Count > devices[j].Count
		}
		return devices[i].MAC > devices[j].MAC
	})
	return devices
}

// Locations returns the sorted fingerprints recorded for mac.
func (d *CreepDetector) Locations(mac string) []string {
	set := d.locations[mac]
	out := make([]string, 0, len(set))
	for fp := range set {
		out = append(out, fp)
	}
	sort.Strings(out)
	return out
}

// DeviceCount returns the number of distinct MACs with at least one fix.
func (d *CreepDetector) DeviceCount() int {
	return len(d.locations)
}

// Sightings returns the number of located records added.
func (d *CreepDetector) Sightings() int {
	return d.sightings
}
