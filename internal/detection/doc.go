// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package detection finds devices that follow the operator around.
//
// A fixed access point is seen from many places but always reports roughly
// the same position. A phone hotspot, a tracker or a car's Wi-Fi that shows
// up at several distinct places across a session is a "creep". The
// CreepDetector buckets every sighting into a coarse location fingerprint
// per MAC and reports the MACs seen in at least N buckets.
//
// Detection Flow:
//
//	Record -> AddRecord -> MAC => {fingerprint, ...}
//	                              |
//	                              v
//	              MultiLocationDevices(min) -> []CreepDevice
//
// # Fingerprints
//
// Coordinates are scaled by a fudge factor (default 100, so buckets are
// about 1 km), shifted by half a step and floored:
//
//	lat' = floor(lat*F + 0.5) / F
//	lon' = floor(lon*F - 0.5) / F
//
// The shift is +0.5 for latitude and -0.5 for longitude. The asymmetry is
// load-bearing: changing it regroups sightings and reorders reports. Each
// value is then formatted with two decimals and the pair is joined with a
// space.
//
// Records without a fix, the (0, 0) sentinel, are ignored.
//
// # Ordering
//
// Results are sorted by location count, then MAC, both descending, so
// reports are deterministic.
package detection
