// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package detection

import (
	"fmt"
	"math"
)

// Defaults for creep detection.
const (
	DefaultFudgeFactor  = 100
	DefaultMinLocations = 2
)

// CreepDevice is a MAC seen at more than one location bucket.
type CreepDevice struct {
	Count int    `json:"count"`
	MAC   string `json:"mac"`
}

// Fingerprint rounds a coordinate to its location bucket key.
func Fingerprint(lat, lon float64, fudgeFactor int) string {
	f := float64(fudgeFactor)
	roundedLat := math.Floor(lat*f+0.5) / f
	roundedLon := math.Floor(lon*f-0.5) / f
	return fmt.Sprintf("%.2f %.2f", roundedLat, roundedLon)
}
