// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package filter

import "github.com/tomtom215/wigleproc/internal/models"

// DefaultDelta is the default half-width of the geofence box in degrees,
// roughly 110 m of latitude.
const DefaultDelta = 0.001

// Geofence is an inclusive square bounding box around a reference point.
// It is a plain degree box, not a geodesic radius. A zero delta matches only
// the exact point; a negative delta matches nothing.
type Geofence struct {
	lat, lon, delta float64

	latMin, latMax float64
	lonMin, lonMax float64
}

// NewGeofence builds a box of +/-delta degrees around lat/lon. Values are
// used as given.
func NewGeofence(lat, lon, delta float64) *Geofence {
	return &Geofence{
		lat:    lat,
		lon:    lon,
		delta:  delta,
		latMin: lat - delta,
		latMax: lat + delta,
		lonMin: lon - delta,
		lonMax: lon + delta,
	}
}

// Center returns the reference point.
func (g *Geofence) Center() (lat, lon float64) {
	return g.lat, g.lon
}

// Delta returns the half-width of the box in degrees.
func (g *Geofence) Delta() float64 {
	return g.delta
}

// IsHere reports whether r lies inside the box. Records without a fix are
// never here.
func (g *Geofence) IsHere(r *models.Record) bool {
	if !r.HasLocation() {
		return false
	}
	return g.contains(r.Latitude, r.Longitude)
}

// IsNotHere reports whether r lies outside the box. Records without a fix
// are never "not here" either.
func (g *Geofence) IsNotHere(r *models.Record) bool {
	if !r.HasLocation() {
		return false
	}
	return !g.contains(r.Latitude, r.Longitude)
}

func (g *Geofence) contains(lat, lon float64) bool {
	return g.latMin <= lat && lat <= g.latMax &&
		g.lonMin <= lon && lon <= g.lonMax
}
