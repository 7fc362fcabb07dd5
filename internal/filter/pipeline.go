// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package filter

import "github.com/tomtom215/wigleproc/internal/models"

// Mode selects which side of the geofence to keep.
type Mode int

// Location modes.
const (
	ModeNone Mode = iota
	ModeHere
	ModeNotHere
)

// String returns the mode name used in logs and metrics.
func (m Mode) String() string {
	switch m {
	case ModeHere:
		return "here"
	case ModeNotHere:
		return "not_here"
	default:
		return "none"
	}
}

// ModeFromFlags maps the --here and --not-here flags to a Mode.
// here takes priority when both are set.
func ModeFromFlags(here, notHere bool) Mode {
	switch {
	case here:
		return ModeHere
	case notHere:
		return ModeNotHere
	default:
		return ModeNone
	}
}

// Stats counts what a Pipeline did with a batch.
type Stats struct {
	Total         int
	Kept          int
	DeniedMAC     int
	DeniedSSID    int
	DeniedPattern int
	OutsideFence  int
}

// Dropped returns the number of records removed.
func (s Stats) Dropped() int {
	return s.Total - s.Kept
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Total += o.Total
	s.Kept += o.Kept
	s.DeniedMAC += o.DeniedMAC
	s.DeniedSSID += o.DeniedSSID
	s.DeniedPattern += o.DeniedPattern
	s.OutsideFence += o.OutsideFence
}

// Pipeline combines a deny list and a geofence. Either may be nil to
// disable that stage.
type Pipeline struct {
	DenyList *DenyList
	Geofence *Geofence
}

// Check returns why r would be dropped for the given mode, or ReasonNone
// when it survives. The deny list is consulted before the geofence.
func (p *Pipeline) Check(r *models.Record, mode Mode) Reason {
	if reason := p.DenyList.Match(r); reason != ReasonNone {
		return reason
	}
	if p.Geofence == nil {
		return ReasonNone
	}
	switch mode {
	case ModeHere:
		if !p.Geofence.IsHere(r) {
			return ReasonGeofence
		}
	case ModeNotHere:
		if !p.Geofence.IsNotHere(r) {
			return ReasonGeofence
		}
	}
	return ReasonNone
}

// Apply returns the records that survive, in input order, and counts of
// what was dropped.
func (p *Pipeline) Apply(records []models.Record, mode Mode) ([]models.Record, Stats) {
	stats := Stats{Total: len(records)}
	kept := make([]models.Record, 0, len(records))

	for i := range records {
		switch p.Check(&records[i], mode) {
		case ReasonNone:
			kept = append(kept, records[i])
		case ReasonMAC:
			stats.DeniedMAC++
		case ReasonSSID:
			stats.DeniedSSID++
		case ReasonPattern:
			stats.DeniedPattern++
		case ReasonGeofence:
			stats.OutsideFence++
		}
	}

	stats.Kept = len(kept)
	return kept, stats
}
