// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

/*
Package filter decides which sightings survive a scrub.

Two independent filters are combined by a Pipeline:

  - DenyList drops records by MAC (case-insensitive), by exact SSID, or by
    regular expression searched in either the SSID or the MAC.
  - Geofence keeps records inside (ModeHere) or outside (ModeNotHere) a
    square box around a reference point.

The deny list is always applied first. The geofence only applies when a
location mode was requested.

# Deny List Files

Deny lists are JSON documents with three optional keys:

	{
	  "blocked_macs": ["FF:FF:FF:FF:FF:FF"],
	  "blocked_ssids": ["myssid"],
	  "blocked_patterns": ["MyCompany.*"]
	}

Loading never fails the run. A missing or unparsable file produces an empty
deny list, and a pattern that does not compile is dropped; both cases are
logged as warnings. Patterns use Go RE2 syntax, so lookaround and
backreferences are rejected.

# Unknown Locations

Records without a GPS fix, the (0, 0) sentinel, are neither here nor not
here. Either geofence mode drops them.
*/
package filter
