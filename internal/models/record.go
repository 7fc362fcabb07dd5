// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package models

// WiGLE CSV dialect constants.
const (
	// OutputBanner is the first line of every scrubbed CSV.
	OutputBanner = "WiGLE.net Python Processor"

	// CSVHeader is the column header line. It always contains the MAC and
	// SSID tokens the reader uses to find the start of data.
	CSVHeader = "MAC,SSID,AuthMode,FirstSeen,Channel,RSSI,CurrentLatitude,CurrentLongitude,AltitudeMeters,AccuracyMeters,Type"

	// MinFields is the minimum number of fields a data row must carry.
	MinFields = 11

	// DefaultNetworkType is used when the Type column is empty.
	DefaultNetworkType = "WIFI"
)

// Column indexes of a WiGLE data row.
const (
	ColMAC = iota
	ColSSID
	ColAuthMode
	ColFirstSeen
	ColChannel
	ColRSSI
	ColLatitude
	ColLongitude
	ColAltitude
	ColAccuracy
	ColType
)

// Record is a single observed wireless network sighting.
type Record struct {
	MAC         string  `json:"mac"`
	SSID        string  `json:"ssid"`
	AuthMode    string  `json:"auth_mode"`
	FirstSeen   string  `json:"first_seen"`
	Channel     string  `json:"channel"`
	RSSI        string  `json:"rssi"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Altitude    string  `json:"altitude"`
	Accuracy    string  `json:"accuracy"`
	NetworkType string  `json:"network_type"`
}

// HasLocation reports whether the record carries a GPS fix.
// The exact coordinate pair (0, 0) means "no fix".
func (r Record) HasLocation() bool {
	return !IsUnknownLocation(r.Latitude, r.Longitude)
}

// IsUnknownLocation reports whether lat/lon is the (0, 0) sentinel.
// Only exact zeros match; a real fix near Null Island is still a location.
func IsUnknownLocation(lat, lon float64) bool {
	return lat == 0 && lon == 0
}

// Identity returns the key used to deduplicate sightings of one network.
func (r Record) Identity() string {
	return r.MAC + " " + r.SSID
}
