// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wigleproc/internal/detection"
	"github.com/tomtom215/wigleproc/internal/encryption"
	"github.com/tomtom215/wigleproc/internal/models"
)

type fakeVendors map[string]string

func (f fakeVendors) Manufacturer(mac string) string {
	if v, ok := f[mac]; ok {
		return v
	}
	return "Unknown"
}

func sightings() []models.Record {
	return []models.Record{
		{MAC: "AA:BB:CC:DD:EE:02", SSID: "Hotspot", Latitude: 40.0, Longitude: -74.0},
		{MAC: "AA:BB:CC:DD:EE:01", SSID: "Home", Latitude: 40.001, Longitude: -74.001},
		{MAC: "AA:BB:CC:DD:EE:02", SSID: "Hotspot", Latitude: 40.5, Longitude: -74.5},
		{MAC: "AA:BB:CC:DD:EE:02", SSID: "Hotspot", Latitude: 41.0, Longitude: -75.0},
		{MAC: "AA:BB:CC:DD:EE:02", SSID: "Hotspot", Latitude: 41.5, Longitude: -75.5},
	}
}

func TestWriteCreeps(t *testing.T) {
	t.Parallel()

	devices := []detection.CreepDevice{{Count: 4, MAC: "AA:BB:CC:DD:EE:02"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCreeps(&buf, devices, sightings(), CreepOptions{Top: 10, Samples: 3}))

	want := "\n" +
		"Locations    MAC Address       \n" +
		"------------------------------\n" +
		"4            AA:BB:CC:DD:EE:02\n" +
		"Sample records:\n" +
		"  40.000000, -74.000000 - Hotspot\n" +
		"  40.500000, -74.500000 - Hotspot\n" +
		"  41.000000, -75.000000 - Hotspot\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCreeps_TopAndVendor(t *testing.T) {
	t.Parallel()

	var devices []detection.CreepDevice
	for i := 0; i < 15; i++ {
		devices = append(devices, detection.CreepDevice{Count: 20 - i, MAC: fmt.Sprintf("AA:00:00:00:00:%02d", i)})
	}

	var buf bytes.Buffer
	err := WriteCreeps(&buf, devices, nil, CreepOptions{
		Vendors: fakeVendors{"AA:00:00:00:00:00": "Espressif Inc."},
		Samples: -1,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, DefaultTop, strings.Count(out, "Sample records:"))
	assert.Contains(t, out, "Vendor: Espressif Inc.")
	assert.Contains(t, out, "Vendor: Unknown")
	assert.NotContains(t, out, "AA:00:00:00:00:10")
}

func TestWriteCreeps_LocationBuckets(t *testing.T) {
	t.Parallel()

	detector := detection.NewCreepDetector(detection.DefaultFudgeFactor)
	detector.AddRecords(sightings())
	devices := detector.MultiLocationDevices(detection.DefaultMinLocations)
	require.Len(t, devices, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteCreeps(&buf, devices, sightings(), CreepOptions{Samples: 1, Locations: detector}))

	want := "4            AA:BB:CC:DD:EE:02\n" +
		"Location buckets:\n" +
		"  40.00 -74.01\n" +
		"  40.50 -74.51\n" +
		"  41.00 -75.01\n" +
		"  41.50 -75.51\n" +
		"Sample records:\n" +
		"  40.000000, -74.000000 - Hotspot\n"
	assert.Contains(t, buf.String(), want)
}

func TestWriteCreeps_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCreeps(&buf, nil, sightings(), CreepOptions{}))
	assert.Equal(t, "\nLocations    MAC Address       \n"+strings.Repeat("-", 30)+"\n", buf.String())
}

func TestCollectSamples(t *testing.T) {
	t.Parallel()

	devices := []detection.CreepDevice{{Count: 4, MAC: "AA:BB:CC:DD:EE:02"}, {Count: 2, MAC: "AA:BB:CC:DD:EE:01"}}

	got := collectSamples(devices, sightings(), 2)
	require.Len(t, got["AA:BB:CC:DD:EE:02"], 2)
	require.Len(t, got["AA:BB:CC:DD:EE:01"], 1)
	assert.Equal(t, 40.5, got["AA:BB:CC:DD:EE:02"][1].Latitude)

	assert.Empty(t, collectSamples(devices, sightings(), 0))
}

func TestWriteEncryption(t *testing.T) {
	t.Parallel()

	agg := encryption.NewAggregator()
	agg.AddRecords([]models.Record{
		{MAC: "01", SSID: "a", AuthMode: "[WPA2-PSK-CCMP][ESS]"},
		{MAC: "02", SSID: "b", AuthMode: "[WPA2-PSK-CCMP][ESS]"},
		{MAC: "03", SSID: "c", AuthMode: "[ESS]"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteEncryption(&buf, agg.Sorted()))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "Encryption           Percentage   Count    Total", lines[1])
	assert.Equal(t, strings.Repeat("-", 50), lines[2])
	assert.Equal(t, "[WPA2-PSK-CCMP][ESS]    66.67%        2/3", lines[3])
	assert.Equal(t, "[ESS]                   33.33%        1/3", lines[4])
}

func TestWriteScrubLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteScrubLine(&buf, ScrubResult{Input: "a.csv", Output: "Scrub/a.csv", Kept: 3, Total: 5}))
	assert.Equal(t, "Scrubbed a.csv -> Scrub/a.csv (3/5 records)\n", buf.String())
}

func TestWriteScrubSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteScrubSummary(&buf, []ScrubResult{
		{Input: "a.csv", Output: "Scrub/a.csv", Kept: 3, Total: 5},
		{Input: "b.csv", Output: "Scrub/b.csv", Kept: 10, Total: 10},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "File")
	assert.Contains(t, out, "Scrub/b.csv")
	assert.Contains(t, out, "(all files)")
	assert.Contains(t, out, "13")
	assert.Contains(t, out, "15")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriters_PropagateErrors(t *testing.T) {
	t.Parallel()

	devices := []detection.CreepDevice{{Count: 4, MAC: "AA:BB:CC:DD:EE:02"}}
	results := []ScrubResult{{Input: "a.csv", Output: "Scrub/a.csv", Kept: 1, Total: 2}}

	assert.Error(t, WriteCreeps(failingWriter{}, devices, sightings(), CreepOptions{}))
	assert.Error(t, WriteEncryption(failingWriter{}, []encryption.Stat{{AuthMode: "[ESS]", Count: 1, Percentage: 100, Total: 1}}))
	assert.Error(t, WriteScrubLine(failingWriter{}, results[0]))
	assert.Error(t, WriteScrubSummary(failingWriter{}, results))
}
