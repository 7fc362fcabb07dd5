// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package processor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wigleproc/internal/config"
	"github.com/tomtom215/wigleproc/internal/logging"
	"github.com/tomtom215/wigleproc/internal/models"
	"github.com/tomtom215/wigleproc/internal/wigle"
)

const captureA = `WigleWifi-1.4,appRelease=2.53,model=Pixel 6,release=13
MAC,SSID,AuthMode,FirstSeen,Channel,RSSI,CurrentLatitude,CurrentLongitude,AltitudeMeters,AccuracyMeters,Type
AA:BB:CC:DD:EE:01,HomeWifi,[WPA2-PSK-CCMP][ESS],2023-01-01 10:00:00,6,-50,40.0005,-74.0005,10,5,WIFI
AA:BB:CC:DD:EE:02,Tracker,[ESS],2023-01-01 10:01:00,11,-70,40.5,-74.5,12,8,WIFI
AA:BB:CC:DD:EE:03,xfinitywifi,[ESS],2023-01-01 10:02:00,1,-60,41.0,-75.0,0,0,WIFI
AA:BB:CC:DD:EE:04,Nowhere,[WEP],2023-01-01 10:03:00,3,-80,0,0,0,0,WIFI
`

const captureB = `WigleWifi-1.4,appRelease=2.53
MAC,SSID,AuthMode,FirstSeen,Channel,RSSI,CurrentLatitude,CurrentLongitude,AltitudeMeters,AccuracyMeters,Type
AA:BB:CC:DD:EE:02,Tracker,[ESS],2023-01-02 09:00:00,11,-70,42.0,-76.0,12,8,WIFI
AA:BB:CC:DD:EE:05,Cafe,[WPA2-PSK-CCMP][ESS],2023-01-02 09:01:00,6,-65,42.0,-76.0,12,8,WIFI
`

const denyListJSON = `{
  "blocked_macs": ["aa:bb:cc:dd:ee:01"],
  "blocked_ssids": ["xfinitywifi"],
  "blocked_patterns": []
}`

type fakeUploader struct {
	keys []string
	err  error
}

func (f *fakeUploader) Upload(_ context.Context, localPath, key string) error {
	if _, err := os.Stat(localPath); err != nil {
		return err
	}
	f.keys = append(f.keys, key)
	return f.err
}

// workspace switches into a fresh directory holding the given files.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	for name, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}
	return dir
}

func TestRun_NoFiles(t *testing.T) {
	workspace(t, nil)

	var out bytes.Buffer
	stats, err := New(config.Default(), Options{Scrub: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, NoFilesMessage+"\n", out.String())
	assert.Zero(t, stats.Files)
	assert.NoDirExists(t, "Scrub")
}

func TestRun_GlobsWorkingDirectory(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "notes.txt": "x"})

	var out bytes.Buffer
	stats, err := New(config.Default(), Options{}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Reading a.csv...\n", out.String())
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 4, stats.Records)
}

func TestRun_ScrubWithDenyList(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "deny.json": denyListJSON})

	cfg := config.Default()
	cfg.Filter.DenyList = "deny.json"

	var out bytes.Buffer
	stats, err := New(cfg, Options{Files: []string{"a.csv"}, Scrub: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)

	output := filepath.Join("Scrub", "a.csv")
	assert.Equal(t, "Reading a.csv...\nScrubbed a.csv -> "+output+" (2/4 records)\n", out.String())
	assert.Equal(t, 1, stats.Filter.DeniedMAC)
	assert.Equal(t, 1, stats.Filter.DeniedSSID)

	records, err := wigle.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AA:BB:CC:DD:EE:02", records[0].MAC)
	assert.Equal(t, "AA:BB:CC:DD:EE:04", records[1].MAC)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), models.OutputBanner+"\n"+models.CSVHeader+"\n"))
}

func TestRun_ScrubGeofence(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantMAC []string
	}{
		{"here", Options{Here: true}, []string{"AA:BB:CC:DD:EE:01"}},
		{"not here", Options{NotHere: true}, []string{"AA:BB:CC:DD:EE:02", "AA:BB:CC:DD:EE:03"}},
		{"here wins", Options{Here: true, NotHere: true}, []string{"AA:BB:CC:DD:EE:01"}},
		{"no mode", Options{}, []string{"AA:BB:CC:DD:EE:01", "AA:BB:CC:DD:EE:02", "AA:BB:CC:DD:EE:03", "AA:BB:CC:DD:EE:04"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			workspace(t, map[string]string{"a.csv": captureA})

			cfg := config.Default()
			cfg.Geofence.Enabled = true
			cfg.Geofence.Latitude = 40.0
			cfg.Geofence.Longitude = -74.0

			opts := tt.opts
			opts.Files = []string{"a.csv"}
			opts.Scrub = true

			_, err := New(cfg, opts).Run(context.Background())
			require.NoError(t, err)

			records, err := wigle.ReadFile(filepath.Join("Scrub", "a.csv"))
			require.NoError(t, err)

			macs := make([]string, 0, len(records))
			for _, r := range records {
				macs = append(macs, r.MAC)
			}
			assert.Equal(t, tt.wantMAC, macs)
		})
	}
}

func TestRun_NestedInputPath(t *testing.T) {
	workspace(t, map[string]string{filepath.Join("drives", "day1.csv"): captureB})

	cfg := config.Default()
	cfg.Scrub.OutputDir = "out"

	_, err := New(cfg, Options{Files: []string{filepath.Join("drives", "day1.csv")}, Scrub: true}).Run(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join("out", "drives", "day1.csv"))
}

func TestRun_UnreadableFileContinues(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "bad.csv": "MAC,SSID\n\xff\xfe\n"})

	var out bytes.Buffer
	stats, err := New(config.Default(), Options{Files: []string{"missing.csv", "bad.csv", "a.csv"}, Scrub: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Files)
	assert.Equal(t, 2, stats.FailedFiles)
	assert.Equal(t, 4, stats.Records)
	assert.Contains(t, out.String(), "Scrubbed missing.csv -> "+filepath.Join("Scrub", "missing.csv")+" (0/0 records)")

	records, err := wigle.ReadFile(filepath.Join("Scrub", "bad.csv"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRun_OutputDirUnwritable(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "blocker": "not a directory"})

	cfg := config.Default()
	cfg.Scrub.OutputDir = "blocker"

	_, err := New(cfg, Options{Files: []string{"a.csv"}, Scrub: true}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scrub a.csv")
}

func TestRun_Uploads(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "b.csv": captureB})

	up := &fakeUploader{}
	stats, err := New(config.Default(), Options{Files: []string{"a.csv", "b.csv"}, Scrub: true}, WithUploader(up)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.csv", "b.csv"}, up.keys)
	assert.Equal(t, 2, stats.Uploaded)
}

func TestRun_UploadFailureIsNotFatal(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA})

	up := &fakeUploader{err: errors.New("connection refused")}
	stats, err := New(config.Default(), Options{Files: []string{"a.csv"}, Scrub: true}, WithUploader(up)).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, up.keys, 1)
	assert.Zero(t, stats.Uploaded)
	assert.FileExists(t, filepath.Join("Scrub", "a.csv"))
}

func TestRun_ScrubSummaryForSeveralFiles(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "b.csv": captureB})

	var out bytes.Buffer
	_, err := New(config.Default(), Options{Files: []string{"a.csv", "b.csv"}, Scrub: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(all files)")

	out.Reset()
	_, err = New(config.Default(), Options{Files: []string{"a.csv"}, Scrub: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "(all files)")
}

func TestRun_CreepsAndEncryptionUseAllRecords(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "b.csv": captureB, "deny.json": denyListJSON})

	cfg := config.Default()
	cfg.Filter.DenyList = "deny.json"

	var out bytes.Buffer
	stats, err := New(cfg, Options{
		Files:      []string{"a.csv", "b.csv"},
		Scrub:      true,
		Creeps:     true,
		Encryption: true,
	}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "\nFinding devices at multiple locations...\n")
	assert.Contains(t, text, "2            AA:BB:CC:DD:EE:02\n")
	assert.Contains(t, text, "  40.500000, -74.500000 - Tracker\n  42.000000, -76.000000 - Tracker\n")
	assert.Contains(t, text, "\nAnalyzing encryption types...\n")
	assert.Contains(t, text, "[ESS]                   40.00%        2/5\n")
	assert.Less(t, strings.Index(text, "Finding devices"), strings.Index(text, "Analyzing encryption"))

	assert.Equal(t, 1, stats.CreepDevices)
	assert.Equal(t, 5, stats.UniqueNetworks)
}

func TestRun_AnalysisWithoutFiles(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA})

	for _, opts := range []Options{{Creeps: true}, {Encryption: true}, {Creeps: true, Encryption: true, Scrub: true}} {
		var out bytes.Buffer
		stats, err := New(config.Default(), opts, WithOutput(&out)).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, NoFilesMessage+"\n", out.String())
		assert.Zero(t, stats.Files)
	}
}

func TestRun_CreepsVerboseListsBuckets(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA, "b.csv": captureB})

	cfg := config.Default()
	cfg.Creeps.Verbose = true

	var out bytes.Buffer
	_, err := New(cfg, Options{Files: []string{"a.csv", "b.csv"}, Creeps: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "2            AA:BB:CC:DD:EE:02\nLocation buckets:\n  40.50 -74.51\n  42.00 -76.01\nSample records:\n")

	out.Reset()
	cfg.Creeps.Verbose = false
	_, err = New(cfg, Options{Files: []string{"a.csv", "b.csv"}, Creeps: true}, WithOutput(&out)).Run(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Location buckets:")
}

func TestRun_ZeroDeltaKeepsExactPoint(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA})

	cfg := config.Default()
	cfg.Geofence.Enabled = true
	cfg.Geofence.Latitude = 40.0005
	cfg.Geofence.Longitude = -74.0005
	cfg.Geofence.Delta = 0

	_, err := New(cfg, Options{Files: []string{"a.csv"}, Scrub: true, Here: true}).Run(context.Background())
	require.NoError(t, err)

	records, err := wigle.ReadFile(filepath.Join("Scrub", "a.csv"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:01", records[0].MAC)
}

func TestNew_WarnsAboutUnusableGeofence(t *testing.T) {
	var logs bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&logs))
	t.Cleanup(func() { logging.SetLogger(prev) })

	cfg := config.Default()
	New(cfg, Options{Here: true})
	assert.Contains(t, logs.String(), "without --lat and --lon")

	logs.Reset()
	cfg.Geofence.Enabled = true
	cfg.Geofence.Latitude = 95
	cfg.Geofence.Delta = -1
	New(cfg, Options{NotHere: true})
	assert.Contains(t, logs.String(), "outside valid coordinates")
	assert.Contains(t, logs.String(), "Negative geofence delta")

	logs.Reset()
	New(cfg, Options{Encryption: true})
	assert.Empty(t, logs.String())
}

func TestRun_Cancelled(t *testing.T) {
	workspace(t, map[string]string{"a.csv": captureA})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(config.Default(), Options{Files: []string{"a.csv"}, Scrub: true}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, "Scrub")
}

func TestRun_MetricsTextfile(t *testing.T) {
	dir := workspace(t, map[string]string{"a.csv": captureA})

	cfg := config.Default()
	cfg.Metrics.Textfile = filepath.Join(dir, "wigleproc.prom")

	_, err := New(cfg, Options{Files: []string{"a.csv"}, Scrub: true}).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wigleproc_files_total")
	assert.Contains(t, string(data), "wigleproc_run_duration_seconds")
}
