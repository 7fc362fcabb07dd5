// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package processor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/tomtom215/wigleproc/internal/config"
	"github.com/tomtom215/wigleproc/internal/detection"
	"github.com/tomtom215/wigleproc/internal/encryption"
	"github.com/tomtom215/wigleproc/internal/filter"
	"github.com/tomtom215/wigleproc/internal/logging"
	"github.com/tomtom215/wigleproc/internal/metrics"
	"github.com/tomtom215/wigleproc/internal/models"
	"github.com/tomtom215/wigleproc/internal/report"
	"github.com/tomtom215/wigleproc/internal/storage"
	"github.com/tomtom215/wigleproc/internal/vendor"
	"github.com/tomtom215/wigleproc/internal/wigle"
)

// Processor runs a single session. It is not safe for concurrent use.
type Processor struct {
	cfg      *config.Config
	opts     Options
	mode     filter.Mode
	pipeline *filter.Pipeline

	out      io.Writer
	uploader storage.Uploader
	vendors  vendor.Lookup

	records []models.Record
	scrubs  []report.ScrubResult
	stats   *RunStats
}

// New builds a Processor. The deny list is loaded here when one is
// configured; the geofence is built when the config enables it.
func New(cfg *config.Config, opts Options, options ...Option) *Processor {
	p := &Processor{
		cfg:      cfg,
		opts:     opts,
		mode:     filter.ModeFromFlags(opts.Here, opts.NotHere),
		pipeline: &filter.Pipeline{},
		out:      io.Discard,
	}
	for _, o := range options {
		o(p)
	}

	if cfg.Filter.DenyList != "" {
		p.pipeline.DenyList = filter.LoadDenyList(cfg.Filter.DenyList)
	}
	if cfg.Geofence.Enabled {
		p.pipeline.Geofence = filter.NewGeofence(cfg.Geofence.Latitude, cfg.Geofence.Longitude, cfg.Geofence.Delta)
	}
	if p.mode != filter.ModeNone {
		checkGeofence(p.pipeline.Geofence, p.mode)
	}

	return p
}

// Run executes the session and returns what it did. A non-nil error means
// a scrubbed file could not be written or the context was cancelled.
func (p *Processor) Run(ctx context.Context) (*RunStats, error) {
	log := logging.Ctx(ctx)
	p.stats = &RunStats{StartTime: time.Now()}
	p.records = nil
	p.scrubs = nil
	defer func() {
		p.stats.EndTime = time.Now()
	}()

	files, err := p.resolveFiles()
	if err != nil {
		return p.stats, err
	}
	if len(files) == 0 {
		fmt.Fprintln(p.out, NoFilesMessage)
		return p.stats, nil
	}

	log.Debug().
		Int("files", len(files)).
		Bool("scrub", p.opts.Scrub).
		Bool("creeps", p.opts.Creeps).
		Bool("encryption", p.opts.Encryption).
		Str("mode", p.mode.String()).
		Msg("Starting session")

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return p.stats, err
		}
		if err := p.processFile(ctx, file); err != nil {
			return p.stats, err
		}
	}

	if p.opts.Creeps {
		if err := p.reportCreeps(ctx); err != nil {
			return p.stats, err
		}
	}

	if p.opts.Encryption {
		if err := p.reportEncryption(); err != nil {
			return p.stats, err
		}
	}

	if len(p.scrubs) > 1 {
		if err := report.WriteScrubSummary(p.out, p.scrubs); err != nil {
			return p.stats, fmt.Errorf("write scrub summary: %w", err)
		}
	}

	p.finish(ctx)
	return p.stats, nil
}

// resolveFiles applies the "*.csv" default.
func (p *Processor) resolveFiles() ([]string, error) {
	if len(p.opts.Files) > 0 || p.opts.Creeps || p.opts.Encryption {
		return p.opts.Files, nil
	}
	files, err := filepath.Glob("*.csv")
	if err != nil {
		return nil, fmt.Errorf("glob capture files: %w", err)
	}
	return files, nil
}

// processFile reads one input and scrubs it when requested.
func (p *Processor) processFile(ctx context.Context, file string) error {
	log := logging.Ctx(ctx)
	fmt.Fprintf(p.out, "Reading %s...\n", file)
	p.stats.Files++

	records, rs, err := wigle.ReadFileWithStats(file)
	metrics.RecordFile(err)
	metrics.RecordRows(rs.Parsed, rs.Skipped)
	p.stats.SkippedRows += rs.Skipped
	if err != nil {
		p.stats.FailedFiles++
		log.Warn().Err(err).Str("file", file).Msg("Could not read capture file, continuing")
		records = nil
	}
	p.stats.Records += len(records)
	p.records = append(p.records, records...)

	if !p.opts.Scrub {
		return nil
	}
	return p.scrub(ctx, file, records)
}

// scrub filters records, writes them under the output directory and
// uploads the result when an uploader is configured.
func (p *Processor) scrub(ctx context.Context, file string, records []models.Record) error {
	log := logging.Ctx(ctx)

	kept, fs := p.pipeline.Apply(records, p.mode)
	p.stats.Filter.Add(fs)
	metrics.RecordFiltered(string(filter.ReasonMAC), fs.DeniedMAC)
	metrics.RecordFiltered(string(filter.ReasonSSID), fs.DeniedSSID)
	metrics.RecordFiltered(string(filter.ReasonPattern), fs.DeniedPattern)
	metrics.RecordFiltered(string(filter.ReasonGeofence), fs.OutsideFence)

	output := filepath.Join(p.cfg.Scrub.OutputDir, file)
	if err := wigle.WriteFile(output, kept); err != nil {
		return fmt.Errorf("scrub %s: %w", file, err)
	}
	metrics.RecordsWritten.Add(float64(len(kept)))

	result := report.ScrubResult{Input: file, Output: output, Kept: fs.Kept, Total: fs.Total}
	p.scrubs = append(p.scrubs, result)
	if err := report.WriteScrubLine(p.out, result); err != nil {
		return fmt.Errorf("write scrub line: %w", err)
	}

	log.Debug().
		Str("file", file).
		Str("output", output).
		Int("kept", fs.Kept).
		Int("dropped", fs.Dropped()).
		Msg("Scrubbed capture")

	if p.uploader == nil {
		return nil
	}
	err := p.uploader.Upload(ctx, output, file)
	metrics.RecordUpload(err)
	if err != nil {
		log.Warn().Err(err).Str("file", output).Msg("Upload failed, scrubbed file kept locally")
		return nil
	}
	p.stats.Uploaded++
	return nil
}

func (p *Processor) reportCreeps(ctx context.Context) error {
	log := logging.Ctx(ctx)
	fmt.Fprintln(p.out, "\nFinding devices at multiple locations...")

	detector := detection.NewCreepDetector(p.cfg.Creeps.FudgeFactor)
	detector.AddRecords(p.records)
	devices := detector.MultiLocationDevices(p.cfg.Creeps.MinLocations)
	p.stats.CreepDevices = len(devices)

	log.Debug().
		Int("fudge_factor", detector.FudgeFactor()).
		Int("devices", detector.DeviceCount()).
		Int("sightings", detector.Sightings()).
		Int("creeps", len(devices)).
		Msg("Creep detection complete")

	opts := report.CreepOptions{
		Top:     p.cfg.Creeps.Top,
		Samples: p.cfg.Creeps.Samples,
		Vendors: p.vendors,
	}
	if p.cfg.Creeps.Verbose {
		opts.Locations = detector
	}
	err := report.WriteCreeps(p.out, devices, p.records, opts)
	if err != nil {
		return fmt.Errorf("write creep report: %w", err)
	}
	return nil
}

func (p *Processor) reportEncryption() error {
	fmt.Fprintln(p.out, "\nAnalyzing encryption types...")

	agg := encryption.NewAggregator()
	agg.AddRecords(p.records)
	p.stats.UniqueNetworks = agg.Unique()

	if err := report.WriteEncryption(p.out, agg.Sorted()); err != nil {
		return fmt.Errorf("write encryption report: %w", err)
	}
	return nil
}

// finish publishes run gauges and the metrics text file. Export failures
// are warnings.
func (p *Processor) finish(ctx context.Context) {
	log := logging.Ctx(ctx)

	if p.opts.Creeps {
		metrics.CreepDevices.Set(float64(p.stats.CreepDevices))
	}
	if p.opts.Encryption {
		metrics.UniqueNetworks.Set(float64(p.stats.UniqueNetworks))
	}
	metrics.RecordRun(p.stats.Duration())

	if path := p.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			log.Warn().Err(err).Msg("Could not write metrics file")
		}
	}

	log.Info().
		Int("files", p.stats.Files).
		Int("failed_files", p.stats.FailedFiles).
		Int("records", p.stats.Records).
		Int("skipped_rows", p.stats.SkippedRows).
		Int("kept", p.stats.Filter.Kept).
		Int("dropped", p.stats.Filter.Dropped()).
		Int("uploaded", p.stats.Uploaded).
		Dur("duration", p.stats.Duration()).
		Msg("Session complete")
}

// checkGeofence logs location settings that make a mode ineffective. They
// are never fatal: the box is built from the values as given.
func checkGeofence(g *filter.Geofence, mode filter.Mode) {
	if g == nil {
		logging.Warn().Str("mode", mode.String()).Msg("Location mode requested without --lat and --lon, ignoring it")
		return
	}
	lat, lon := g.Center()
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		logging.Warn().Float64("lat", lat).Float64("lon", lon).Msg("Geofence center is outside valid coordinates")
	}
	if g.Delta() < 0 {
		logging.Warn().Float64("delta", g.Delta()).Msg("Negative geofence delta matches no location")
	}
}
