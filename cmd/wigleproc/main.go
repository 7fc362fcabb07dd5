// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomtom215/wigleproc/internal/config"
	"github.com/tomtom215/wigleproc/internal/filter"
	"github.com/tomtom215/wigleproc/internal/logging"
	"github.com/tomtom215/wigleproc/internal/processor"
	"github.com/tomtom215/wigleproc/internal/storage"
	"github.com/tomtom215/wigleproc/internal/vendor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Error().Err(err).Msg("wigleproc failed")
		stop()
		os.Exit(1)
	}
}

// flagOverrides maps flag names to koanf paths. Only flags set on the
// command line are applied, so unset flags never mask file or env values.
var flagOverrides = map[string]string{
	"output-dir":     "scrub.output_dir",
	"config":         "filter.deny_list",
	"lat":            "geofence.latitude",
	"lon":            "geofence.longitude",
	"delta":          "geofence.delta",
	"oui-db":         "creeps.oui_database",
	"verbose-creeps": "creeps.verbose",
	"metrics-file":   "metrics.textfile",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wigleproc [flags] [files...]",
		Short: "Scrub and analyze WiGLE wardriving captures",
		Long: `wigleproc scrubs WiGLE CSV exports against a deny list and a geofence,
finds devices seen at multiple locations, and summarizes network encryption.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.Bool("scrub", false, "write filtered copies of the inputs to --output-dir")
	f.Bool("creeps", false, "find devices seen at multiple locations")
	f.Bool("encryption", false, "analyze encryption types")
	f.Bool("here", false, "keep only records within --delta of --lat/--lon")
	f.Bool("not-here", false, "keep only records outside --delta of --lat/--lon")
	f.Float64("lat", 0, "geofence center latitude")
	f.Float64("lon", 0, "geofence center longitude")
	f.Float64("delta", filter.DefaultDelta, "geofence half-width in degrees")
	f.String("config", "", "deny list JSON file")
	f.String("create-config", "", "write a sample deny list to `PATH` and exit")
	f.String("output-dir", "./Scrub", "directory for scrubbed files")
	f.String("settings", "", "YAML settings `PATH`")
	f.String("log-level", "", "log level: trace, debug, info, warn, error")
	f.String("log-format", "", "log format: console or json")
	f.String("oui-db", "", "IEEE oui.txt `PATH` for vendor names in the creep report")
	f.Bool("verbose-creeps", false, "list every location bucket in the creep report")
	f.String("metrics-file", "", "write Prometheus metrics to `PATH` after the run")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	out := cmd.OutOrStdout()

	if path, _ := flags.GetString("create-config"); path != "" {
		if err := filter.WriteSampleConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Sample configuration created: %s\n", path)
		return nil
	}

	if err := config.LoadDotEnv(config.DefaultDotEnvPath); err != nil {
		logging.Warn().Err(err).Msg("Could not load .env file")
	}

	settings, _ := flags.GetString("settings")
	cfg, err := config.Load(settings, overridesFromFlags(flags))
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})

	ctx := logging.ContextWithNewRunID(cmd.Context())
	log := logging.Ctx(ctx)

	opts := processor.Options{Files: args}
	opts.Scrub, _ = flags.GetBool("scrub")
	opts.Creeps, _ = flags.GetBool("creeps")
	opts.Encryption, _ = flags.GetBool("encryption")
	opts.Here, _ = flags.GetBool("here")
	opts.NotHere, _ = flags.GetBool("not-here")

	options := []processor.Option{processor.WithOutput(out)}

	if cfg.Creeps.OUIDatabase != "" && opts.Creeps {
		db, err := vendor.Open(cfg.Creeps.OUIDatabase)
		if err != nil {
			log.Warn().Err(err).Msg("Vendor lookup disabled")
		} else {
			options = append(options, processor.WithVendors(vendor.NewCached(db, vendor.DefaultCacheSize)))
		}
	}

	if cfg.Storage.Enabled && opts.Scrub {
		if up := newUploader(ctx, cfg.Storage); up != nil {
			options = append(options, processor.WithUploader(up))
		}
	}

	_, err = processor.New(cfg, opts, options...).Run(ctx)
	return err
}

// overridesFromFlags returns koanf overrides for every flag set on the
// command line. The geofence is enabled only when both coordinates were
// given.
func overridesFromFlags(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagOverrides[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "float64":
			v, _ := flags.GetFloat64(f.Name)
			overrides[key] = v
		case "bool":
			v, _ := flags.GetBool(f.Name)
			overrides[key] = v
		default:
			overrides[key] = f.Value.String()
		}
	})

	if flags.Changed("lat") && flags.Changed("lon") {
		overrides["geofence.enabled"] = true
	}
	return overrides
}

// newUploader connects to object storage. Failures disable uploads for the
// run instead of failing it.
func newUploader(ctx context.Context, cfg config.StorageConfig) storage.Uploader {
	log := logging.Ctx(ctx)

	up, err := storage.NewS3Uploader(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Uploads disabled")
		return nil
	}
	if err := up.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("Uploads disabled")
		return nil
	}
	return up
}
