// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when no settings file is given.
var DefaultConfigPaths = []string{
	"wigleproc.yaml",
	"wigleproc.yml",
	"/etc/wigleproc/config.yaml",
}

// Environment variables that control loading itself.
const (
	EnvPrefix         = "WIGLE_"
	ConfigPathEnvVar  = "WIGLE_SETTINGS"
	DefaultDotEnvPath = ".env"
)

// Default returns the built-in settings with no layers applied.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Scrub: ScrubConfig{
			OutputDir: "./Scrub",
		},
		Filter: FilterConfig{
			DenyList: "",
		},
		Geofence: GeofenceConfig{
			Enabled:   false,
			Latitude:  0,
			Longitude: 0,
			Delta:     0.001,
		},
		Creeps: CreepsConfig{
			FudgeFactor:  100,
			MinLocations: 2,
			Top:          10,
			Samples:      3,
			OUIDatabase:  "",
			Verbose:      false,
		},
		Storage: StorageConfig{
			Enabled: false,
			Prefix:  "scrubbed",
			UseSSL:  true,
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load builds the configuration from defaults, the settings file at path
// (or a discovered one when path is empty), WIGLE_ environment variables,
// and finally overrides, keyed by koanf path ("geofence.delta").
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: settings file (optional unless named explicitly)
	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
	}

	// Layer 3: environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Layer 4: command-line flags
	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first settings file found, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased variable names, without the WIGLE_ prefix,
// to koanf paths.
var envMappings = map[string]string{
	"output_dir": "scrub.output_dir",

	"deny_list": "filter.deny_list",

	"geofence_enabled": "geofence.enabled",
	"latitude":         "geofence.latitude",
	"longitude":        "geofence.longitude",
	"delta":            "geofence.delta",

	"fudge_factor":   "creeps.fudge_factor",
	"min_locations":  "creeps.min_locations",
	"creeps_top":     "creeps.top",
	"creeps_samples": "creeps.samples",
	"oui_database":   "creeps.oui_database",
	"creeps_verbose": "creeps.verbose",

	"storage_enabled":    "storage.enabled",
	"storage_endpoint":   "storage.endpoint",
	"storage_access_key": "storage.access_key",
	"storage_secret_key": "storage.secret_key",
	"storage_bucket":     "storage.bucket",
	"storage_prefix":     "storage.prefix",
	"storage_use_ssl":    "storage.use_ssl",
	"storage_region":     "storage.region",

	"metrics_textfile": "metrics.textfile",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps WIGLE_* variable names to koanf paths. Unknown
// variables are ignored.
//
// Examples:
//   - WIGLE_OUTPUT_DIR -> scrub.output_dir
//   - WIGLE_STORAGE_BUCKET -> storage.bucket
//   - WIGLE_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}
