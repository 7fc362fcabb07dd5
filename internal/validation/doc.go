// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package validation provides struct validation using go-playground/validator v10.
//
// It holds a thread-safe singleton validator and turns validator field
// errors into short messages keyed by the koanf/YAML name of the field, so
// an operator sees "geofence.delta must be greater than 0" rather than a Go
// struct path.
//
// # Usage
//
//	type GeofenceConfig struct {
//	    Latitude float64 `koanf:"latitude" validate:"latitude"`
//	    Delta    float64 `koanf:"delta" validate:"gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&cfg); verr != nil {
//	    return fmt.Errorf("invalid settings: %w", verr)
//	}
//
// # Custom Validators
//
//   - s3bucket: S3 bucket naming rules (3-63 chars, lowercase, digits, dots, hyphens)
//
// ValidateStruct returns a concrete *Errors. Compare it with nil before
// converting it to error, otherwise a typed nil leaks into the error
// interface.
package validation
