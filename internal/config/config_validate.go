// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package config

import (
	"errors"

	"github.com/tomtom215/wigleproc/internal/validation"
)

// Validate checks field formats and the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	return c.validateStorage()
}

// validateStorage requires connection details only when upload is enabled.
func (c *Config) validateStorage() error {
	if !c.Storage.Enabled {
		return nil
	}

	var missing []error
	if c.Storage.Endpoint == "" {
		missing = append(missing, errors.New("WIGLE_STORAGE_ENDPOINT is required when storage is enabled"))
	}
	if c.Storage.Bucket == "" {
		missing = append(missing, errors.New("WIGLE_STORAGE_BUCKET is required when storage is enabled"))
	}
	if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
		missing = append(missing, errors.New("WIGLE_STORAGE_ACCESS_KEY and WIGLE_STORAGE_SECRET_KEY are required when storage is enabled"))
	}
	return errors.Join(missing...)
}
