// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package filter

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// SampleDenyList is the starter deny list written by --create-config.
func SampleDenyList() DenyListFile {
	return DenyListFile{
		BlockedMACs: []string{
			"FF:FF:FF:FF:FF:FF",
			"aa:bb:cc:dd:ee:ff",
		},
		BlockedSSIDs: []string{
			"myssid",
			"wardriver.uk",
		},
		BlockedPatterns: []string{
			"MyCompany.*",
			".*test.*",
		},
	}
}

// WriteSampleConfig writes SampleDenyList to path as indented JSON,
// replacing any existing file.
func WriteSampleConfig(path string) error {
	data, err := json.MarshalIndent(SampleDenyList(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode sample deny list: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file is meant to be readable
		return fmt.Errorf("write sample deny list %s: %w", path, err)
	}
	return nil
}
