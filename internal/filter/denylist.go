// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

package filter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wigleproc/internal/logging"
	"github.com/tomtom215/wigleproc/internal/models"
)

// Reason identifies which rule dropped a record.
type Reason string

// Drop reasons.
const (
	ReasonNone     Reason = ""
	ReasonMAC      Reason = "mac"
	ReasonSSID     Reason = "ssid"
	ReasonPattern  Reason = "pattern"
	ReasonGeofence Reason = "geofence"
)

// DenyListFile is the on-disk JSON layout of a deny list.
type DenyListFile struct {
	BlockedMACs     []string `json:"blocked_macs"`
	BlockedSSIDs    []string `json:"blocked_ssids"`
	BlockedPatterns []string `json:"blocked_patterns"`
}

// DenyList holds the MAC, SSID and pattern rules. The zero value blocks
// nothing. A DenyList is read-only after construction.
type DenyList struct {
	macs     map[string]struct{}
	ssids    map[string]struct{}
	patterns []*regexp.Regexp
	invalid  []string
}

// NewDenyList builds a deny list. MACs are upper-cased. Patterns that fail
// to compile are logged, skipped, and reported by InvalidPatterns.
func NewDenyList(macs, ssids, patterns []string) *DenyList {
	log := logging.WithComponent("denylist")
	d := &DenyList{
		macs:     make(map[string]struct{}, len(macs)),
		ssids:    make(map[string]struct{}, len(ssids)),
		patterns: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, mac := range macs {
		d.macs[strings.ToUpper(mac)] = struct{}{}
	}
	for _, ssid := range ssids {
		d.ssids[ssid] = struct{}{}
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			log.Warn().Err(err).Str("pattern", p).Msg("Invalid regex pattern in deny list, skipping")
			d.invalid = append(d.invalid, p)
			continue
		}
		d.patterns = append(d.patterns, re)
	}
	return d
}

// ParseDenyList decodes a deny-list JSON document. Missing keys are empty.
func ParseDenyList(data []byte) (*DenyList, error) {
	var f DenyListFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode deny list: %w", err)
	}
	return NewDenyList(f.BlockedMACs, f.BlockedSSIDs, f.BlockedPatterns), nil
}

// LoadDenyList reads a deny list from path. A missing or invalid file is
// logged and yields an empty deny list.
func LoadDenyList(path string) *DenyList {
	log := logging.WithComponent("denylist")

	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied config path
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not load deny list, filtering nothing")
		return &DenyList{}
	}

	d, err := ParseDenyList(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not load deny list, filtering nothing")
		return &DenyList{}
	}

	log.Debug().
		Str("path", path).
		Int("macs", len(d.macs)).
		Int("ssids", len(d.ssids)).
		Int("patterns", len(d.patterns)).
		Msg("Loaded deny list")
	return d
}

// Match returns the first rule that matches r, or ReasonNone.
// MACs are checked first, then SSIDs, then patterns in load order.
func (d *DenyList) Match(r *models.Record) Reason {
	if d == nil {
		return ReasonNone
	}
	if _, ok := d.macs[strings.ToUpper(r.MAC)]; ok {
		return ReasonMAC
	}
	if _, ok := d.ssids[r.SSID]; ok {
		return ReasonSSID
	}
	for _, re := range d.patterns {
		if re.MatchString(r.SSID) || re.MatchString(r.MAC) {
			return ReasonPattern
		}
	}
	return ReasonNone
}

// ShouldFilter reports whether r must be dropped.
func (d *DenyList) ShouldFilter(r *models.Record) bool {
	return d.Match(r) != ReasonNone
}

// Len returns the number of active rules.
func (d *DenyList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.macs) + len(d.ssids) + len(d.patterns)
}

// InvalidPatterns returns the patterns that were skipped at load time.
func (d *DenyList) InvalidPatterns() []string {
	if d == nil {
		return nil
	}
	return d.invalid
}
