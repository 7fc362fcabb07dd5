// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

// Package encryption tallies the auth modes of the networks in a session.
//
// Networks are deduplicated by MAC and SSID before counting, so a network
// seen a thousand times on a drive counts once.
package encryption

import (
	"sort"

	"github.com/tomtom215/wigleproc/internal/models"
)

// Stat is the share of one auth mode among unique networks.
type Stat struct {
	AuthMode   string  `json:"auth_mode"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Total      int     `json:"total"`
}

// Aggregator counts auth modes over unique (MAC, SSID) pairs. It is not
// safe for concurrent use.
type Aggregator struct {
	seen   map[string]struct{}
	counts map[string]int
	order  []string // auth modes in first-seen order
	total  int
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		seen:   make(map[string]struct{}),
		counts: make(map[string]int),
	}
}

// AddRecord counts r unless its network was already seen.
func (a *Aggregator) AddRecord(r *models.Record) {
	key := r.Identity()
	if _, dup := a.seen[key]; dup {
		return
	}
	a.seen[key] = struct{}{}

	if _, ok := a.counts[r.AuthMode]; !ok {
		a.order = append(a.order, r.AuthMode)
	}
	a.counts[r.AuthMode]++
	a.total++
}

// AddRecords counts every record in records.
func (a *Aggregator) AddRecords(records []models.Record) {
	for i := range records {
		a.AddRecord(&records[i])
	}
}

// Unique returns the number of distinct networks counted.
func (a *Aggregator) Unique() int {
	return a.total
}

// Stats returns per-auth-mode counts and percentages. It is empty when no
// records were added.
func (a *Aggregator) Stats() map[string]Stat {
	stats := make(map[string]Stat, len(a.counts))
	if a.total == 0 {
		return stats
	}
	for mode, count := range a.counts {
		stats[mode] = a.stat(mode, count)
	}
	return stats
}

// Sorted returns Stats ordered by count, descending. Equal counts keep the
// order in which the auth modes were first seen.
func (a *Aggregator) Sorted() []Stat {
	out := make([]Stat, 0, len(a.order))
	if a.total == 0 {
		return out
	}
	for _, mode := range a.order {
		out = append(out, a.stat(mode, a.counts[mode]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func (a *Aggregator) stat(mode string, count int) Stat {
	return Stat{
		AuthMode:   mode,
		Count:      count,
		Percentage: 100 * float64(count) / float64(a.total),
		Total:      a.total,
	}
}
