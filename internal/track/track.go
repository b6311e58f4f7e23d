// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package track defines the read-only track and enrichment metadata values
// consumed by the compatibility scorer and the path optimizer.
//
// Values in this package are never mutated by the optimizer. Callers own them
// and must not modify them while an optimization is running.
package track

import (
	"strings"
)

// Track is an analysed audio track.
//
// Zero values for BPM, Energy and EmotionalIntensity, and an empty Key, mean
// the attribute has not been analysed and is treated as absent by scorers.
type Track struct {
	ID       string  `json:"id" validate:"required"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Filepath string  `json:"filepath,omitempty"`
	Duration float64 `json:"duration,omitempty" validate:"gte=0"`
	Genre    string  `json:"genre,omitempty"`

	// Key is the Camelot notation key, e.g. "8A".
	Key string  `json:"key,omitempty"`
	BPM float64 `json:"bpm,omitempty" validate:"gte=0"`

	// Energy and EmotionalIntensity are on a 1-10 scale.
	Energy             float64 `json:"energy,omitempty" validate:"gte=0,lte=10"`
	EmotionalIntensity float64 `json:"emotional_intensity,omitempty" validate:"gte=0,lte=10"`
}

// Equal reports whether two tracks share an identity.
func (t Track) Equal(other Track) bool {
	return t.ID == other.ID
}

// HasKey reports whether the track carries a key annotation.
func (t Track) HasKey() bool {
	return strings.TrimSpace(t.Key) != ""
}

// IDs returns the ids of the given tracks in order.
func IDs(tracks []Track) []string {
	ids := make([]string, len(tracks))
	for i := range tracks {
		ids[i] = tracks[i].ID
	}
	return ids
}
