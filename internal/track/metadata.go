// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package track

import (
	"math"

	"github.com/goccy/go-json"
)

// Percent is a normalized [0,1] fraction that may be absent.
//
// It decodes from a JSON number, a numeric string (optionally with a
// trailing "%"), the placeholder "-", or null. Absent values encode as null.
type Percent struct {
	Value float64
	Valid bool
}

// Pct returns a present percentage after normalization.
func Pct(v float64) Percent {
	n, ok := NormalizePercent(v)
	return Percent{Value: n, Valid: ok}
}

// Get returns the value and whether it is present.
func (p Percent) Get() (float64, bool) {
	return p.Value, p.Valid
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Percent) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Value, p.Valid = NormalizePercent(raw)
	if !p.Valid {
		p.Value = 0
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid || math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// Metadata is the optional enrichment bag for a single track. Any field may
// be empty or invalid, in which case scorers skip it.
type Metadata struct {
	Mood         string  `json:"mood,omitempty"`
	Activity     string  `json:"activity,omitempty"`
	TimeOfDay    string  `json:"time_of_day,omitempty"`
	Era          string  `json:"era,omitempty"`
	Language     string  `json:"language,omitempty"`
	Subgenre     string  `json:"subgenre,omitempty"`
	Danceability Percent `json:"danceability"`
	CrowdAppeal  Percent `json:"crowd_appeal"`
}

// Normalized returns a copy with every label lower-cased and trimmed, and the
// "-" placeholder cleared.
func (m Metadata) Normalized() Metadata {
	return Metadata{
		Mood:         NormalizeLabel(m.Mood),
		Activity:     NormalizeLabel(m.Activity),
		TimeOfDay:    NormalizeLabel(m.TimeOfDay),
		Era:          NormalizeLabel(m.Era),
		Language:     NormalizeLabel(m.Language),
		Subgenre:     NormalizeLabel(m.Subgenre),
		Danceability: normalizedPercent(m.Danceability),
		CrowdAppeal:  normalizedPercent(m.CrowdAppeal),
	}
}

func normalizedPercent(p Percent) Percent {
	if !p.Valid {
		return Percent{}
	}
	v, ok := NormalizePercent(p.Value)
	return Percent{Value: v, Valid: ok}
}

// MetadataSet maps track ids to their metadata. Tracks without an entry have
// no enrichment.
type MetadataSet map[string]Metadata

// Lookup returns the metadata for id, or the zero Metadata when missing.
func (s MetadataSet) Lookup(id string) Metadata {
	if s == nil {
		return Metadata{}
	}
	return s[id]
}

// Normalized returns a copy of the set with every entry normalized.
func (s MetadataSet) Normalized() MetadataSet {
	out := make(MetadataSet, len(s))
	for id, m := range s {
		out[id] = m.Normalized()
	}
	return out
}
