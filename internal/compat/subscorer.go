// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package compat

import (
	"math"

	"github.com/tomtom215/mixgraph/internal/track"
)

// Sub-scorer names accepted in Config.Enabled.
const (
	NameHarmonic  = "harmonic"
	NameStylistic = "stylistic"
	NameTemporal  = "temporal"
	NameEnergy    = "energy"
	NameAppeal    = "appeal"
)

// Subscorer computes one independently optional part of the compatibility
// score. Score returns false when the data it needs is missing on either side.
type Subscorer interface {
	Name() string
	Score(a, b *Side) (float64, bool)
}

// Side is one end of a transition: a track with its normalized metadata and
// the values derived from them once per track.
type Side struct {
	Track track.Track
	Meta  track.Metadata

	key      CamelotKey
	keyOK    bool
	genre    string
	era      string
	language string
}

// NewSide prepares a track for repeated scoring.
func NewSide(t track.Track, m track.Metadata) *Side {
	s := &Side{
		Track: t,
		Meta:  m.Normalized(),
		genre: track.NormalizeLabel(t.Genre),
	}
	if k, err := ParseCamelotKey(t.Key); err == nil {
		s.key, s.keyOK = k, true
	}
	if s.Meta.Era != "" {
		s.era = CanonicalEra(s.Meta.Era)
	}
	if s.Meta.Language != "" {
		s.language = CanonicalLanguage(s.Meta.Language)
	}
	return s
}

// Energy compares danceability.
type Energy struct{}

// Name implements Subscorer.
func (Energy) Name() string { return NameEnergy }

// Score implements Subscorer.
func (Energy) Score(a, b *Side) (float64, bool) {
	da, okA := a.Meta.Danceability.Get()
	db, okB := b.Meta.Danceability.Get()
	if !okA || !okB {
		return 0, false
	}
	return 1 - math.Abs(da-db), true
}

// Appeal limits the score by the less crowd-pleasing track.
type Appeal struct{}

// Name implements Subscorer.
func (Appeal) Name() string { return NameAppeal }

// Score implements Subscorer.
func (Appeal) Score(a, b *Side) (float64, bool) {
	aa, okA := a.Meta.CrowdAppeal.Get()
	ab, okB := b.Meta.CrowdAppeal.Get()
	if !okA || !okB {
		return 0, false
	}
	return min(aa, ab), true
}

// registered lists every sub-scorer in scoring order.
var registered = []struct {
	scorer         Subscorer
	weight         float64
	transitionOnly float64
}{
	{Harmonic{}, 0.30, 0.30},
	{Stylistic{}, 0.25, 0.25},
	{Temporal{}, 0.20, 0.20},
	{Energy{}, 0.15, 0.20},
	{Appeal{}, 0.10, 0.10},
}

// Available returns the names of every known sub-scorer.
func Available() []string {
	names := make([]string, len(registered))
	for i, r := range registered {
		names[i] = r.scorer.Name()
	}
	return names
}
