// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package compat scores how well two tracks mix back to back.
//
// The score is a weighted blend of independent sub-scores (harmonic,
// stylistic, temporal, energy and crowd appeal). A sub-score whose data is
// missing on either side is dropped and the remaining weights are
// renormalized. When nothing is computable the neutral score is returned.
package compat

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/mixgraph/internal/track"
)

// Neutral is returned when no sub-score can be computed.
const Neutral = 0.5

// ErrUnknownSubscorer is returned for an unrecognized sub-scorer name.
var ErrUnknownSubscorer = errors.New("unknown sub-scorer")

// Config selects the active sub-scorers.
type Config struct {
	// Enabled lists sub-scorer names. Empty enables all of them.
	Enabled []string `json:"enabled" koanf:"enabled"`

	// TransitionOnly raises the danceability weight from 0.15 to 0.20.
	TransitionOnly bool `json:"transition_only" koanf:"transition_only"`
}

// DefaultConfig enables every sub-scorer.
func DefaultConfig() Config {
	return Config{Enabled: Available()}
}

type weighted struct {
	scorer Subscorer
	weight float64
}

// Scorer blends the active sub-scorers. It is immutable and safe for
// concurrent use.
type Scorer struct {
	active []weighted
}

// NormalizeName returns the canonical form of a sub-scorer name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate checks that every enabled name is a known sub-scorer.
func (c Config) Validate() error {
	for _, name := range c.Enabled {
		if !slices.Contains(Available(), NormalizeName(name)) {
			return fmt.Errorf("%w: %q", ErrUnknownSubscorer, name)
		}
	}
	return nil
}

// NewScorer builds a scorer from cfg.
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	enabled := make(map[string]bool, len(cfg.Enabled))
	for _, name := range cfg.Enabled {
		enabled[NormalizeName(name)] = true
	}

	s := &Scorer{}
	for _, r := range registered {
		if len(enabled) > 0 && !enabled[r.scorer.Name()] {
			continue
		}
		w := r.weight
		if cfg.TransitionOnly {
			w = r.transitionOnly
		}
		s.active = append(s.active, weighted{scorer: r.scorer, weight: w})
	}
	return s, nil
}

// Default returns a scorer with every sub-scorer enabled.
func Default() *Scorer {
	s, _ := NewScorer(DefaultConfig()) //nolint:errcheck // default names are always valid
	return s
}

// Names returns the active sub-scorer names in scoring order.
func (s *Scorer) Names() []string {
	names := make([]string, len(s.active))
	for i, w := range s.active {
		names[i] = w.scorer.Name()
	}
	return names
}

// Score returns the compatibility of playing b after a, in [0,1].
func (s *Scorer) Score(a track.Track, ma track.Metadata, b track.Track, mb track.Metadata) float64 {
	return s.ScoreSides(NewSide(a, ma), NewSide(b, mb))
}

// ScoreSides scores two prepared sides.
func (s *Scorer) ScoreSides(a, b *Side) float64 {
	var sum, weights float64
	for _, w := range s.active {
		v, ok := w.scorer.Score(a, b)
		if !ok {
			continue
		}
		sum += clamp(v) * w.weight
		weights += w.weight
	}
	if weights == 0 {
		return Neutral
	}
	return clamp(sum / weights)
}

func clamp(v float64) float64 {
	return max(0, min(1, v))
}
