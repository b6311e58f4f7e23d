// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"fmt"
	"slices"

	"github.com/tomtom215/mixgraph/internal/compat"
	"github.com/tomtom215/mixgraph/internal/constraint"
)

// Config contains the search knobs shared by every optimization.
type Config struct {
	// MaxNodesToExplore bounds the number of frontier pops per search.
	MaxNodesToExplore int `json:"max_nodes_to_explore" koanf:"max_nodes_to_explore"`

	// BeamWidth limits the successors kept per expansion.
	BeamWidth int `json:"beam_search_width" koanf:"beam_search_width"`

	// EarlyTerminationThreshold stops the search as soon as a complete path
	// costs no more than this.
	EarlyTerminationThreshold float64 `json:"early_termination_threshold" koanf:"early_termination_threshold"`

	// MinCompatibility is the threshold of the built-in min_compatibility
	// constraint.
	MinCompatibility float64 `json:"min_compatibility" koanf:"min_compatibility"`

	// MaxAlternatives caps Request.MaxAlternatives.
	MaxAlternatives int `json:"max_alternatives" koanf:"max_alternatives"`

	// Scoring selects the compatibility sub-scorers.
	Scoring compat.Config `json:"scoring" koanf:"scoring"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxNodesToExplore:         10000,
		BeamWidth:                 50,
		EarlyTerminationThreshold: 0.95,
		MinCompatibility:          constraint.DefaultMinCompatibility,
		MaxAlternatives:           5,
		Scoring:                   compat.DefaultConfig(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxNodesToExplore < 1 {
		return fmt.Errorf("max_nodes_to_explore must be positive, got %d", c.MaxNodesToExplore)
	}
	if c.BeamWidth < 1 {
		return fmt.Errorf("beam_search_width must be positive, got %d", c.BeamWidth)
	}
	if c.EarlyTerminationThreshold < 0 {
		return fmt.Errorf("early_termination_threshold must be non-negative, got %f", c.EarlyTerminationThreshold)
	}
	if c.MinCompatibility < 0 || c.MinCompatibility > 1 {
		return fmt.Errorf("min_compatibility must be in [0, 1], got %f", c.MinCompatibility)
	}
	if c.MaxAlternatives < 0 {
		return fmt.Errorf("max_alternatives must be non-negative, got %d", c.MaxAlternatives)
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring.enabled: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Scoring.Enabled = slices.Clone(c.Scoring.Enabled)
	return &clone
}

// SearchOptions overrides Config knobs for a single request. Zero fields
// keep the configured value.
type SearchOptions struct {
	MaxNodesToExplore         int      `json:"max_nodes_to_explore,omitempty" validate:"omitempty,gte=1"`
	BeamWidth                 int      `json:"beam_search_width,omitempty" validate:"omitempty,gte=1"`
	EarlyTerminationThreshold *float64 `json:"early_termination_threshold,omitempty" validate:"omitempty,gte=0"`
}

type searchParams struct {
	maxNodes  int
	beamWidth int
	threshold float64
}

func (c *Config) resolve(o *SearchOptions) searchParams {
	p := searchParams{
		maxNodes:  c.MaxNodesToExplore,
		beamWidth: c.BeamWidth,
		threshold: c.EarlyTerminationThreshold,
	}
	if o == nil {
		return p
	}
	if o.MaxNodesToExplore > 0 {
		p.maxNodes = o.MaxNodesToExplore
	}
	if o.BeamWidth > 0 {
		p.beamWidth = o.BeamWidth
	}
	if o.EarlyTerminationThreshold != nil {
		p.threshold = *o.EarlyTerminationThreshold
	}
	return p
}
