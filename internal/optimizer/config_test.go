// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxNodesToExplore != 10000 {
		t.Errorf("MaxNodesToExplore = %d, want 10000", cfg.MaxNodesToExplore)
	}
	if cfg.BeamWidth != 50 {
		t.Errorf("BeamWidth = %d, want 50", cfg.BeamWidth)
	}
	if cfg.EarlyTerminationThreshold != 0.95 {
		t.Errorf("EarlyTerminationThreshold = %f, want 0.95", cfg.EarlyTerminationThreshold)
	}
	if cfg.MinCompatibility != 0.3 {
		t.Errorf("MinCompatibility = %f, want 0.3", cfg.MinCompatibility)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:      "valid default config",
			modify:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "zero max nodes",
			modify:    func(c *Config) { c.MaxNodesToExplore = 0 },
			wantError: true,
		},
		{
			name:      "zero beam width",
			modify:    func(c *Config) { c.BeamWidth = 0 },
			wantError: true,
		},
		{
			name:      "negative threshold",
			modify:    func(c *Config) { c.EarlyTerminationThreshold = -0.1 },
			wantError: true,
		},
		{
			name:      "zero threshold",
			modify:    func(c *Config) { c.EarlyTerminationThreshold = 0 },
			wantError: false,
		},
		{
			name:      "min compatibility above 1",
			modify:    func(c *Config) { c.MinCompatibility = 1.2 },
			wantError: true,
		},
		{
			name:      "negative alternatives",
			modify:    func(c *Config) { c.MaxAlternatives = -1 },
			wantError: true,
		},
		{
			name:      "unknown sub-scorer",
			modify:    func(c *Config) { c.Scoring.Enabled = []string{"harmonic", "vibes"} },
			wantError: true,
		},
		{
			name:      "sub-scorer names are trimmed and lower-cased",
			modify:    func(c *Config) { c.Scoring.Enabled = []string{" Harmonic", "TEMPORAL "} },
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	original := DefaultConfig()
	original.Scoring.Enabled = []string{"harmonic", "temporal"}

	clone := original.Clone()
	clone.BeamWidth = 3
	clone.Scoring.Enabled[0] = "energy"

	if original.BeamWidth == 3 {
		t.Error("modifying clone affected original BeamWidth")
	}
	if original.Scoring.Enabled[0] != "harmonic" {
		t.Error("modifying clone affected original Scoring.Enabled")
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := DefaultConfig()

	p := cfg.resolve(nil)
	if p.maxNodes != 10000 || p.beamWidth != 50 || p.threshold != 0.95 {
		t.Errorf("resolve(nil) = %+v", p)
	}

	zero := 0.0
	p = cfg.resolve(&SearchOptions{BeamWidth: 5, EarlyTerminationThreshold: &zero})
	if p.maxNodes != 10000 || p.beamWidth != 5 || p.threshold != 0 {
		t.Errorf("resolve(overrides) = %+v", p)
	}
}

func TestConfig_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"max_nodes_to_explore", "beam_search_width", "early_termination_threshold", "scoring"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("marshaled config missing %q", key)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{Searching, "searching"},
		{GoalFound, "goal_found"},
		{BudgetExhausted, "budget_exhausted"},
		{FrontierExhausted, "frontier_exhausted"},
		{ReturnBest, "return_best"},
		{FallbackGreedy, "fallback_greedy"},
		{Outcome(42), "outcome(42)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.o), got, tt.want)
		}
		text, _ := tt.o.MarshalText()
		if string(text) != tt.want {
			t.Errorf("Outcome(%d).MarshalText() = %q, want %q", int(tt.o), text, tt.want)
		}
	}
}
