// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Objective names a preset weighting of the optimization dimensions.
type Objective string

// Objective presets.
const (
	ObjectiveBalanced        Objective = "balanced"
	ObjectiveCompatibility   Objective = "compatibility"
	ObjectiveNarrative       Objective = "narrative"
	ObjectiveEnergyFlow      Objective = "energy_flow"
	ObjectiveCulturalJourney Objective = "cultural_journey"
)

// Weight keys read by the edge cost.
const (
	WeightCompatibility      = "compatibility"
	WeightPositionOptimality = "position_optimality"
	WeightDiversity          = "diversity"
)

// Defaults for weight keys a preset does not define.
const (
	defaultCompatibilityWeight = 0.4
	defaultPositionWeight      = 0.3
	defaultDiversityWeight     = 0.3
)

var presets = map[Objective]Weights{
	ObjectiveBalanced: {
		"compatibility": 0.25,
		"narrative":     0.25,
		"energy":        0.25,
		"cultural":      0.25,
	},
	ObjectiveCompatibility: {
		"harmonic":   0.3,
		"stylistic":  0.25,
		"contextual": 0.2,
		"structural": 0.15,
		"temporal":   0.1,
	},
	ObjectiveNarrative: {
		"temporal_coherence": 0.4,
		"cultural_coherence": 0.3,
		"emotional_arc":      0.2,
		"diversity":          0.1,
	},
	ObjectiveEnergyFlow: {
		"energy_progression": 0.5,
		"danceability_flow":  0.3,
		"crowd_appeal":       0.2,
	},
	ObjectiveCulturalJourney: {
		"linguistic_coherence": 0.4,
		"era_progression":      0.35,
		"cultural_bridges":     0.25,
	},
}

// ParseObjective parses a preset name. Empty selects balanced.
func ParseObjective(s string) (Objective, error) {
	o := Objective(strings.ToLower(strings.TrimSpace(s)))
	if o == "" {
		return ObjectiveBalanced, nil
	}
	if _, ok := presets[o]; !ok {
		return "", fmt.Errorf("unknown objective %q", s)
	}
	return o, nil
}

// Objectives lists every preset name, sorted.
func Objectives() []string {
	out := make([]string, 0, len(presets))
	for o := range presets {
		out = append(out, string(o))
	}
	sort.Strings(out)
	return out
}

// Weights returns a copy of the preset's weights, or balanced for an
// unknown objective.
func (o Objective) Weights() Weights {
	w, ok := presets[o]
	if !ok {
		w = presets[ObjectiveBalanced]
	}
	return maps.Clone(w)
}

// Weights maps a dimension name to its weight.
type Weights map[string]float64

// Get returns the weight for key, or def when the key is absent.
func (w Weights) Get(key string, def float64) float64 {
	if v, ok := w[key]; ok {
		return v
	}
	return def
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	for k, v := range w {
		if v < 0 {
			return fmt.Errorf("weight %q must be non-negative, got %f", k, v)
		}
	}
	return nil
}

type edgeWeights struct {
	compatibility float64
	position      float64
	diversity     float64
}

func (w Weights) edge() edgeWeights {
	return edgeWeights{
		compatibility: w.Get(WeightCompatibility, defaultCompatibilityWeight),
		position:      w.Get(WeightPositionOptimality, defaultPositionWeight),
		diversity:     w.Get(WeightDiversity, defaultDiversityWeight),
	}
}
