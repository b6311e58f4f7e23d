// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package constraint

import (
	"math"

	"github.com/tomtom215/mixgraph/internal/compat"
)

// Built-in constraint names.
const (
	NameNoDuplicates      = "no_duplicates"
	NameMinCompatibility  = "min_compatibility"
	NameEnergyFlow        = "energy_flow"
	NameCulturalCoherence = "cultural_coherence"
)

// DefaultMinCompatibility is the min_compatibility threshold used when none
// is configured.
const DefaultMinCompatibility = 0.3

const (
	energyJumpThreshold = 0.3
	maxLanguages        = 3
	maxEras             = 4
)

// Defaults returns the four built-in constraints. A non-positive threshold
// selects DefaultMinCompatibility.
func Defaults(minCompatibility float64) Set {
	if minCompatibility <= 0 {
		minCompatibility = DefaultMinCompatibility
	}
	return Set{
		NoDuplicates(),
		MinCompatibility(minCompatibility),
		EnergyFlow(),
		CulturalCoherence(),
	}
}

// NoDuplicates requires every track id in the path to be distinct.
func NoDuplicates() Constraint {
	return New(NameNoDuplicates, Hard, 10.0, func(p Path) (bool, error) {
		seen := make(map[string]struct{}, p.Len())
		for i := 0; i < p.Len(); i++ {
			id := p.Track(i).ID
			if _, dup := seen[id]; dup {
				return false, nil
			}
			seen[id] = struct{}{}
		}
		return true, nil
	})
}

// MinCompatibility requires every adjacent transition to score at least
// threshold.
func MinCompatibility(threshold float64) Constraint {
	return New(NameMinCompatibility, Soft, 2.0, func(p Path) (bool, error) {
		for i := 0; i+1 < p.Len(); i++ {
			if p.Compatibility(i) < threshold {
				return false, nil
			}
		}
		return true, nil
	})
}

// EnergyFlow allows at most len/3 danceability jumps above 0.3. Pairs with
// missing danceability never count as a jump.
func EnergyFlow() Constraint {
	return New(NameEnergyFlow, Soft, 1.5, func(p Path) (bool, error) {
		n := p.Len()
		if n < 3 {
			return true, nil
		}
		jumps := 0
		for i := 0; i+1 < n; i++ {
			a, okA := p.Metadata(i).Danceability.Get()
			b, okB := p.Metadata(i + 1).Danceability.Get()
			if okA && okB && math.Abs(a-b) > energyJumpThreshold {
				jumps++
			}
		}
		return jumps <= n/3, nil
	})
}

// CulturalCoherence allows at most 3 distinct languages and 4 distinct eras.
// Aliases such as "80s" and "1980s" count once.
func CulturalCoherence() Constraint {
	return New(NameCulturalCoherence, Preference, 0.5, func(p Path) (bool, error) {
		languages := make(map[string]struct{})
		eras := make(map[string]struct{})
		for i := 0; i < p.Len(); i++ {
			m := p.Metadata(i)
			if m.Language != "" {
				languages[compat.CanonicalLanguage(m.Language)] = struct{}{}
			}
			if m.Era != "" {
				eras[compat.CanonicalEra(m.Era)] = struct{}{}
			}
		}
		return len(languages) <= maxLanguages && len(eras) <= maxEras, nil
	})
}
