// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package compat

import "math"

// Blend weights inside the harmonic sub-score.
const (
	harmonicKeyWeight       = 0.4
	harmonicBPMWeight       = 0.3
	harmonicEnergyWeight    = 0.2
	harmonicEmotionalWeight = 0.1
)

// Harmonic scores key, tempo, energy and emotional-intensity compatibility.
// Each part is used only when both tracks carry it.
type Harmonic struct{}

// Name implements Subscorer.
func (Harmonic) Name() string { return NameHarmonic }

// Score implements Subscorer.
func (Harmonic) Score(a, b *Side) (float64, bool) {
	var sum, weights float64

	if a.keyOK && b.keyOK {
		sum += KeyScore(a.key, b.key) * harmonicKeyWeight
		weights += harmonicKeyWeight
	}
	if a.Track.BPM > 0 && b.Track.BPM > 0 {
		sum += BPMScore(a.Track.BPM, b.Track.BPM) * harmonicBPMWeight
		weights += harmonicBPMWeight
	}
	if a.Track.Energy > 0 && b.Track.Energy > 0 {
		sum += EnergyLevelScore(a.Track.Energy, b.Track.Energy) * harmonicEnergyWeight
		weights += harmonicEnergyWeight
	}
	if a.Track.EmotionalIntensity > 0 && b.Track.EmotionalIntensity > 0 {
		sum += EmotionalScore(a.Track.EmotionalIntensity, b.Track.EmotionalIntensity) * harmonicEmotionalWeight
		weights += harmonicEmotionalWeight
	}

	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}

// BPMScore scores a tempo transition. Half and double time mixes within
// 4 BPM are accepted at a reduced score.
func BPMScore(a, b float64) float64 {
	diff := math.Abs(a - b)
	switch {
	case diff <= 2:
		return 1.0
	case diff <= 6:
		return 1.0 - (diff/6)*0.5
	case math.Abs(a*2-b) <= 4 || math.Abs(a-b*2) <= 4:
		return 0.6
	default:
		return max(0, 0.3-(diff-6)*0.02)
	}
}

// EnergyLevelScore scores a transition between two 1-10 energy levels.
func EnergyLevelScore(a, b float64) float64 {
	diff := math.Abs(a - b)
	switch {
	case diff <= 1:
		return 1.0
	case diff <= 2:
		return 0.8
	default:
		return max(0, 0.5-(diff-2)*0.1)
	}
}

// EmotionalScore scores a transition between two 1-10 emotional intensities.
func EmotionalScore(a, b float64) float64 {
	return max(0, 1-math.Abs(a-b)/10)
}
