// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"math"

	"github.com/tomtom215/mixgraph/internal/compat"
	"github.com/tomtom215/mixgraph/internal/graph"
)

// Breakdown scores a playlist along each objective dimension. Every value is
// in [0,1] and higher is better.
type Breakdown struct {
	Compatibility     float64 `json:"compatibility"`
	EnergyFlow        float64 `json:"energy_flow"`
	CulturalCoherence float64 `json:"cultural_coherence"`
	CrowdAppeal       float64 `json:"crowd_appeal"`
}

const neutralDimension = 0.5

func breakdown(g *graph.Graph, path []int) *Breakdown {
	return &Breakdown{
		Compatibility:     meanCompatibility(g, path),
		EnergyFlow:        energyFlow(g, path),
		CulturalCoherence: culturalCoherence(g, path),
		CrowdAppeal:       meanAppeal(g, path),
	}
}

func meanOr(sum float64, n int, def float64) float64 {
	if n == 0 {
		return def
	}
	return sum / float64(n)
}

func meanCompatibility(g *graph.Graph, path []int) float64 {
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		sum += g.Compatibility(path[i], path[i+1])
	}
	return meanOr(sum, len(path)-1, neutralDimension)
}

func energyFlow(g *graph.Graph, path []int) float64 {
	var sum float64
	var n int
	for i := 0; i+1 < len(path); i++ {
		a, okA := g.Metadata(path[i]).Danceability.Get()
		b, okB := g.Metadata(path[i+1]).Danceability.Get()
		if okA && okB {
			sum += 1 - math.Abs(a-b)
			n++
		}
	}
	return meanOr(sum, n, neutralDimension)
}

// culturalCoherence rewards touching few languages and eras: up to two
// languages and three eras score fully.
func culturalCoherence(g *graph.Graph, path []int) float64 {
	languages := make(map[string]struct{})
	eras := make(map[string]struct{})
	for _, t := range path {
		m := g.Metadata(t)
		if m.Language != "" {
			languages[compat.CanonicalLanguage(m.Language)] = struct{}{}
		}
		if m.Era != "" {
			eras[compat.CanonicalEra(m.Era)] = struct{}{}
		}
	}

	lang := 1.0
	if n := len(languages); n > 2 {
		lang = max(0.3, 1-float64(n-2)*0.2)
	}
	era := 1.0
	if n := len(eras); n > 3 {
		era = max(0.3, 1-float64(n-3)*0.15)
	}
	return (lang + era) / 2
}

func meanAppeal(g *graph.Graph, path []int) float64 {
	var sum float64
	var n int
	for _, t := range path {
		if a, ok := g.Metadata(t).CrowdAppeal.Get(); ok {
			sum += a
			n++
		}
	}
	return meanOr(sum, n, neutralDimension)
}
