// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"math"
	"strings"

	"github.com/tomtom215/mixgraph/internal/graph"
)

const (
	positionCostScale = 0.5
	appealDiscount    = 0.2
	heuristicScale    = 0.5

	diversityWindow  = 3
	diversityCap     = 0.5
	sameSubgenreCost = 0.1
	sameArtistCost   = 0.2
	sameEraCost      = 0.05
)

// coster computes the cost terms of a single search. targets holds the
// curve's target danceability per position.
type coster struct {
	g       *graph.Graph
	targets []float64
	weights edgeWeights
	artists []string
}

func newCoster(g *graph.Graph, targets []float64, w edgeWeights) *coster {
	artists := make([]string, g.TrackCount())
	for i := range artists {
		artists[i] = strings.ToLower(g.Track(i).Artist)
	}
	return &coster{g: g, targets: targets, weights: w, artists: artists}
}

// position is the distance of the track's danceability from the curve at pos,
// discounted by crowd appeal. Tracks without danceability cost nothing.
func (c *coster) position(t, pos int) float64 {
	m := c.g.Metadata(t)
	dance, ok := m.Danceability.Get()
	if !ok {
		return 0
	}
	cost := math.Abs(dance-c.targets[pos]) * positionCostScale
	if appeal, ok := m.CrowdAppeal.Get(); ok && appeal != 0 {
		cost *= 1 - appeal*appealDiscount
	}
	return cost
}

// diversity penalizes repeating the subgenre, artist or era of the last
// tracks of prev. Empty labels never match.
func (c *coster) diversity(t int, prev []int) float64 {
	if len(prev) == 0 {
		return 0
	}
	m := c.g.Metadata(t)
	var penalty float64
	for _, p := range prev[max(0, len(prev)-diversityWindow):] {
		pm := c.g.Metadata(p)
		if m.Subgenre != "" && m.Subgenre == pm.Subgenre {
			penalty += sameSubgenreCost
		}
		if c.artists[t] != "" && c.artists[t] == c.artists[p] {
			penalty += sameArtistCost
		}
		if m.Era != "" && m.Era == pm.Era {
			penalty += sameEraCost
		}
	}
	return min(penalty, diversityCap)
}

// edge is the weighted cost of appending track to to the path prev, whose
// last element is the transition source.
func (c *coster) edge(prev []int, to int) float64 {
	from := prev[len(prev)-1]
	compatCost := 1 - c.g.Compatibility(from, to)
	return compatCost*c.weights.compatibility +
		c.position(to, len(prev))*c.weights.position +
		c.diversity(to, prev)*c.weights.diversity
}

// heuristic estimates the cost of the remaining positions from the track's
// mean compatibility. It can overestimate, so the search is best-first
// rather than strictly optimal.
func (c *coster) heuristic(t, remaining int) float64 {
	if remaining <= 0 {
		return 0
	}
	return (1 - c.g.MeanCompatibility(t)) * float64(remaining) * heuristicScale
}

// pathScore is the unweighted cost of a complete path: transition,
// position and diversity costs. Lower is better.
func (c *coster) pathScore(path []int) float64 {
	var score float64
	for i := 0; i+1 < len(path); i++ {
		score += 1 - c.g.Compatibility(path[i], path[i+1])
	}
	for i, t := range path {
		score += c.position(t, i)
	}
	for i := 1; i < len(path); i++ {
		score += c.diversity(path[i], path[:i])
	}
	return score
}

// transitionCost is the sum of 1 - compatibility over the path.
func (c *coster) transitionCost(path []int) float64 {
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		sum += 1 - c.g.Compatibility(path[i], path[i+1])
	}
	return sum
}
