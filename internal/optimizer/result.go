// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"math"
	"time"

	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/graph"
	"github.com/tomtom215/mixgraph/internal/track"
)

// fallbackScore is the neutral total score reported for greedy playlists.
const fallbackScore = 0.5

// Result is the outcome of an optimization.
type Result struct {
	Playlist []track.Track

	// TotalScore is the path score of the playlist, lower is better. It is
	// the neutral 0.5 for a greedy fallback.
	TotalScore float64

	// Breakdown is nil for a greedy fallback.
	Breakdown *Breakdown

	// PathCost is the transition cost plus the penalties of violated
	// constraints. It is +Inf for a greedy fallback.
	PathCost float64

	NodesExplored      int
	Duration           time.Duration
	GraphBuildDuration time.Duration

	// Violations lists the soft and preference constraints the playlist
	// does not satisfy.
	Violations []constraint.Violation

	Alternatives [][]track.Track

	Objective Objective

	// Termination is how the search loop ended; Outcome is ReturnBest or
	// FallbackGreedy.
	Termination Outcome
	Outcome     Outcome
	Fallback    bool
}

// HasPathCost reports whether PathCost is finite.
func (r *Result) HasPathCost() bool {
	return !math.IsInf(r.PathCost, 0)
}

func assembleSearch(g *graph.Graph, cost *coster, cons constraint.Set, path []int) (*Result, error) {
	p := graph.NewPath(g, path)
	vs, err := cons.Violations(p)
	if err != nil {
		return nil, err
	}
	return &Result{
		Playlist:   p.Tracks(),
		TotalScore: cost.pathScore(path),
		Breakdown:  breakdown(g, path),
		PathCost:   cost.transitionCost(path) + constraint.TotalPenalty(vs),
		Violations: vs,
		Outcome:    ReturnBest,
	}, nil
}

func assembleFallback(g *graph.Graph, path []int) *Result {
	return &Result{
		Playlist:   graph.NewPath(g, path).Tracks(),
		TotalScore: fallbackScore,
		PathCost:   math.Inf(1),
		Outcome:    FallbackGreedy,
		Fallback:   true,
	}
}
