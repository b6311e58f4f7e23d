// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package optimizer searches the track graph for the best playlist.
//
// The search is best-first over (track, position) nodes ordered by
// f = g + h, with beam pruning of successors, a closed set of expanded
// partial paths, a node budget and early termination on a good enough
// complete path. The heuristic is not admissible, so results are near
// optimal rather than optimal. When no complete path is found the optimizer
// falls back to a greedy nearest-neighbour playlist and flags the result.
//
// The package performs no I/O and imports no infrastructure packages.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mixgraph/internal/compat"
	"github.com/tomtom215/mixgraph/internal/graph"
)

// Optimizer builds playlists. It is safe for concurrent use: each call to
// Optimize owns its graph and search state.
type Optimizer struct {
	config *Config
	scorer *compat.Scorer
	logger zerolog.Logger

	runs      atomic.Int64
	fallbacks atomic.Int64
	failures  atomic.Int64
}

// Stats are cumulative counters of an Optimizer.
type Stats struct {
	Runs      int64 `json:"runs"`
	Fallbacks int64 `json:"fallbacks"`
	Failures  int64 `json:"failures"`
}

// NewOptimizer creates an optimizer. A nil cfg selects DefaultConfig.
func NewOptimizer(cfg *Config, logger zerolog.Logger) (*Optimizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	scorer, err := compat.NewScorer(cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Optimizer{
		config: cfg.Clone(),
		scorer: scorer,
		logger: logger.With().Str("component", "optimizer").Logger(),
	}, nil
}

// Config returns a copy of the optimizer configuration.
func (o *Optimizer) Config() *Config { return o.config.Clone() }

// Stats returns the cumulative counters.
func (o *Optimizer) Stats() Stats {
	return Stats{
		Runs:      o.runs.Load(),
		Fallbacks: o.fallbacks.Load(),
		Failures:  o.failures.Load(),
	}
}

// Optimize builds a playlist of req.TargetLength distinct tracks.
//
// It returns an error wrapping ErrInvalidInput for unusable requests, one
// wrapping constraint.ErrEvaluation when a constraint predicate fails, or
// ctx.Err() when ctx is done. Failing to find a complete path is not an
// error: the greedy fallback is returned with Fallback set.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Optimizer) Optimize(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	o.runs.Add(1)

	res, err := o.optimize(ctx, req, start)
	if err != nil {
		o.failures.Add(1)
		return nil, err
	}
	return res, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Optimizer) optimize(ctx context.Context, req Request, start time.Time) (*Result, error) {
	p, err := o.prepareRequest(req)
	if err != nil {
		return nil, err
	}
	logger := o.createRequestLogger(p)

	buildStart := time.Now()
	g, err := graph.Build(ctx, req.Tracks, req.Metadata, req.TargetLength, o.scorer)
	if err != nil {
		if errors.Is(err, graph.ErrDuplicateTrack) || errors.Is(err, graph.ErrNoTracks) || errors.Is(err, graph.ErrInvalidLength) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, err
	}
	buildDuration := time.Since(buildStart)

	startTrack := -1
	if req.StartTrack != "" {
		startTrack, _ = g.TrackIndex(req.StartTrack)
	}

	cost := newCoster(g, p.curve.Progression(req.TargetLength), p.weights.edge())
	found, err := newSearch(g, cost, p.constraints, p.params, startTrack).run(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var res *Result
	if found.path == nil {
		res = assembleFallback(g, greedy(g, startTrack, req.TargetLength))
		o.fallbacks.Add(1)
		logger.Warn().
			Int("nodes_explored", found.explored).
			Str("termination", found.ended.String()).
			Msg("no complete path found, using greedy fallback")
	} else {
		res, err = assembleSearch(g, cost, p.constraints, found.path)
		if err != nil {
			return nil, err
		}
		if p.alts > 0 {
			alts, err := o.alternatives(ctx, g, cost, p, startTrack, found.path, p.alts)
			if err != nil {
				return nil, fmt.Errorf("alternatives: %w", err)
			}
			for _, a := range alts {
				res.Alternatives = append(res.Alternatives, graph.NewPath(g, a).Tracks())
			}
		}
	}

	res.NodesExplored = found.explored
	res.Termination = found.ended
	res.Objective = p.objective
	res.GraphBuildDuration = buildDuration
	res.Duration = time.Since(start)

	logger.Debug().
		Int("tracks", g.TrackCount()).
		Int("nodes", g.NodeCount()).
		Int("nodes_explored", res.NodesExplored).
		Str("termination", res.Termination.String()).
		Str("outcome", res.Outcome.String()).
		Int("alternatives", len(res.Alternatives)).
		Dur("duration", res.Duration).
		Msg("optimization complete")

	return res, nil
}

func (o *Optimizer) createRequestLogger(p *prepared) zerolog.Logger {
	return o.logger.With().
		Str("request_id", p.req.RequestID).
		Int("target_length", p.req.TargetLength).
		Str("objective", string(p.objective)).
		Logger()
}
