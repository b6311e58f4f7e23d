// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/curve"
	"github.com/tomtom215/mixgraph/internal/track"
)

// Request describes one optimization. Tracks and Metadata are read-only for
// the duration of the call.
type Request struct {
	// RequestID is attached to log lines. Optional.
	RequestID string

	Tracks   []track.Track
	Metadata track.MetadataSet

	// TargetLength is the number of tracks in the playlist.
	TargetLength int

	// StartTrack optionally pins the first track by id.
	StartTrack string

	// Objective selects a preset weighting. Empty selects balanced.
	Objective Objective

	// Weights replaces the preset's weights when non-empty.
	Weights Weights

	// Constraints defaults to constraint.Defaults with the configured
	// threshold. A no_duplicates constraint is always enforced.
	Constraints constraint.Set

	// MaxAlternatives requests up to this many additional playlists that
	// avoid every transition of the earlier ones.
	MaxAlternatives int

	// Curve is the target energy progression. Nil selects curve.Default.
	Curve *curve.Curve

	// Search overrides the configured search knobs.
	Search *SearchOptions
}

// prepared is a validated request with defaults applied.
type prepared struct {
	req         Request
	objective   Objective
	weights     Weights
	constraints constraint.Set
	curve       curve.Curve
	params      searchParams
	alts        int
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Optimizer) prepareRequest(req Request) (*prepared, error) {
	if req.TargetLength <= 0 {
		return nil, invalidInput("target_length must be positive, got %d", req.TargetLength)
	}
	if len(req.Tracks) == 0 {
		return nil, invalidInput("track list is empty")
	}

	seen := make(map[string]struct{}, len(req.Tracks))
	for _, t := range req.Tracks {
		if t.ID == "" {
			return nil, invalidInput("track id is required")
		}
		if _, dup := seen[t.ID]; dup {
			return nil, invalidInput("duplicate track id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if req.StartTrack != "" {
		if _, ok := seen[req.StartTrack]; !ok {
			return nil, invalidInput("start_track %q is not in the track list", req.StartTrack)
		}
	}
	if len(seen) < req.TargetLength {
		return nil, invalidInput("insufficient distinct tracks: have %d, need %d", len(seen), req.TargetLength)
	}
	if req.MaxAlternatives < 0 {
		return nil, invalidInput("max_alternatives must be non-negative, got %d", req.MaxAlternatives)
	}

	p := &prepared{req: req, params: o.config.resolve(req.Search)}
	if p.params.maxNodes < 1 || p.params.beamWidth < 1 || p.params.threshold < 0 {
		return nil, invalidInput("search options must be positive")
	}

	objective := req.Objective
	if objective == "" {
		objective = ObjectiveBalanced
	}
	if _, err := ParseObjective(string(objective)); err != nil {
		return nil, invalidInput("%v", err)
	}
	p.objective = objective
	p.weights = objective.Weights()
	if len(req.Weights) > 0 {
		if err := req.Weights.Validate(); err != nil {
			return nil, invalidInput("%v", err)
		}
		p.weights = req.Weights
	}

	p.curve = curve.Default()
	if req.Curve != nil {
		if req.Curve.Min < 0 || req.Curve.Max > 1 || req.Curve.Min > req.Curve.Max {
			return nil, invalidInput("curve range must satisfy 0 <= min <= max <= 1")
		}
		p.curve = *req.Curve
	}

	p.constraints = req.Constraints
	if p.constraints == nil {
		p.constraints = constraint.Defaults(o.config.MinCompatibility)
	}
	p.constraints = withNoDuplicates(p.constraints)

	p.alts = min(req.MaxAlternatives, o.config.MaxAlternatives)
	return p, nil
}

// withNoDuplicates prepends the no_duplicates constraint unless the set
// already carries a hard constraint of that name.
func withNoDuplicates(set constraint.Set) constraint.Set {
	for _, c := range set {
		if c.Name == constraint.NameNoDuplicates && c.Kind == constraint.Hard {
			return set
		}
	}
	out := make(constraint.Set, 0, len(set)+1)
	out = append(out, constraint.NoDuplicates())
	return append(out, set...)
}
