// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"fmt"

	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/curve"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/track"
)

// OptimizeOptions are the playlist options shared by both optimize routes.
type OptimizeOptions struct {
	TargetLength    int                      `json:"target_length" validate:"required,gte=1"`
	StartTrack      string                   `json:"start_track,omitempty"`
	Objective       string                   `json:"objective,omitempty" validate:"omitempty,oneof=balanced compatibility narrative energy_flow cultural_journey"`
	Weights         map[string]float64       `json:"weights,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
	Constraints     *ConstraintOptions       `json:"constraints,omitempty"`
	MaxAlternatives int                      `json:"max_alternatives,omitempty" validate:"gte=0"`
	Curve           *CurveOptions            `json:"curve,omitempty"`
	Search          *optimizer.SearchOptions `json:"search,omitempty"`
}

// ConstraintOptions tunes the built-in constraints. no_duplicates cannot be
// disabled.
type ConstraintOptions struct {
	MinCompatibility *float64 `json:"min_compatibility,omitempty" validate:"omitempty,gt=0,lte=1"`
	Disable          []string `json:"disable,omitempty" validate:"omitempty,dive,oneof=min_compatibility energy_flow cultural_coherence"`
}

// CurveOptions picks the energy curve. Custom wins over Preset, which wins
// over Context. With none set the default peak curve is used.
type CurveOptions struct {
	Preset  string         `json:"preset,omitempty"`
	Context *curve.Context `json:"context,omitempty"`
	Custom  *curve.Curve   `json:"custom,omitempty"`
}

// OptimizeRequest is the body of POST /api/v1/playlists/optimize.
type OptimizeRequest struct {
	Tracks   []track.Track     `json:"tracks" validate:"required,min=1,dive"`
	Metadata track.MetadataSet `json:"metadata,omitempty"`
	OptimizeOptions
}

// CreateLibraryRequest is the body of POST /api/v1/libraries.
type CreateLibraryRequest struct {
	Name     string            `json:"name" validate:"required,max=200"`
	Tracks   []track.Track     `json:"tracks" validate:"required,min=1,dive"`
	Metadata track.MetadataSet `json:"metadata,omitempty"`
}

// resolveCurve returns the curve to optimize against, or nil for the
// optimizer default.
func (o *CurveOptions) resolve() (*curve.Curve, error) {
	if o == nil {
		return nil, nil
	}
	switch {
	case o.Custom != nil:
		c := *o.Custom
		return &c, nil
	case o.Preset != "":
		c, ok := curve.Lookup(o.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown curve preset %q", o.Preset)
		}
		return &c, nil
	case o.Context != nil:
		c := curve.Select(*o.Context)
		return &c, nil
	default:
		return nil, nil
	}
}

// constraints returns nil when the request leaves the defaults in place.
func (o *ConstraintOptions) constraints(defaultMin float64) constraint.Set {
	if o == nil || (o.MinCompatibility == nil && len(o.Disable) == 0) {
		return nil
	}
	threshold := defaultMin
	if o.MinCompatibility != nil {
		threshold = *o.MinCompatibility
	}
	return constraint.Defaults(threshold).Without(o.Disable...)
}

// toRequest converts the options into an optimizer request over tracks.
func (o *OptimizeOptions) toRequest(tracks []track.Track, meta track.MetadataSet, defaultMin float64) (optimizer.Request, error) {
	c, err := o.Curve.resolve()
	if err != nil {
		return optimizer.Request{}, err
	}

	var objective optimizer.Objective
	if o.Objective != "" {
		if objective, err = optimizer.ParseObjective(o.Objective); err != nil {
			return optimizer.Request{}, err
		}
	}

	return optimizer.Request{
		Tracks:          tracks,
		Metadata:        meta,
		TargetLength:    o.TargetLength,
		StartTrack:      o.StartTrack,
		Objective:       objective,
		Weights:         optimizer.Weights(o.Weights),
		Constraints:     o.Constraints.constraints(defaultMin),
		MaxAlternatives: o.MaxAlternatives,
		Curve:           c,
		Search:          o.Search,
	}, nil
}
