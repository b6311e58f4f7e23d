// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package graph

import (
	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/track"
)

// Path is an ordered sequence of track indexes viewed through a graph.
type Path struct {
	g      *Graph
	tracks []int
}

var _ constraint.Path = Path{}

// NewPath wraps track indexes. The slice is not copied.
func NewPath(g *Graph, tracks []int) Path {
	return Path{g: g, tracks: tracks}
}

// Len implements constraint.Path.
func (p Path) Len() int { return len(p.tracks) }

// Track implements constraint.Path.
func (p Path) Track(i int) track.Track { return p.g.Track(p.tracks[i]) }

// Metadata implements constraint.Path.
func (p Path) Metadata(i int) track.Metadata { return p.g.Metadata(p.tracks[i]) }

// Compatibility implements constraint.Path.
func (p Path) Compatibility(i int) float64 {
	return p.g.Compatibility(p.tracks[i], p.tracks[i+1])
}

// Tracks materializes the path.
func (p Path) Tracks() []track.Track {
	out := make([]track.Track, len(p.tracks))
	for i, t := range p.tracks {
		out[i] = p.g.Track(t)
	}
	return out
}
