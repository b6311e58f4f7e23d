// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package graph materializes the position-indexed track graph searched by the
// optimizer.
//
// The graph holds one node per (track, position) pair in a flat arena. Edges
// are implicit: every node at position p connects to every node at p+1 whose
// track differs. Transition scores live in one row per track, shared by all
// positions of that track, so storage is O(tracks^2) rather than
// O(positions * tracks^2).
package graph

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/mixgraph/internal/compat"
	"github.com/tomtom215/mixgraph/internal/track"
)

// Build errors.
var (
	ErrNoTracks       = errors.New("no tracks")
	ErrInvalidLength  = errors.New("target length must be positive")
	ErrDuplicateTrack = errors.New("duplicate track id")
)

// Scorer scores the transition from a to b.
type Scorer interface {
	ScoreSides(a, b *compat.Side) float64
}

// Node is a vertex: a track placed at a position.
type Node struct {
	Index    int // arena index
	Track    int // index into Graph.Tracks
	Position int
}

// Graph is immutable once built and safe for concurrent reads.
type Graph struct {
	tracks    []track.Track
	sides     []*compat.Side
	index     map[string]int
	positions int

	rows [][]float64
	mean []float64
}

// Build scores every ordered pair of distinct tracks and lays out
// targetLength position layers. Rows are computed concurrently; ctx
// cancellation aborts the build.
func Build(ctx context.Context, tracks []track.Track, meta track.MetadataSet, targetLength int, scorer Scorer) (*Graph, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	if targetLength <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLength, targetLength)
	}

	g := &Graph{
		tracks:    tracks,
		sides:     make([]*compat.Side, len(tracks)),
		index:     make(map[string]int, len(tracks)),
		positions: targetLength,
		rows:      make([][]float64, len(tracks)),
		mean:      make([]float64, len(tracks)),
	}
	for i := range tracks {
		id := tracks[i].ID
		if _, dup := g.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTrack, id)
		}
		g.index[id] = i
		g.sides[i] = compat.NewSide(tracks[i], meta.Lookup(id))
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range tracks {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g.rows[i], g.mean[i] = g.scoreRow(i, scorer)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return g, nil
}

func (g *Graph) scoreRow(from int, scorer Scorer) ([]float64, float64) {
	row := make([]float64, len(g.sides))
	var sum float64
	for to := range g.sides {
		if to == from {
			continue
		}
		row[to] = scorer.ScoreSides(g.sides[from], g.sides[to])
		sum += row[to]
	}
	if len(g.sides) < 2 {
		return row, compat.Neutral
	}
	return row, sum / float64(len(g.sides)-1)
}

// TrackCount returns the number of tracks.
func (g *Graph) TrackCount() int { return len(g.tracks) }

// Positions returns the number of position layers.
func (g *Graph) Positions() int { return g.positions }

// NodeCount returns the arena size.
func (g *Graph) NodeCount() int { return len(g.tracks) * g.positions }

// Track returns the track at index i.
func (g *Graph) Track(i int) track.Track { return g.tracks[i] }

// Metadata returns the normalized metadata of track i.
func (g *Graph) Metadata(i int) track.Metadata { return g.sides[i].Meta }

// TrackIndex looks a track up by id.
func (g *Graph) TrackIndex(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// NodeAt returns the arena index of track t at position p.
func (g *Graph) NodeAt(t, p int) int { return p*len(g.tracks) + t }

// Node decodes an arena index.
func (g *Graph) Node(i int) Node {
	n := len(g.tracks)
	return Node{Index: i, Track: i % n, Position: i / n}
}

// Compatibility returns the score of playing track to after track from.
func (g *Graph) Compatibility(from, to int) float64 { return g.rows[from][to] }

// MeanCompatibility is the mean score from t to every other track, or the
// neutral score when t is the only track.
func (g *Graph) MeanCompatibility(t int) float64 { return g.mean[t] }

// AppendSuccessors appends the arena indexes of every node reachable from
// node i: the next position layer minus the same track.
func (g *Graph) AppendSuccessors(dst []int, i int) []int {
	n := g.Node(i)
	if n.Position+1 >= g.positions {
		return dst
	}
	base := (n.Position + 1) * len(g.tracks)
	for t := range g.tracks {
		if t != n.Track {
			dst = append(dst, base+t)
		}
	}
	return dst
}

// StartNodes returns the position-0 nodes.
func (g *Graph) StartNodes() []int {
	out := make([]int, len(g.tracks))
	for t := range out {
		out[t] = t
	}
	return out
}
