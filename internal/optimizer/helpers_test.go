// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"context"
	"math"
	"testing"

	"github.com/tomtom215/mixgraph/internal/compat"
	"github.com/tomtom215/mixgraph/internal/graph"
	"github.com/tomtom215/mixgraph/internal/track"
)

// matrixScorer returns fixed scores per ordered id pair, 0.5 otherwise.
type matrixScorer map[[2]string]float64

func (m matrixScorer) ScoreSides(a, b *compat.Side) float64 {
	if v, ok := m[[2]string{a.Track.ID, b.Track.ID}]; ok {
		return v
	}
	return 0.5
}

func buildGraph(t *testing.T, tracks []track.Track, meta track.MetadataSet, length int, s graph.Scorer) *graph.Graph {
	t.Helper()
	if s == nil {
		s = compat.Default()
	}
	g, err := graph.Build(context.Background(), tracks, meta, length, s)
	if err != nil {
		t.Fatalf("graph.Build error: %v", err)
	}
	return g
}

func idTracks(ids ...string) []track.Track {
	out := make([]track.Track, len(ids))
	for i, id := range ids {
		out[i] = track.Track{ID: id, Artist: "artist " + id}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
