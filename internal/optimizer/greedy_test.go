// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"slices"
	"testing"
)

func TestGreedy(t *testing.T) {
	t.Parallel()

	scores := matrixScorer{
		{"a", "b"}: 0.4, {"a", "c"}: 0.9, {"a", "d"}: 0.4,
		{"c", "b"}: 0.3, {"c", "d"}: 0.8,
		{"d", "b"}: 0.6,
		{"b", "a"}: 0.7, {"b", "c"}: 0.2, {"b", "d"}: 0.1,
	}
	g := buildGraph(t, idTracks("a", "b", "c", "d"), nil, 4, scores)

	tests := []struct {
		name   string
		start  int
		length int
		want   []int
	}{
		{"default start", -1, 4, []int{0, 2, 3, 1}},
		{"pinned start", 1, 4, []int{1, 0, 2, 3}},
		{"short", 0, 2, []int{0, 2}},
		{"single", 3, 1, []int{3}},
		{"longer than library", 0, 9, []int{0, 2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := greedy(g, tt.start, tt.length); !slices.Equal(got, tt.want) {
				t.Errorf("greedy(%d, %d) = %v, want %v", tt.start, tt.length, got, tt.want)
			}
		})
	}
}

func TestGreedy_EarlierTrackWinsTie(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, idTracks("a", "b", "c"), nil, 3, matrixScorer{})
	if got := greedy(g, 2, 3); !slices.Equal(got, []int{2, 0, 1}) {
		t.Errorf("greedy = %v, want [2 0 1]", got)
	}
}
