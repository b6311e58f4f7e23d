// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"context"

	"github.com/tomtom215/mixgraph/internal/graph"
)

// alternatives re-runs the search up to k times. Each run bans every
// transition used by the primary path and the alternatives found so far, so
// each alternative differs from all earlier playlists in every adjacent
// pair. Single-track playlists ban the track itself instead. It stops at the
// first run that finds no complete path.
func (o *Optimizer) alternatives(ctx context.Context, g *graph.Graph, cost *coster, p *prepared, start int, primary []int, k int) ([][]int, error) {
	bannedTransitions := make(map[transition]struct{})
	bannedTracks := make(map[int]struct{})
	ban := func(path []int) {
		if len(path) == 1 {
			bannedTracks[path[0]] = struct{}{}
			return
		}
		for i := 0; i+1 < len(path); i++ {
			bannedTransitions[transition{path[i], path[i+1]}] = struct{}{}
		}
	}
	ban(primary)

	var out [][]int
	for len(out) < k {
		s := newSearch(g, cost, p.constraints, p.params, start)
		s.bannedTransitions = bannedTransitions
		s.bannedTracks = bannedTracks

		res, err := s.run(ctx)
		if err != nil {
			return nil, err
		}
		if res.path == nil {
			break
		}
		out = append(out, res.path)
		ban(res.path)
	}
	return out, nil
}
