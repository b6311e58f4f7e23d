// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import "github.com/tomtom215/mixgraph/internal/graph"

// greedy builds a nearest-neighbour playlist: starting from start (or the
// first track when start is negative), it repeatedly appends the unused track
// with the highest compatibility. Earlier tracks win ties.
func greedy(g *graph.Graph, start, length int) []int {
	n := g.TrackCount()
	if n == 0 || length <= 0 {
		return nil
	}
	if start < 0 {
		start = 0
	}

	used := make([]bool, n)
	path := make([]int, 0, min(n, length))
	cur := start
	used[cur] = true
	path = append(path, cur)

	for len(path) < length {
		best, bestScore := -1, -1.0
		for t := 0; t < n; t++ {
			if used[t] {
				continue
			}
			if s := g.Compatibility(cur, t); s > bestScore {
				best, bestScore = t, s
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		path = append(path, best)
		cur = best
	}
	return path
}
