// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import (
	"context"
	"encoding/binary"
	"math"
	"slices"

	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/graph"
)

// trail links a frontier entry to the entry it was expanded from. Paths are
// rebuilt by walking trails, since a node's parent may be overwritten by a
// later, cheaper path through it.
type trail struct {
	node  int
	prev  int // -1 for a seed
	depth int // path length including node
}

type transition struct {
	from, to int
}

type candidate struct {
	node  int
	track int
	cost  float64
}

// search is the state of one best-first search over a graph. Nothing in it
// is shared between optimizations.
type search struct {
	g      *graph.Graph
	cost   *coster
	all    constraint.Set
	hard   constraint.Set
	params searchParams
	length int
	start  int // track index, or -1 for every track

	// Optional exclusions used when searching for alternatives.
	bannedTransitions map[transition]struct{}
	bannedTracks      map[int]struct{}

	// bestG is the cheapest cost seen to reach each arena node.
	bestG []float64

	trails   []trail
	frontier *frontier
	closed   map[string]struct{}
	explored int

	pathBuf []int
	testBuf []int
	succBuf []int
	keyBuf  []byte
	cands   []candidate
}

type searchOutcome struct {
	path     []int // track indexes; nil when no complete path was found
	score    float64
	explored int
	ended    Outcome
}

func newSearch(g *graph.Graph, cost *coster, cons constraint.Set, params searchParams, start int) *search {
	n := g.NodeCount()
	s := &search{
		g:        g,
		cost:     cost,
		all:      cons,
		hard:     cons.Hard(),
		params:   params,
		length:   g.Positions(),
		start:    start,
		bestG:    make([]float64, n),
		frontier: newFrontier(min(n, params.maxNodes)),
		closed:   make(map[string]struct{}),
	}
	for i := range s.bestG {
		s.bestG[i] = math.Inf(1)
	}
	return s
}

func (s *search) seed() {
	starts := s.g.StartNodes()
	if s.start >= 0 {
		starts = []int{s.g.NodeAt(s.start, 0)}
	}
	for _, node := range starts {
		t := s.g.Node(node).Track
		if _, banned := s.bannedTracks[t]; banned {
			continue
		}
		s.bestG[node] = 0
		s.trails = append(s.trails, trail{node: node, prev: -1, depth: 1})
		s.frontier.Push(s.cost.heuristic(t, s.length-1), 0, len(s.trails)-1)
	}
}

// run executes the search until a goal path is found, the frontier empties,
// the node budget is spent or ctx is done.
func (s *search) run(ctx context.Context) (searchOutcome, error) {
	s.seed()

	out := searchOutcome{score: math.Inf(1), ended: FrontierExhausted}
	for s.frontier.Len() > 0 {
		if s.explored >= s.params.maxNodes {
			out.ended = BudgetExhausted
			break
		}
		if err := ctx.Err(); err != nil {
			return searchOutcome{}, err
		}

		e, _ := s.frontier.Pop()
		s.explored++
		path := s.reconstruct(e.trail)

		if len(path) == s.length {
			score, err := s.scoreComplete(path)
			if err != nil {
				return searchOutcome{}, err
			}
			if score < out.score {
				out.score = score
				out.path = slices.Clone(path)
			}
			if score <= s.params.threshold {
				out.ended = GoalFound
				break
			}
			continue
		}

		key := s.stateKey(path)
		if _, seen := s.closed[key]; seen {
			continue
		}
		s.closed[key] = struct{}{}

		if err := s.expand(e, path); err != nil {
			return searchOutcome{}, err
		}
	}

	out.explored = s.explored
	return out, nil
}

// expand pushes the retained successors of the entry's node.
func (s *search) expand(e entry, path []int) error {
	cur := s.trails[e.trail].node
	from := path[len(path)-1]

	s.testBuf = append(append(s.testBuf[:0], path...), 0)
	last := len(s.testBuf) - 1

	s.cands = s.cands[:0]
	s.succBuf = s.g.AppendSuccessors(s.succBuf[:0], cur)
	for _, node := range s.succBuf {
		to := s.g.Node(node).Track
		if _, banned := s.bannedTransitions[transition{from, to}]; banned {
			continue
		}
		s.testBuf[last] = to
		ok, err := s.hard.CheckHard(graph.NewPath(s.g, s.testBuf))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		s.cands = append(s.cands, candidate{node: node, track: to, cost: s.cost.edge(path, to)})
	}

	if len(s.cands) > s.params.beamWidth {
		slices.SortStableFunc(s.cands, func(a, b candidate) int {
			switch {
			case a.cost < b.cost:
				return -1
			case a.cost > b.cost:
				return 1
			default:
				return 0
			}
		})
		s.cands = s.cands[:s.params.beamWidth]
	}

	remaining := s.length - (len(path) + 1)
	for _, c := range s.cands {
		g := e.g + c.cost
		if g >= s.bestG[c.node] {
			continue
		}
		s.bestG[c.node] = g
		s.trails = append(s.trails, trail{node: c.node, prev: e.trail, depth: len(path) + 1})
		s.frontier.Push(g+s.cost.heuristic(c.track, remaining), g, len(s.trails)-1)
	}
	return nil
}

// reconstruct returns the track indexes of the path ending at trail idx. The
// returned slice is reused by the next call.
func (s *search) reconstruct(idx int) []int {
	depth := s.trails[idx].depth
	s.pathBuf = slices.Grow(s.pathBuf[:0], depth)[:depth]
	for i := depth - 1; idx >= 0; i-- {
		t := s.trails[idx]
		s.pathBuf[i] = s.g.Node(t.node).Track
		idx = t.prev
	}
	return s.pathBuf
}

// stateKey identifies a partial path: its tracks in order, which also fixes
// its last track and length.
func (s *search) stateKey(path []int) string {
	s.keyBuf = s.keyBuf[:0]
	for _, t := range path {
		s.keyBuf = binary.AppendUvarint(s.keyBuf, uint64(t))
	}
	return string(s.keyBuf)
}

// scoreComplete is the path score plus the penalty of every violated
// constraint.
func (s *search) scoreComplete(path []int) (float64, error) {
	vs, err := s.all.Violations(graph.NewPath(s.g, path))
	if err != nil {
		return 0, err
	}
	return s.cost.pathScore(path) + constraint.TotalPenalty(vs), nil
}
