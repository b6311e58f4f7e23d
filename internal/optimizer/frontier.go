// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

// entry is a frontier element: a partial path ending at a node.
type entry struct {
	f     float64
	g     float64
	seq   uint64 // insertion order, breaks ties on f
	trail int    // index into search.trails
}

// frontier is a binary min-heap ordered by (f, seq). Equal f values pop in
// insertion order, which makes the search deterministic.
//
// It is owned by a single search and is not safe for concurrent use.
type frontier struct {
	heap []entry
	next uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{heap: make([]entry, 0, capacity)}
}

// Len returns the number of queued entries.
func (h *frontier) Len() int { return len(h.heap) }

// Push queues a path with the given scores.
func (h *frontier) Push(f, g float64, trail int) {
	h.heap = append(h.heap, entry{f: f, g: g, seq: h.next, trail: trail})
	h.next++
	h.bubbleUp(len(h.heap) - 1)
}

// Pop removes the lowest entry. ok is false when the frontier is empty.
func (h *frontier) Pop() (e entry, ok bool) {
	if len(h.heap) == 0 {
		return entry{}, false
	}
	e = h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.heap = h.heap[:last]
	if last > 0 {
		h.bubbleDown(0)
	}
	return e, true
}

func (h *frontier) less(i, j int) bool {
	a, b := &h.heap[i], &h.heap[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// bubbleUp moves an element up the heap until heap property is restored.
func (h *frontier) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.heap[i], h.heap[parent] = h.heap[parent], h.heap[i]
		i = parent
	}
}

// bubbleDown moves an element down the heap until heap property is restored.
func (h *frontier) bubbleDown(i int) {
	n := len(h.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.heap[i], h.heap[smallest] = h.heap[smallest], h.heap[i]
		i = smallest
	}
}
