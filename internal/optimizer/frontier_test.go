// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package optimizer

import "testing"

func TestFrontier_Order(t *testing.T) {
	t.Parallel()

	h := newFrontier(4)
	for i, f := range []float64{3.5, 1.0, 2.25, 0.5, 4.0, 1.5} {
		h.Push(f, f/2, i)
	}
	if h.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", h.Len())
	}

	want := []float64{0.5, 1.0, 1.5, 2.25, 3.5, 4.0}
	for _, f := range want {
		e, ok := h.Pop()
		if !ok {
			t.Fatal("Pop() on non-empty frontier returned false")
		}
		if e.f != f || e.g != f/2 {
			t.Errorf("Pop() = f %v g %v, want f %v g %v", e.f, e.g, f, f/2)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop() on empty frontier returned true")
	}
}

func TestFrontier_TiesPopInInsertionOrder(t *testing.T) {
	t.Parallel()

	h := newFrontier(0)
	for i := 0; i < 10; i++ {
		h.Push(1.0, 0, i)
	}
	h.Push(0.5, 0, 99)

	e, _ := h.Pop()
	if e.trail != 99 {
		t.Fatalf("first trail = %d, want 99", e.trail)
	}
	for i := 0; i < 10; i++ {
		e, _ := h.Pop()
		if e.trail != i {
			t.Errorf("pop %d: trail = %d, want %d", i, e.trail, i)
		}
	}
}

func TestFrontier_InterleavedPushPop(t *testing.T) {
	t.Parallel()

	h := newFrontier(0)
	h.Push(5, 0, 0)
	h.Push(2, 0, 1)
	if e, _ := h.Pop(); e.trail != 1 {
		t.Errorf("trail = %d, want 1", e.trail)
	}
	h.Push(1, 0, 2)
	h.Push(7, 0, 3)
	for _, want := range []int{2, 0, 3} {
		if e, _ := h.Pop(); e.trail != want {
			t.Errorf("trail = %d, want %d", e.trail, want)
		}
	}
}
