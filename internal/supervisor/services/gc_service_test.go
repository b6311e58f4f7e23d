// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/mixgraph/internal/library"
)

type mockCollector struct {
	runs atomic.Int32
	err  error
}

func (m *mockCollector) RunGC() error {
	m.runs.Add(1)
	return m.err
}

func TestLibraryGCService_Interface(t *testing.T) {
	var _ suture.Service = (*LibraryGCService)(nil)
	var _ GarbageCollector = (*library.Store)(nil)
}

func TestNewLibraryGCService_DefaultInterval(t *testing.T) {
	svc := NewLibraryGCService(&mockCollector{}, 0, zerolog.Nop())
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.String() != "library-gc" {
		t.Errorf("String() = %q, want library-gc", svc.String())
	}
}

func TestLibraryGCService_Serve(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "successful runs"},
		{name: "failed runs keep ticking", err: errors.New("gc failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockCollector{err: tt.err}
			svc := NewLibraryGCService(store, 5*time.Millisecond, zerolog.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() {
				errCh <- svc.Serve(ctx)
			}()

			deadline := time.Now().Add(2 * time.Second)
			for store.runs.Load() < 2 && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			cancel()

			select {
			case err := <-errCh:
				if !errors.Is(err, context.Canceled) {
					t.Errorf("Serve() error = %v, want context.Canceled", err)
				}
			case <-time.After(time.Second):
				t.Fatal("Serve did not return")
			}
			if got := store.runs.Load(); got < 2 {
				t.Errorf("GC runs = %d, want at least 2", got)
			}
		})
	}
}

func TestLibraryGCService_InMemoryStore(t *testing.T) {
	store, err := library.Open(library.Options{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("library.Open() error = %v", err)
	}
	defer store.Close()

	svc := NewLibraryGCService(store, time.Millisecond, zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
}
