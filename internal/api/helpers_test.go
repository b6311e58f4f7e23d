// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mixgraph/internal/library"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/track"
)

// envelope decodes APIResponse with the data left raw.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

// stubPlaylists is a Playlists returning canned results.
type stubPlaylists struct {
	res   *optimizer.Result
	err   error
	calls atomic.Int32
	last  atomic.Pointer[optimizer.Request]
}

func (s *stubPlaylists) Optimize(_ context.Context, req optimizer.Request) (*optimizer.Result, error) {
	s.calls.Add(1)
	s.last.Store(&req)
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}

func (s *stubPlaylists) Config() *optimizer.Config { return optimizer.DefaultConfig() }

type serverOptions struct {
	playlists Playlists
	store     LibraryStore
	noStore   bool
	limits    *Limits
	cache     CacheConfig
	mw        *ChiMiddlewareConfig
}

func newTestServer(t *testing.T, opts serverOptions) http.Handler {
	t.Helper()

	if opts.playlists == nil {
		opt, err := optimizer.NewOptimizer(nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewOptimizer() error = %v", err)
		}
		opts.playlists = opt
	}
	if opts.store == nil && !opts.noStore {
		store, err := library.Open(library.Options{InMemory: true}, zerolog.Nop())
		if err != nil {
			t.Fatalf("library.Open() error = %v", err)
		}
		t.Cleanup(func() { _ = store.Close() })
		opts.store = store
	}
	limits := DefaultLimits()
	if opts.limits != nil {
		limits = *opts.limits
	}

	h := NewHandler(opts.playlists, opts.store, limits, opts.cache, zerolog.Nop())
	return NewRouter(h, opts.mw, zerolog.Nop()).SetupChi()
}

func sampleTracks() []track.Track {
	return []track.Track{
		{ID: "t1", Title: "One", Artist: "A", Key: "8A", BPM: 124, Energy: 5},
		{ID: "t2", Title: "Two", Artist: "B", Key: "9A", BPM: 125, Energy: 6},
		{ID: "t3", Title: "Three", Artist: "C", Key: "8B", BPM: 126, Energy: 7},
		{ID: "t4", Title: "Four", Artist: "D", Key: "7A", BPM: 125, Energy: 6},
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Code != http.StatusNoContent && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

// optimizeData decodes OptimizeResponse with enums left as strings.
type optimizeData struct {
	Playlist   []track.Track        `json:"playlist"`
	TotalScore float64              `json:"total_score"`
	Breakdown  *optimizer.Breakdown `json:"breakdown"`
	PathCost   *float64             `json:"path_cost"`
	Violations []struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
	} `json:"violations"`
	Alternatives [][]track.Track `json:"alternatives"`
	Objective    string          `json:"objective"`
	Termination  string          `json:"termination"`
	Outcome      string          `json:"outcome"`
	Fallback     bool            `json:"fallback"`
}
