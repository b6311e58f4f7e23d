// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/logging"
	"github.com/tomtom215/mixgraph/internal/metrics"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/track"
)

// OptimizeResponse is the data of a successful optimization.
//
// A response served from the cache is the stored one: DurationMS and
// GraphBuildMS describe the run that produced it, not the current request.
// Metadata.Cached marks such responses and Metadata.QueryTimeMS carries the
// lookup time.
type OptimizeResponse struct {
	Playlist   []track.Track        `json:"playlist"`
	TotalScore float64              `json:"total_score"`
	Breakdown  *optimizer.Breakdown `json:"breakdown"`

	// PathCost is null for greedy fallbacks.
	PathCost *float64 `json:"path_cost"`

	NodesExplored int                    `json:"nodes_explored"`
	DurationMS    float64                `json:"duration_ms"`
	GraphBuildMS  float64                `json:"graph_build_ms"`
	Violations    []constraint.Violation `json:"violations"`
	Alternatives  [][]track.Track        `json:"alternatives"`
	Objective     optimizer.Objective    `json:"objective"`
	Termination   optimizer.Outcome      `json:"termination"`
	Outcome       optimizer.Outcome      `json:"outcome"`
	Fallback      bool                   `json:"fallback"`
}

// NewOptimizeResponse converts an optimizer result to its wire form.
func NewOptimizeResponse(res *optimizer.Result) *OptimizeResponse {
	resp := &OptimizeResponse{
		Playlist:      res.Playlist,
		TotalScore:    res.TotalScore,
		Breakdown:     res.Breakdown,
		NodesExplored: res.NodesExplored,
		DurationMS:    durationMS(res.Duration),
		GraphBuildMS:  durationMS(res.GraphBuildDuration),
		Violations:    res.Violations,
		Alternatives:  res.Alternatives,
		Objective:     res.Objective,
		Termination:   res.Termination,
		Outcome:       res.Outcome,
		Fallback:      res.Fallback,
	}
	if res.HasPathCost() {
		cost := res.PathCost
		resp.PathCost = &cost
	}
	if resp.Violations == nil {
		resp.Violations = []constraint.Violation{}
	}
	if resp.Alternatives == nil {
		resp.Alternatives = [][]track.Track{}
	}
	return resp
}

func durationMS(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// OptimizePlaylist handles POST /api/v1/playlists/optimize.
func (h *Handler) OptimizePlaylist(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	key, err := cacheKey("inline", req)
	if err != nil {
		respondClassified(w, r, err)
		return
	}
	h.optimize(w, r, key, req.Tracks, req.Metadata, &req.OptimizeOptions)
}

// optimize runs the optimizer for tracks with the response cache in front
// of it.
func (h *Handler) optimize(w http.ResponseWriter, r *http.Request, key string, tracks []track.Track, meta track.MetadataSet, opts *OptimizeOptions) {
	start := time.Now()

	if err := h.checkLimits(len(tracks), opts.TargetLength); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	if h.cache != nil {
		cached, ok := h.cache.Get(key)
		metrics.RecordCacheLookup(ok)
		if ok {
			m := newMetadata(r)
			m.Cached = true
			m.QueryTimeMS = time.Since(start).Milliseconds()
			respondSuccess(w, r, http.StatusOK, cached, m)
			return
		}
	}

	optReq, err := opts.toRequest(tracks, meta, h.minCompatibility)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	optReq.RequestID = logging.RequestIDFromContext(r.Context())

	ctx := r.Context()
	if h.limits.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.limits.RequestTimeout)
		defer cancel()
	}

	res, err := h.playlists.Optimize(ctx, optReq)
	if err != nil {
		status, code, message := classifyError(err)
		metrics.RecordOptimizeError(errorReason(code))
		respondError(w, r, status, code, message, err)
		return
	}

	metrics.RecordOptimization(metrics.Optimization{
		Objective:          string(res.Objective),
		Termination:        res.Termination.String(),
		Outcome:            res.Outcome.String(),
		Fallback:           res.Fallback,
		NodesExplored:      res.NodesExplored,
		GraphNodes:         len(tracks),
		Duration:           res.Duration,
		GraphBuildDuration: res.GraphBuildDuration,
	})

	resp := NewOptimizeResponse(res)
	if h.cache != nil {
		h.cache.Add(key, resp)
		metrics.SetCacheEntries(h.cache.Len())
	}

	logging.Ctx(r.Context()).Debug().
		Int("tracks", len(tracks)).
		Int("length", opts.TargetLength).
		Str("outcome", res.Outcome.String()).
		Bool("fallback", res.Fallback).
		Msg("playlist optimized")

	m := newMetadata(r)
	m.QueryTimeMS = time.Since(start).Milliseconds()
	respondSuccess(w, r, http.StatusOK, resp, m)
}

func (h *Handler) checkLimits(tracks, length int) error {
	if h.limits.MaxTracks > 0 && tracks > h.limits.MaxTracks {
		return fmt.Errorf("tracks must contain at most %d entries, got %d", h.limits.MaxTracks, tracks)
	}
	if h.limits.MaxTargetLength > 0 && length > h.limits.MaxTargetLength {
		return fmt.Errorf("target_length must be at most %d, got %d", h.limits.MaxTargetLength, length)
	}
	return nil
}

// cacheKey hashes the canonical JSON encoding of v with FNV-1a. Map keys
// are encoded in sorted order, so equal requests produce equal keys.
func cacheKey(scope string, v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(scope))
	_, _ = hash.Write([]byte{0})
	_, _ = hash.Write(data)
	return scope + ":" + strconv.FormatUint(hash.Sum64(), 16), nil
}
