// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mixgraph/internal/cache"
	"github.com/tomtom215/mixgraph/internal/library"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/track"
	"github.com/tomtom215/mixgraph/internal/validation"
)

// Playlists optimizes playlists. *optimizer.Optimizer implements it.
type Playlists interface {
	Optimize(ctx context.Context, req optimizer.Request) (*optimizer.Result, error)
	Config() *optimizer.Config
}

// LibraryStore persists track libraries. *library.Store implements it.
type LibraryStore interface {
	Create(ctx context.Context, name string, tracks []track.Track, meta track.MetadataSet) (*library.Library, error)
	Get(ctx context.Context, id string) (*library.Library, error)
	List(ctx context.Context) ([]library.Summary, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// Limits bound the work a single request may ask for.
type Limits struct {
	RequestTimeout  time.Duration
	MaxTargetLength int
	MaxTracks       int
	MaxBodyBytes    int64
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		RequestTimeout:  30 * time.Second,
		MaxTargetLength: 200,
		MaxTracks:       5000,
		MaxBodyBytes:    8 << 20,
	}
}

// CacheConfig sizes the optimize response cache. Entries of 0 disables it.
type CacheConfig struct {
	Entries int
	TTL     time.Duration
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_optimize.go: playlist optimization
//   - handlers_library.go: library CRUD and library optimization
type Handler struct {
	playlists        Playlists
	store            LibraryStore
	cache            *cache.LRU[*OptimizeResponse]
	limits           Limits
	minCompatibility float64
	logger           zerolog.Logger
	startTime        time.Time
}

// NewHandler creates the API handler. store may be nil, in which case the
// library routes report the service as not ready.
func NewHandler(playlists Playlists, store LibraryStore, limits Limits, cacheCfg CacheConfig, logger zerolog.Logger) *Handler {
	h := &Handler{
		playlists:        playlists,
		store:            store,
		limits:           limits,
		minCompatibility: playlists.Config().MinCompatibility,
		logger:           logger.With().Str("component", "api").Logger(),
		startTime:        time.Now(),
	}
	if cacheCfg.Entries > 0 {
		h.cache = cache.NewLRU[*OptimizeResponse](cacheCfg.Entries, cacheCfg.TTL)
	}
	return h
}

// decodeJSON reads a size-limited JSON body into v and validates it. It
// writes the error response itself and reports whether decoding succeeded.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := h.readJSON(w, r, v); err != nil {
		if errors.Is(err, errRequestTooLarge) {
			respondClassified(w, r, err)
			return false
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "Request body is not valid JSON", err)
		return false
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		apiErr := verr.ToAPIError()
		respondAPIError(w, r, http.StatusBadRequest, &APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Fields:  apiErr.Fields,
		})
		return false
	}
	return true
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	limit := h.limits.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultLimits().MaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: limit is %d bytes", errRequestTooLarge, maxErr.Limit)
		}
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}
