// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GarbageCollector reclaims storage. *library.Store implements it.
type GarbageCollector interface {
	RunGC() error
}

// LibraryGCService runs value log garbage collection on a fixed interval.
// A failed run is logged and retried at the next tick; it does not restart
// the service.
type LibraryGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewLibraryGCService creates the service. A non-positive interval selects
// 10 minutes.
func NewLibraryGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *LibraryGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &LibraryGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "library-gc").Logger(),
		name:     "library-gc",
	}
}

// Serve implements suture.Service.
func (s *LibraryGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("library value log GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("library value log GC complete")
		}
	}
}

// String implements fmt.Stringer.
func (s *LibraryGCService) String() string {
	return s.name
}
