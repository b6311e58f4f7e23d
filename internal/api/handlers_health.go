// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests. It always reports alive while
// the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, newMetadata(r))
}

// HealthReady handles readiness probe requests. The service is ready when
// the library store answers; the payload also reports how many libraries it
// holds.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	storeReady := h.store != nil && h.store.Ping(r.Context()) == nil

	libraries := 0
	if storeReady {
		n, err := h.store.Count(r.Context())
		if err != nil {
			h.logger.Warn().Err(err).Msg("Library count failed")
			storeReady = false
		}
		libraries = n
	}

	statusCode := http.StatusOK
	status := "ready"
	if !storeReady {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"library_store":  storeReady,
			"libraries":      libraries,
			"ready_to_serve": storeReady,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r),
	})
}
