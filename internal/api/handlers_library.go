// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// libraryID reads and checks the {id} URL parameter. It writes the error
// response itself when the id is malformed.
func libraryID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "id must be a valid UUID", nil)
		return "", false
	}
	return id, true
}

func (h *Handler) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if h.store == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "Library store is not available", nil)
		return false
	}
	return true
}

// CreateLibrary handles POST /api/v1/libraries.
func (h *Handler) CreateLibrary(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	var req CreateLibraryRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if h.limits.MaxTracks > 0 && len(req.Tracks) > h.limits.MaxTracks {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "library has too many tracks", nil)
		return
	}

	lib, err := h.store.Create(r.Context(), req.Name, req.Tracks, req.Metadata)
	if err != nil {
		respondClassified(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusCreated, lib.Summary(), newMetadata(r))
}

// ListLibraries handles GET /api/v1/libraries.
func (h *Handler) ListLibraries(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	start := time.Now()

	summaries, err := h.store.List(r.Context())
	if err != nil {
		respondClassified(w, r, err)
		return
	}

	m := newMetadata(r)
	m.QueryTimeMS = time.Since(start).Milliseconds()
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"libraries": summaries,
		"count":     len(summaries),
	}, m)
}

// GetLibrary handles GET /api/v1/libraries/{id}.
func (h *Handler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	id, ok := libraryID(w, r)
	if !ok {
		return
	}

	lib, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondClassified(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, lib, newMetadata(r))
}

// DeleteLibrary handles DELETE /api/v1/libraries/{id}.
func (h *Handler) DeleteLibrary(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	id, ok := libraryID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondClassified(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OptimizeLibrary handles POST /api/v1/libraries/{id}/optimize.
func (h *Handler) OptimizeLibrary(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	id, ok := libraryID(w, r)
	if !ok {
		return
	}
	var opts OptimizeOptions
	if !h.decodeJSON(w, r, &opts) {
		return
	}

	lib, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondClassified(w, r, err)
		return
	}

	// Libraries are immutable once stored, so the id pins the tracks.
	key, err := cacheKey("library:"+lib.ID, opts)
	if err != nil {
		respondClassified(w, r, err)
		return
	}
	h.optimize(w, r, key, lib.Tracks, lib.Metadata, &opts)
}
