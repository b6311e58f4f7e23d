// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package library persists named track libraries in BadgerDB so playlists
// can be optimized repeatedly without resending the catalogue.
package library

import (
	"errors"
	"time"

	"github.com/tomtom215/mixgraph/internal/track"
)

var (
	// ErrNotFound is returned when no library has the requested id.
	ErrNotFound = errors.New("library not found")

	// ErrInvalidLibrary is returned for libraries without a name or tracks.
	ErrInvalidLibrary = errors.New("invalid library")

	// ErrClosed is returned after the store has been closed.
	ErrClosed = errors.New("library store is closed")
)

// Library is a stored catalogue of tracks and their metadata.
type Library struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Tracks    []track.Track     `json:"tracks"`
	Metadata  track.MetadataSet `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Summary describes a library without its tracks.
type Summary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TrackCount int       `json:"track_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Summary returns the library's summary.
func (l *Library) Summary() Summary {
	return Summary{
		ID:         l.ID,
		Name:       l.Name,
		TrackCount: len(l.Tracks),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
